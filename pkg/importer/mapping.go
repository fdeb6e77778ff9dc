package importer

import (
	"strings"

	"github.com/velocitia/prospectsdata/pkg/schema"
)

// Columns maps target columns to source CSV headers.
type Columns map[string]string

// AutoMap matches CSV headers to target columns by name, ignoring case,
// underscores and spaces. When several headers match the same column the
// first one in the file wins. Unmatched columns are left out.
func AutoMap(headers []string, def schema.Definition) Columns {
	res := make(Columns)
	for _, col := range def.Columns {
		if src, ok := matchHeader(col.Name, headers); ok {
			res[col.Name] = src
		}
	}
	return res
}

func matchHeader(name string, headers []string) (string, bool) {
	key := headerKey(name)
	for _, h := range headers {
		if strings.EqualFold(h, name) || headerKey(h) == key {
			return h, true
		}
	}
	return "", false
}

func headerKey(s string) string {
	r := strings.NewReplacer("_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// MissingRequired returns required columns of the definition that have
// no source header assigned.
func (c Columns) MissingRequired(def schema.Definition) []string {
	var res []string
	for _, col := range def.Required() {
		if c[col.Name] == "" {
			res = append(res, col.Name)
		}
	}
	return res
}
