package importer

import (
	"github.com/gnames/gnlib"
	"github.com/velocitia/prospectsdata/pkg/arabic"
	"github.com/velocitia/prospectsdata/pkg/coerce"
	"github.com/velocitia/prospectsdata/pkg/schema"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

// Fallback decides what to store for Arabic names that have no curated
// translation.
type Fallback string

const (
	// KeepArabic stores the original Arabic value.
	KeepArabic Fallback = "keep"
	// Transliterate stores an algorithmic romanization.
	Transliterate Fallback = "transliterate"
)

// DefaultCutoff is the earliest creation date of permits that are kept.
const DefaultCutoff = "2021-01-01"

// Mapper converts raw rows to records of one target table.
type Mapper struct {
	def       schema.Definition
	cols      []schema.Column
	sources   []string
	translate map[string]bool
	store     *translate.Store
	fallback  Fallback
	cutoff    string
}

// NewMapper creates a Mapper for a plan. A nil store means no curated
// translations.
func NewMapper(
	p Plan,
	store *translate.Store,
	fallback Fallback,
	cutoff string,
) *Mapper {
	if cutoff == "" {
		cutoff = DefaultCutoff
	}
	res := &Mapper{
		def:       p.Def,
		translate: make(map[string]bool),
		store:     store,
		fallback:  fallback,
		cutoff:    cutoff,
	}
	for _, col := range p.Def.Columns {
		src := p.Columns[col.Name]
		if src == "" {
			continue
		}
		res.cols = append(res.cols, col)
		res.sources = append(res.sources, src)
	}
	for _, name := range p.Translate {
		res.translate[name] = true
	}
	return res
}

// Map builds a record from a row and checks it against the cutoff and
// required-column rules. A skipped row returns its record together with
// the reason.
func (m *Mapper) Map(row Row) (Record, SkipReason) {
	rec := make(Record, len(m.cols))
	for i, col := range m.cols {
		raw, ok := row[m.sources[i]]
		if !ok {
			continue
		}
		v := coerce.Value(gnlib.FixUtf8(raw), col)
		if s, ok := v.(string); ok && m.translate[col.Name] &&
			arabic.ContainsArabic(s) {
			v = m.resolve(s)
		}
		rec[col.Name] = v
	}

	if m.def.Table == schema.Permits {
		if d, ok := rec["project_creation_date"].(string); ok && d < m.cutoff {
			return rec, SkipCutoff
		}
	}

	for _, col := range m.def.Columns {
		if !col.Required {
			continue
		}
		switch v := rec[col.Name].(type) {
		case nil:
			return rec, SkipMissingRequired
		case string:
			if v == "" {
				return rec, SkipMissingRequired
			}
		}
	}
	return rec, NotSkipped
}

// resolve returns the curated translation of an Arabic name. Without one,
// the name is kept or transliterated according to the fallback policy,
// it is never blanked.
func (m *Mapper) resolve(s string) string {
	if res, ok := m.store.Translate(s); ok {
		return res
	}
	if m.fallback == Transliterate {
		return arabic.Transliterate(s)
	}
	return s
}

// Untranslated returns Arabic values of translation-enabled columns that
// have no curated translation in the row.
func (m *Mapper) Untranslated(row Row) []string {
	var res []string
	for i, col := range m.cols {
		if !m.translate[col.Name] {
			continue
		}
		raw, ok := row[m.sources[i]]
		if !ok {
			continue
		}
		if v := gnlib.FixUtf8(raw); m.store.IsUntranslated(v) {
			res = append(res, v)
		}
	}
	return res
}

// Translating reports if at least one mapped column has translation
// enabled.
func (m *Mapper) Translating() bool {
	for _, col := range m.cols {
		if m.translate[col.Name] {
			return true
		}
	}
	return false
}
