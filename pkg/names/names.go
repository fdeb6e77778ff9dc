// Package names normalizes company names for directory exports.
package names

import (
	"regexp"
	"slices"
	"strings"
)

// legal form suffixes, applied once each in this order
var suffixes = func() []*regexp.Regexp {
	forms := []string{
		`L\.?L\.?C\.?`,
		`S\.?O\.?C\.?`,
		`BRANCH`,
		`PRIVATE\s+LIMITED`,
		`LIMITED`,
		`PVT\.?\s*LTD\.?`,
		`LTD\.?`,
		`FZCO\.?`,
		`FZC\.?`,
		`FZE\.?`,
		`PJSC\.?`,
		`INC\.?`,
		`CORP\.?`,
		`CO\.?`,
	}
	res := make([]*regexp.Regexp, len(forms))
	for i, f := range forms {
		res[i] = regexp.MustCompile(`(?i)\s*-?\s*\b` + f + `$`)
	}
	return res
}()

var (
	branchRe     = regexp.MustCompile(`(?i)\s*-?\s*\(?\bBRANCH\b\)?`)
	developerRe  = regexp.MustCompile(`(?i)DEVELOP(MENT|ER)S?`)
	realEstateRe = regexp.MustCompile(`(?i)REAL\s+ESTATE\s*&?\s*`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// CleanCompany removes legal form suffixes and branch markers from a
// company name. "Real Estate" is dropped from names of developers, where
// it carries no information.
func CleanCompany(name string) string {
	res := name
	for _, re := range suffixes {
		res = re.ReplaceAllString(res, "")
	}
	res = branchRe.ReplaceAllString(res, "")
	res = strings.TrimSpace(res)

	if developerRe.MatchString(res) {
		res = realEstateRe.ReplaceAllString(res, "")
	}

	return strings.TrimSpace(spacesRe.ReplaceAllString(res, " "))
}

// CleanCompanies cleans names and returns distinct non-empty results in
// sorted order.
func CleanCompanies(names []string) []string {
	res := make([]string, 0, len(names))
	for _, n := range names {
		if c := CleanCompany(n); c != "" {
			res = append(res, c)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
