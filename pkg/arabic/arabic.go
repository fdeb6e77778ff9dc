// Package arabic provides an approximate romanization of Arabic script.
//
// The romanization is character-level and best-effort. It is used for
// names that have no curated English translation, so the output is meant
// to be readable, not linguistically rigorous.
package arabic

import (
	"maps"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const shadda = 'ّ'

var letters = map[rune]string{
	'ا': "a", 'أ': "a", 'إ': "i", 'آ': "aa",
	'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j",
	'ح': "h", 'خ': "kh", 'د': "d", 'ذ': "dh",
	'ر': "r", 'ز': "z", 'س': "s", 'ش': "sh",
	'ص': "s", 'ض': "d", 'ط': "t", 'ظ': "z",
	'ع': "a", 'غ': "gh", 'ف': "f", 'ق': "q",
	'ك': "k", 'ل': "l", 'م': "m", 'ن': "n",
	'ه': "h", 'و': "w", 'ي': "y", 'ى': "a",
	'ة': "a", 'ء': "",

	// diacritics
	'َ': "a",  // fatha
	'ِ': "i",  // kasra
	'ُ': "u",  // damma
	'ْ': "",   // sukun
	'ً': "an", // tanwin fath
	'ٍ': "in", // tanwin kasr
	'ٌ': "un", // tanwin damm

	'٠': "0", '١': "1", '٢': "2", '٣': "3", '٤': "4",
	'٥': "5", '٦': "6", '٧': "7", '٨': "8", '٩': "9",
}

var ligatures = map[[2]rune]string{
	{'ل', 'ا'}: "la",
	{'ل', 'أ'}: "la",
	{'ل', 'إ'}: "li",
	{'ل', 'آ'}: "laa",
}

// IsArabic reports if the rune belongs to the Arabic or the Arabic
// Supplement Unicode block.
func IsArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) || (r >= 0x0750 && r <= 0x077F)
}

// ContainsArabic returns true if at least one rune of the string is
// Arabic.
func ContainsArabic(s string) bool {
	return strings.IndexFunc(s, IsArabic) >= 0
}

func isPresentationForm(r rune) bool {
	return (r >= 0xFB50 && r <= 0xFDFF) || (r >= 0xFE70 && r <= 0xFEFF)
}

// foldPresentationForms replaces contextual glyph forms with the base
// letters they stand for. Everything else is left intact.
func foldPresentationForms(s string) string {
	if strings.IndexFunc(s, isPresentationForm) < 0 {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if isPresentationForm(r) {
			sb.WriteString(norm.NFKC.String(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Transliterate converts Arabic text to an approximate Latin
// romanization. Strings without Arabic are returned unchanged.
//
// Two-letter ligatures are matched before single letters, shadda doubles
// the previously emitted character, unknown Arabic runes are dropped and
// non-Arabic runes are kept. The result has collapsed whitespace, no
// letter repeated more than twice in a row, and every word capitalized.
func Transliterate(s string) string {
	if s == "" {
		return s
	}
	text := foldPresentationForms(s)
	if !ContainsArabic(text) {
		return s
	}

	rs := []rune(text)
	out := make([]rune, 0, len(rs)*2)
	for i := 0; i < len(rs); i++ {
		if i+1 < len(rs) {
			if lat, ok := ligatures[[2]rune{rs[i], rs[i+1]}]; ok {
				out = append(out, []rune(lat)...)
				i++
				continue
			}
		}

		r := rs[i]
		if r == shadda {
			if len(out) > 0 {
				out = append(out, out[len(out)-1])
			}
			continue
		}

		if lat, ok := letters[r]; ok {
			out = append(out, []rune(lat)...)
			continue
		}
		if IsArabic(r) {
			continue
		}
		out = append(out, r)
	}

	res := strings.Join(strings.Fields(string(out)), " ")
	res = squeezeLetters(res)
	return titleCase(res)
}

// squeezeLetters shortens runs of three or more identical ASCII letters
// to two. Letters are compared case-insensitively, the first letter of
// the run is repeated.
func squeezeLetters(s string) string {
	rs := []rune(s)
	res := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); {
		j := i + 1
		if isASCIILetter(rs[i]) {
			for j < len(rs) && unicode.ToLower(rs[j]) == unicode.ToLower(rs[i]) {
				j++
			}
		}
		if j-i > 2 {
			res = append(res, rs[i], rs[i])
		} else {
			res = append(res, rs[i:j]...)
		}
		i = j
	}
	return string(res)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// titleCase uppercases the first rune of every space separated token and
// leaves the rest of the token as is, so "abd-allh" becomes "Abd-allh".
// The input has single spaces only.
func titleCase(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if i == 0 || rs[i-1] == ' ' {
			rs[i] = unicode.ToUpper(r)
		}
	}
	return string(rs)
}

// TransliterateRecords returns copies of the records where Arabic string
// values of the given columns are replaced with their romanization.
// Original records are not modified.
func TransliterateRecords(
	records []map[string]any,
	columns []string,
) []map[string]any {
	res := make([]map[string]any, len(records))
	for i, rec := range records {
		cp := maps.Clone(rec)
		for _, col := range columns {
			if s, ok := rec[col].(string); ok && ContainsArabic(s) {
				cp[col] = Transliterate(s)
			}
		}
		res[i] = cp
	}
	return res
}
