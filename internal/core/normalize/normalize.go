// Package normalize folds text for loose, locale-agnostic matching
// Pipeline order
// 1 strip control characters and repair UTF-8
// 2 Unicode NFKD decomposition
// 3 Case folding
// 4 Remove combining marks and format characters
// 5 Width fold fullwidth to ASCII
// 6 NFC recomposition
// 7 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformer chains are stateful, so each call borrows one
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)), // accents split off by NFKD
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF etc
			width.Fold,
			norm.NFC,
		)
	},
}

// Fold returns the matching form of s: "Café  Ｂｕｇ" and "cafe bug" fold the same
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = StripControls(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Matcher tests fields against one pre-folded term
type Matcher struct{ term string }

// NewMatcher folds term once; a blank term matches everything
func NewMatcher(term string) Matcher { return Matcher{term: Fold(term)} }

// Blank reports whether the matcher accepts everything
func (m Matcher) Blank() bool { return m.term == "" }

// Match reports whether any field contains the term after folding
func (m Matcher) Match(fields ...string) bool {
	if m.term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), m.term) {
			return true
		}
	}
	return false
}

// Contains is a one-shot NewMatcher(needle).Match(haystack)
func Contains(haystack, needle string) bool { return NewMatcher(needle).Match(haystack) }
