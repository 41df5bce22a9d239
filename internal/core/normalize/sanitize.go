package normalize

import (
	"strings"
)

// StripControls drops invalid UTF-8, C0 controls other than tab and newline,
// DEL, C1 controls and bidi overrides. Clean input is returned unchanged
func StripControls(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	if strings.IndexFunc(s, unwanted) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unwanted(r) {
			return -1
		}
		return r
	}, s)
}

// Line makes untrusted text safe for a single terminal line
func Line(s string) string {
	return strings.Join(strings.Fields(StripControls(s)), " ")
}

func unwanted(r rune) bool {
	switch {
	case r == '\t' || r == '\n':
		return false
	case r < 0x20 || r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	case r >= 0x202A && r <= 0x202E, r >= 0x2066 && r <= 0x2069:
		return true
	}
	return false
}
