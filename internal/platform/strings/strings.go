// Package strings provides small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// IfBlank returns def when s has no non whitespace content, otherwise s
func IfBlank(s, def string) string {
	if std.TrimSpace(s) == "" {
		return def
	}
	return s
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /issues or /meta
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// SplitCSV flattens values that may each hold a comma separated list
// Items are trimmed, empties dropped, order kept; duplicates are kept too
func SplitCSV(values ...string) []string {
	out := []string{}
	for _, v := range values {
		for _, p := range std.Split(v, ",") {
			if p = std.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Ptr returns a pointer to s
func Ptr(s string) *string { return &s }

// Deref returns def if ps is nil, else *ps
func Deref(ps *string, def string) string {
	if ps == nil {
		return def
	}
	return *ps
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
