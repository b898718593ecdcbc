// Package numbers holds digit-string helpers shared by phone input and the
// cage display.
package numbers

import "strings"

// ascendingRuns are the 4-digit suffixes that mark a number as special.
var ascendingRuns = []string{"1234", "2345", "3456", "4567", "5678", "6789"}

// NormalizeDigits strips every non-digit character and returns the remaining
// digit sequence, possibly empty.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsSpecial reports whether a revealed number deserves highlighting: every
// character is the same digit (length >= 2), or the value ends with an
// ascending 4-digit run. Cosmetic only; never affects draw eligibility.
func IsSpecial(val string) bool {
	if val == "" {
		return false
	}
	if len(val) >= 2 && allSame(val) {
		return true
	}
	for _, run := range ascendingRuns {
		if strings.HasSuffix(val, run) {
			return true
		}
	}
	return false
}

func allSame(s string) bool {
	if s[0] < '0' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
