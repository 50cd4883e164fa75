// Package customercode builds and parses the human-readable customer codes
// issued by the code allocator: {prefix}{YY}{NNNN}.
package customercode

import (
	"fmt"
	"strings"
)

// MaxPrefixLen bounds a company code prefix. The default company uses the
// empty prefix, so its codes are bare {YY}{NNNN}.
const MaxPrefixLen = 4

// minSequenceWidth is a minimum, not a maximum: sequence values >= 10000 widen
// the numeric segment instead of truncating.
const minSequenceWidth = 4

// FormatCode builds the canonical customer code from a company prefix, a
// 2-digit year and a positive sequence number.
func FormatCode(prefix, yearYY string, sequence int64) (string, error) {
	if len(prefix) > MaxPrefixLen {
		return "", fmt.Errorf("prefix %q exceeds %d characters", prefix, MaxPrefixLen)
	}
	if !isTwoDigitYear(yearYY) {
		return "", fmt.Errorf("year %q must be exactly two digits", yearYY)
	}
	if sequence < 1 {
		return "", fmt.Errorf("sequence must be positive, got %d", sequence)
	}
	return fmt.Sprintf("%s%s%0*d", prefix, yearYY, minSequenceWidth, sequence), nil
}

// YearSegment extracts the 2-digit year segment of a code issued with the
// given prefix. It reports false when the code does not belong to the prefix.
func YearSegment(code, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(code, prefix)
	if !ok || !isTwoDigitYear(restPrefix(rest)) {
		return "", false
	}
	return rest[:2], true
}

func restPrefix(rest string) string {
	if len(rest) < 2 {
		return ""
	}
	return rest[:2]
}

func isTwoDigitYear(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
