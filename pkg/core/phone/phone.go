// Package phone handles US phone number masking, validation and
// normalization for volunteer signups. Numbers are stored as bare
// 10-digit strings and displayed as "(XXX) XXX-XXXX".
package phone

import "strings"

const digitCount = 10

// stripNonDigits keeps only ASCII digits, truncated to the first 10
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == digitCount {
				break
			}
		}
	}
	return b.String()
}

// Mask progressively reconstructs the "(DDD) DDD-DDDD" display mask
// from whatever the user has typed so far. It is meant to run on every
// keystroke so the visible value is always a consistent prefix of the
// final mask. Input beyond 10 digits is ignored.
func Mask(raw string) string {
	digits := stripNonDigits(raw)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('(')
	if len(digits) <= 3 {
		b.WriteString(digits)
		return b.String()
	}

	b.WriteString(digits[:3])
	b.WriteString(") ")
	if len(digits) <= 6 {
		b.WriteString(digits[3:])
		return b.String()
	}

	b.WriteString(digits[3:6])
	b.WriteByte('-')
	b.WriteString(digits[6:])
	return b.String()
}

// Clean strips non-digits and returns the normalized 10-digit string,
// or "" when the input does not contain exactly 10 digits
func Clean(masked string) string {
	var b strings.Builder
	for _, r := range masked {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() != digitCount {
		return ""
	}
	return b.String()
}

// IsValid reports whether the input reduces to exactly 10 digits
func IsValid(masked string) bool {
	return Clean(masked) != ""
}

// Format renders a stored 10-digit number as "(XXX) XXX-XXXX". Anything
// that is not exactly 10 digits is returned unchanged.
func Format(stored string) string {
	if Clean(stored) != stored || len(stored) != digitCount {
		return stored
	}
	return "(" + stored[:3] + ") " + stored[3:6] + "-" + stored[6:]
}
