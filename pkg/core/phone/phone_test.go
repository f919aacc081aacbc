package phone

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"empty", "", ""},
		{"no digits", "abc- ()", ""},
		{"one digit", "3", "(3"},
		{"three digits", "312", "(312"},
		{"four digits", "3125", "(312) 5"},
		{"six digits", "312555", "(312) 555"},
		{"seven digits", "3125550", "(312) 555-0"},
		{"full number", "3125550199", "(312) 555-0199"},
		{"already masked", "(312) 555-0199", "(312) 555-0199"},
		{"mixed separators", "312.555.0199", "(312) 555-0199"},
		{"excess digits truncated", "31255501991234", "(312) 555-0199"},
		{"digits among letters", "call 312 then 555-0199", "(312) 555-0199"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mask(tt.raw))
		})
	}
}

func TestMask_IsPrefixStable(t *testing.T) {
	// Typing one digit at a time: every intermediate mask must be a
	// prefix of the final mask.
	digits := "3125550199"
	final := Mask(digits)

	for i := 1; i <= len(digits); i++ {
		partial := Mask(digits[:i])
		assert.Equal(t, partial, final[:len(partial)], "mask of %q should prefix %q", digits[:i], final)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		masked   string
		expected string
	}{
		{"masked number", "(312) 555-0199", "3125550199"},
		{"bare digits", "3125550199", "3125550199"},
		{"too short", "312555", ""},
		{"too long", "31255501991", ""},
		{"empty", "", ""},
		{"letters only", "not a phone", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.masked))
		})
	}
}

func TestClean_AgreesWithMask(t *testing.T) {
	// Cleaning a masked value must yield the same 10 digits as
	// stripping the raw input directly.
	inputs := []string{"3125550199", "312-555-0199 ext 4", "(555) 123-4567", "55512345678901"}

	for _, raw := range inputs {
		cleanedDirect := Clean(Mask(raw))
		assert.Len(t, cleanedDirect, 10, "input %q", raw)
		assert.Equal(t, cleanedDirect, Clean(Mask(Mask(raw))), "masking must be idempotent for %q", raw)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("(312) 555-0199"))
	assert.True(t, IsValid("3125550199"))
	assert.False(t, IsValid("312555019"))
	assert.False(t, IsValid(""))

	// IsValid(p) iff Clean(p) is non-empty
	for _, p := range []string{"(312) 555-0199", "312555", "", "31255501991"} {
		assert.Equal(t, Clean(p) != "", IsValid(p), "input %q", p)
	}
}

func TestFormat(t *testing.T) {
	formatted := regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

	assert.Equal(t, "(312) 555-0199", Format("3125550199"))
	assert.Regexp(t, formatted, Format(Clean("(555) 123-4567")))

	// Non-10-digit input passes through unchanged
	assert.Equal(t, "312555", Format("312555"))
	assert.Equal(t, "", Format(""))
	assert.Equal(t, "(312) 555-0199", Format("(312) 555-0199"))
}
