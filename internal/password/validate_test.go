package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		ok   bool
	}{
		{name: "example", pw: "A3B!CDEFG", ok: true},
		{name: "minimum", pw: "7%Q", ok: true},
		{name: "too_short", pw: "1!"},
		{name: "no_digit", pw: "AB!CD"},
		{name: "two_digits", pw: "A1!C2"},
		{name: "no_special", pw: "AB1CD"},
		{name: "two_specials", pw: "A1!C#"},
		{name: "lowercase", pw: "a1!CD"},
		{name: "foreign_symbol", pw: "A1^CD"},
		{name: "empty", pw: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.pw)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrComposition)
		})
	}
}

func TestCharacterClassesDisjoint(t *testing.T) {
	for i := 0; i < len(Specials); i++ {
		c := Specials[i]
		assert.False(t, isDigit(c) || isLetter(c), "special %q overlaps", c)
	}
	assert.Len(t, Digits, 10)
	assert.Len(t, Specials, 11)
	assert.Len(t, Letters, 26)
}
