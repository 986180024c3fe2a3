package password

import "fmt"

// Validate checks that pw holds exactly one digit, exactly one special
// character, only uppercase letters otherwise, and at least MinLength
// characters.
func Validate(pw string) error {
	if len(pw) < MinLength {
		return fmt.Errorf("%w: length %d below %d", ErrComposition, len(pw), MinLength)
	}
	var digits, specials int
	for i := 0; i < len(pw); i++ {
		c := pw[i]
		switch {
		case isDigit(c):
			digits++
		case isSpecial(c):
			specials++
		case isLetter(c):
		default:
			return fmt.Errorf("%w: unexpected character %q at %d", ErrComposition, c, i)
		}
	}
	if digits != 1 {
		return fmt.Errorf("%w: want 1 digit, got %d", ErrComposition, digits)
	}
	if specials != 1 {
		return fmt.Errorf("%w: want 1 special character, got %d", ErrComposition, specials)
	}
	return nil
}
