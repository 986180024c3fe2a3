package password

import "strings"

const (
	Digits   = "0123456789"
	Specials = "+-*/?!@#$%&"
	Letters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

const (
	// MinLength is the shortest password that can hold one digit, one
	// special character and one letter.
	MinLength = 3
	// DefaultLength is used by the CLI when no length is given.
	DefaultLength = 9
)

func isDigit(c byte) bool   { return c >= '0' && c <= '9' }
func isLetter(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isSpecial(c byte) bool { return strings.IndexByte(Specials, c) >= 0 }
