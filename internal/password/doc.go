// Package password generates random passwords with a fixed composition:
// exactly one digit, exactly one special character, and uppercase letters
// for every remaining position, in shuffled order.
//
// The generator draws from an injectable random.Source. The package-level
// Generate uses the process-wide default source.
package password
