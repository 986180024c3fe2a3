package password

import (
	"pwgen/internal/random"
)

// Generator builds passwords from a random source. It keeps no state
// between calls other than its configuration.
type Generator struct {
	src       random.Source
	minLength int
}

// Option configures a Generator.
type Option func(*Generator)

// WithMinLength raises the minimum accepted length. Values below MinLength
// are ignored.
func WithMinLength(n int) Option {
	return func(g *Generator) {
		if n >= MinLength {
			g.minLength = n
		}
	}
}

// New returns a Generator drawing from src, or from random.Default when src
// is nil.
func New(src random.Source, opts ...Option) *Generator {
	if src == nil {
		src = random.Default()
	}
	g := &Generator{src: src, minLength: MinLength}
	for _, o := range opts {
		o(g)
	}
	return g
}

// MinLength reports the shortest length g accepts.
func (g *Generator) MinLength() int { return g.minLength }

// Generate returns a password of exactly length characters: one digit, one
// special character and length-2 uppercase letters, shuffled.
func (g *Generator) Generate(length int) (string, error) {
	if length < g.minLength {
		return "", &InvalidLengthError{Length: length, Min: g.minLength}
	}

	buf := make([]byte, 0, length)
	buf = append(buf, pick(g.src, Digits), pick(g.src, Specials))
	for i := 2; i < length; i++ {
		buf = append(buf, pick(g.src, Letters))
	}

	g.src.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	return string(buf), nil
}

func pick(src random.Source, alphabet string) byte {
	return alphabet[src.IntN(len(alphabet))]
}

var std = New(nil)

// Generate returns a password of the given length using the default source.
func Generate(length int) (string, error) {
	return std.Generate(length)
}
