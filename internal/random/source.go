package random

import (
	"math/rand/v2"
	"sync"
)

// Source is a uniform random provider.
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Shuffle permutes n elements uniformly using swap.
	Shuffle(n int, swap func(i, j int))
}

type globalSource struct{}

func (globalSource) IntN(n int) int                     { return rand.IntN(n) }
func (globalSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Default returns the process-wide source. It is safe for concurrent use.
func Default() Source { return globalSource{} }

// NewSeeded returns a deterministic ChaCha8 source.
// The returned source must not be shared between goroutines; wrap it with
// Locked if it has to be.
func NewSeeded(seed [32]byte) Source {
	return rand.New(rand.NewChaCha8(seed))
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked serialises access to src.
func Locked(src Source) Source {
	if ls, ok := src.(*lockedSource); ok {
		return ls
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *lockedSource) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.src.Shuffle(n, swap)
}
