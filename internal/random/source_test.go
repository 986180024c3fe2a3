package random_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwgen/internal/random"
)

func TestSeedFromPhrase(t *testing.T) {
	a := random.SeedFromPhrase("alpha")
	assert.Equal(t, a, random.SeedFromPhrase("alpha"))
	assert.NotEqual(t, a, random.SeedFromPhrase("beta"))
	assert.NotEqual(t, [32]byte{}, random.SeedFromPhrase(""))
}

func TestNewSeeded_Deterministic(t *testing.T) {
	seed := random.SeedFromPhrase("fixed")
	a, b := random.NewSeeded(seed), random.NewSeeded(seed)

	for range 100 {
		assert.Equal(t, a.IntN(26), b.IntN(26))
	}

	xs := []int{0, 1, 2, 3, 4, 5, 6, 7}
	ys := append([]int(nil), xs...)
	a.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	b.Shuffle(len(ys), func(i, j int) { ys[i], ys[j] = ys[j], ys[i] })
	assert.Equal(t, xs, ys)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, xs)
}

func TestDefault_Range(t *testing.T) {
	src := random.Default()
	seen := make(map[int]bool)
	for range 1000 {
		v := src.IntN(10)
		require.True(t, v >= 0 && v < 10, "out of range: %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, 10)
}

func TestLocked_Concurrent(t *testing.T) {
	src := random.Locked(random.NewSeeded(random.SeedFromPhrase("shared")))
	assert.Same(t, src, random.Locked(src))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := []byte("ABCDEFGH")
			for range 500 {
				_ = src.IntN(26)
				src.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
			}
		}()
	}
	wg.Wait()
}
