package random

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"pwgen/internal/util/memzero"
)

const seedInfo = "pwgen-seed"

// SeedFromPhrase derives a ChaCha8 seed from an arbitrary phrase.
// Equal phrases always yield equal seeds.
func SeedFromPhrase(phrase string) [32]byte {
	var seed [32]byte
	ikm := []byte(phrase)
	defer memzero.Zero(ikm)

	r := hkdf.New(sha256.New, ikm, nil, []byte(seedInfo))
	// HKDF-SHA256 can emit up to 255*32 bytes, so 32 never fails.
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		panic("random: hkdf read: " + err.Error())
	}
	return seed
}
