package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// EntropySeed draws a fresh seed. It falls back to the runtime generator if
// the system source is unavailable.
func EntropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return rand.Int64()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Seed reports the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Perm256 returns a uniformly shuffled permutation of 0..255.
func (r *RNG) Perm256() [256]int {
	var p [256]int
	for i := range p {
		p[i] = i
	}
	r.r.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
