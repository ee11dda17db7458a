package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Random is the source of every draw the game makes. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom returns a PCG-backed source. A zero seed draws one from crypto/rand.
func NewRandom(seed uint64) (*rand.Rand, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func chance(rng Random, p float64) bool {
	return rng.Float64() < p
}

// between returns a uniform int in [lo, hi].
func between(rng Random, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func pick[T any](rng Random, xs []T) T {
	return xs[rng.IntN(len(xs))]
}

type weighted[T any] struct {
	value  T
	weight float64
}

func pickWeighted[T any](rng Random, choices []weighted[T]) T {
	var total float64
	for _, c := range choices {
		total += c.weight
	}
	r := rng.Float64() * total
	for _, c := range choices {
		if r < c.weight {
			return c.value
		}
		r -= c.weight
	}
	return choices[len(choices)-1].value
}
