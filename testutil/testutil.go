package testutil

import (
	"math/rand"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/nonmax/internal/conv"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Legal returns a pseudo-random value of T that is not T's maximum.
// Every other value of T is reachable.
func Legal[T constraints.Integer](r *RNG) T {
	m := conv.Max[T]()
	for {
		// Truncation keeps the low bits, which are uniform.
		if v := T(r.Uint64()); v != m {
			return v
		}
	}
}

// LegalN returns n values drawn with Legal.
func LegalN[T constraints.Integer](r *RNG, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = Legal[T](r)
	}
	return out
}

// Edges returns the boundary values of T that a non-max integer can hold:
// the minimum, -1 for signed types, 0, 1 and the maximum minus one.
func Edges[T constraints.Integer]() []T {
	var edges []T
	if conv.Signed[T]() {
		edges = append(edges, conv.Min[T](), ^T(0))
	}
	return append(edges, 0, 1, conv.Max[T]()-1)
}
