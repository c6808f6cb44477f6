// Package random provides the seeded pseudo-random source used to generate
// player stats, roster compositions and match draws.
//
// A Generator is safe for concurrent use, but sequences are only reproducible
// when a single goroutine consumes it. Goroutines that need reproducible
// sequences should each take a Child.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrInvalidRange indicates a range whose lower bound exceeds its upper bound.
var ErrInvalidRange = errors.New("invalid range")

type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// RandomInRange returns a uniformly distributed integer in [low, high].
func (g *Generator) RandomInRange(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("%w: low %d > high %d", ErrInvalidRange, low, high)
	}
	return low + g.Intn(high-low+1), nil
}

// Intn returns a uniformly distributed integer in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// Child returns a generator seeded from this generator's stream.
func (g *Generator) Child() *Generator {
	g.mu.Lock()
	seed := g.rng.Int63()
	g.mu.Unlock()
	return New(seed)
}
