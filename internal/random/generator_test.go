package random

import (
	"errors"
	"sync"
	"testing"
)

// TestRandomInRangeStaysInBounds ensures every draw lands in the closed interval.
func TestRandomInRangeStaysInBounds(t *testing.T) {
	g := New(1)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v, err := g.RandomInRange(5, 9)
		if err != nil {
			t.Fatalf("RandomInRange returned error: %v", err)
		}
		if v < 5 || v > 9 {
			t.Fatalf("RandomInRange(5, 9) = %d", v)
		}
		seen[v] = true
	}
	for v := 5; v <= 9; v++ {
		if !seen[v] {
			t.Fatalf("value %d never drawn in 1000 draws", v)
		}
	}
}

// TestRandomInRangeSingleValue ensures a degenerate range returns its only value.
func TestRandomInRangeSingleValue(t *testing.T) {
	g := New(1)
	v, err := g.RandomInRange(4, 4)
	if err != nil {
		t.Fatalf("RandomInRange returned error: %v", err)
	}
	if v != 4 {
		t.Fatalf("RandomInRange(4, 4) = %d, want 4", v)
	}
}

// TestRandomInRangeRejectsInvertedRange ensures low > high is an error.
func TestRandomInRangeRejectsInvertedRange(t *testing.T) {
	_, err := New(1).RandomInRange(3, 2)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("RandomInRange error = %v, want %v", err, ErrInvalidRange)
	}
}

// TestGeneratorIsDeterministic ensures equal seeds yield equal sequences.
func TestGeneratorIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		if x, y := a.Intn(100), b.Intn(100); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

// TestChildIsDeterministic ensures children derived from equal parents match.
func TestChildIsDeterministic(t *testing.T) {
	ca, cb := New(7).Child(), New(7).Child()
	for i := 0; i < 20; i++ {
		if x, y := ca.Intn(1000), cb.Intn(1000); x != y {
			t.Fatalf("child draw %d differs: %d != %d", i, x, y)
		}
	}
}

// TestGeneratorConcurrentUse ensures shared use from goroutines is safe.
func TestGeneratorConcurrentUse(t *testing.T) {
	g := New(3)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := g.RandomInRange(1, 9); err != nil {
					t.Errorf("RandomInRange returned error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
}
