// Package invariant holds small, in-process correctness probes used
// by the test suite to assert the structural invariants the design
// promises (uniqueness, the Robin Hood probe-distance ordering, and
// the load-factor ceiling) rather than only their externally visible
// effects. These are exercised only from _test.go files: like the
// repository's CLI driver and benchmark scaffolding, they sit outside
// the hash table core itself.
package invariant

import "fmt"

// Slot is the minimal view a probe needs of one table cell.
type Slot struct {
	Occupied bool
	PSL      int
	Home     int // hash(key) mod capacity, precomputed by the caller
}

// RobinHoodOrdering checks, for a flat array of slots in index order,
// that every occupied slot is reachable from its home by walking
// forward exactly PSL positions, and that no predecessor slot could
// justify shifting an entry earlier (the back-shift invariant). It
// returns a non-nil error describing the first violation found.
func RobinHoodOrdering(slots []Slot) error {
	n := len(slots)
	if n == 0 {
		return nil
	}
	for i, s := range slots {
		if !s.Occupied {
			continue
		}
		dist := (i - s.Home + n) % n
		if dist != s.PSL {
			return fmt.Errorf("slot %d: psl %d does not match walk distance %d from home %d", i, s.PSL, dist, s.Home)
		}

		prev := (i - 1 + n) % n
		if slots[prev].Occupied && slots[prev].PSL < s.PSL-1 {
			return fmt.Errorf("slot %d: predecessor %d has psl %d, lower than psl-1=%d", i, prev, slots[prev].PSL, s.PSL-1)
		}
	}
	return nil
}

// LoadFactorCeiling reports an error if size/capacity exceeds alpha.
func LoadFactorCeiling(size, capacity int, alpha float64) error {
	if capacity == 0 {
		if size != 0 {
			return fmt.Errorf("zero capacity but size %d", size)
		}
		return nil
	}
	if float64(size) > alpha*float64(capacity) {
		return fmt.Errorf("load %f exceeds alpha %f (size %d, capacity %d)", float64(size)/float64(capacity), alpha, size, capacity)
	}
	return nil
}

// Uniqueness reports an error if any key appears more than once.
func Uniqueness[K comparable](keys []K) error {
	seen := make(map[K]int, len(keys))
	for i, k := range keys {
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("key %v present at both slot %d and slot %d", k, prev, i)
		}
		seen[k] = i
	}
	return nil
}
