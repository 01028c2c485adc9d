// Ad-hoc benchmarking scaffolding, inspired by the comparative
// harnesses in https://tessil.github.io/2016/08/29/benchmark-hopscotch-map.html
// style write-ups: it exists to watch the two-level directory design
// trade a little of a monolithic Robin Hood table's latency for lower
// per-entry overhead, not to gate correctness.
package dysect_test

import (
	"math/rand"
	"testing"

	"github.com/fallnlove/dysect-hash-table"
	"github.com/fallnlove/dysect-hash-table/internal/baseline"
)

// keysFor returns n random keys, regenerated per sub-benchmark so each
// one sizes its own input to its own b.N instead of the parent's.
func keysFor(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rand.Uint64()
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	b.Run("dysect", func(b *testing.B) {
		keys := keysFor(b.N)
		m := dysect.New[uint64, uint64]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Insert(keys[i], keys[i])
		}
	})

	b.Run("baseline", func(b *testing.B) {
		keys := keysFor(b.N)
		m := baseline.New[uint64, uint64]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Put(keys[i], keys[i])
		}
	})

	b.Run("builtin", func(b *testing.B) {
		keys := keysFor(b.N)
		m := make(map[uint64]uint64, b.N)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m[keys[i]] = keys[i]
		}
	})
}

func BenchmarkGetHit(b *testing.B) {
	const n = 1 << 16
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rand.Uint64()
	}

	b.Run("dysect", func(b *testing.B) {
		m := dysect.New[uint64, uint64]()
		for _, k := range keys {
			m.Insert(k, k)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Find(keys[i%n])
		}
	})

	b.Run("baseline", func(b *testing.B) {
		m := baseline.New[uint64, uint64]()
		for _, k := range keys {
			m.Put(k, k)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Get(keys[i%n])
		}
	})

	b.Run("builtin", func(b *testing.B) {
		m := make(map[uint64]uint64, n)
		for _, k := range keys {
			m[k] = k
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = m[keys[i%n]]
		}
	})
}
