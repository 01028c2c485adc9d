package dysect

import (
	"github.com/fallnlove/dysect-hash-table/internal/subtable"
	"github.com/fallnlove/dysect-hash-table/shared"
)

// directoryWidth is S, the fixed number of subtables in every
// HashMap's directory. Kept as an untyped constant rather than a type
// parameter: see DESIGN.md for why a runtime-configurable width was
// considered and rejected.
const directoryWidth = shared.DefaultDirectoryWidth

// HashMap is a fixed-width directory of Robin Hood subtables mapping
// keys of type K to values of type V. See the package doc for the
// overall design. The zero value is not usable; construct one with
// New or NewWithHasher.
type HashMap[K comparable, V any] struct {
	dirs   [directoryWidth]*subtable.Subtable[K, V]
	hasher shared.HashFn[K]
	equal  shared.EqualFn[K]
	size   int
}

func (m *HashMap[K, V]) route(key K) *subtable.Subtable[K, V] {
	h := m.hasher(key)
	return m.dirs[h&uint64(directoryWidth-1)]
}

// Insert stores (key, value) if key is absent; an existing value for
// key is left untouched. Reports true iff a new entry was created.
func (m *HashMap[K, V]) Insert(key K, value V) bool {
	inserted := m.route(key).Insert(key, value)
	if inserted {
		m.size++
	}
	return inserted
}

// Erase removes key if present. Reports true iff it was present.
func (m *HashMap[K, V]) Erase(key K) bool {
	removed := m.route(key).Erase(key)
	if removed {
		m.size--
	}
	return removed
}

// Find returns an iterator positioned at key's entry, or End() if key
// is absent.
func (m *HashMap[K, V]) Find(key K) Iterator[K, V] {
	h := m.hasher(key)
	subIdx := int(h & uint64(directoryWidth-1))
	inner := m.dirs[subIdx].Find(key)
	if !inner.Valid() {
		return m.End()
	}
	return Iterator[K, V]{m: m, subIdx: subIdx, inner: inner}
}

// Index ensures key is present, inserting the zero value of V if it
// was absent, and returns a pointer to its stored value. The pointer
// is invalidated by any subsequent operation that triggers a resize
// of the owning subtable.
func (m *HashMap[K, V]) Index(key K) *V {
	ptr, inserted := m.route(key).IndexInserted(key)
	if inserted {
		m.size++
	}
	return ptr
}

// At returns the stored value for key, or ErrKeyNotFound if absent.
// The failure is the subtable's, forwarded unchanged.
func (m *HashMap[K, V]) At(key K) (V, error) {
	return m.route(key).At(key)
}

// Clear removes every entry from every subtable and resets Size to 0.
func (m *HashMap[K, V]) Clear() {
	for _, s := range m.dirs {
		s.Clear()
	}
	m.size = 0
}

// Size returns the total number of key/value pairs across the
// directory.
func (m *HashMap[K, V]) Size() int { return m.size }

// Empty reports whether the map holds no entries.
func (m *HashMap[K, V]) Empty() bool { return m.size == 0 }

// HashFunction returns the hash functor the map was constructed with.
func (m *HashMap[K, V]) HashFunction() shared.HashFn[K] { return m.hasher }

// Each calls fn for every (key, value) pair, directory slot order then
// slot-index order within a subtable, stopping early if fn returns
// true. Iteration order is not insertion order, not key order, and may
// change after any resize of a visited subtable.
func (m *HashMap[K, V]) Each(fn func(key K, value V) bool) {
	for _, s := range m.dirs {
		stop := false
		s.Each(func(key K, value V) bool {
			if fn(key, value) {
				stop = true
				return true
			}
			return false
		})
		if stop {
			return
		}
	}
}
