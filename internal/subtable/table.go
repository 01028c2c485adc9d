// Package subtable implements the Robin Hood open-addressed flat table
// that backs a single shard of a dysect.HashMap's directory. Each
// Subtable is a self-contained hash table: it owns a dense array of
// slots, grows independently of its siblings, and knows nothing about
// the directory that holds it.
package subtable

import (
	"github.com/pkg/errors"

	"github.com/fallnlove/dysect-hash-table/shared"
)

// ErrKeyNotFound is returned by At when the requested key is absent.
var ErrKeyNotFound = errors.New("dysect: key not found")

// Subtable is a Robin Hood hash table over a power-of-two-sized dense
// slot array. It is not safe for concurrent use.
type Subtable[K comparable, V any] struct {
	slots   []slot[K, V]
	hasher  shared.HashFn[K]
	equal   shared.EqualFn[K]
	length  int
	maxLoad float64
}

// New creates an empty Subtable with the default initial capacity and
// load factor, using hasher and equal to address and compare keys.
func New[K comparable, V any](hasher shared.HashFn[K], equal shared.EqualFn[K]) *Subtable[K, V] {
	return &Subtable[K, V]{
		slots:   newSlots[K, V](shared.DefaultSubtableCapacity),
		hasher:  hasher,
		equal:   equal,
		maxLoad: shared.DefaultMaxLoad,
	}
}

func newSlots[K comparable, V any](capacity int) []slot[K, V] {
	slots := make([]slot[K, V], capacity)
	for i := range slots {
		slots[i].psl = emptySlot
	}
	return slots
}

func (t *Subtable[K, V]) capMinus1() uint64 {
	return uint64(len(t.slots)) - 1
}

func (t *Subtable[K, V]) home(key K) uint64 {
	return t.hasher(key) & t.capMinus1()
}

// Size returns the number of live entries.
func (t *Subtable[K, V]) Size() int { return t.length }

// Empty reports whether the subtable holds no entries.
func (t *Subtable[K, V]) Empty() bool { return t.length == 0 }

// Capacity returns the current size of the slot array.
func (t *Subtable[K, V]) Capacity() int { return len(t.slots) }

// HashFunction returns the hash functor this subtable was constructed
// with, for introspection by tests.
func (t *Subtable[K, V]) HashFunction() shared.HashFn[K] { return t.hasher }

// Find returns an iterator positioned at key's slot, or End() if key
// is absent. Lookup walks forward from home(key) while slots are
// occupied with psl at least the current walk distance; it stops
// (miss) the moment it sees an empty slot or a slot whose psl is
// strictly less than the walk distance, since neither case can hide
// the key further along the probe sequence.
func (t *Subtable[K, V]) Find(key K) Iterator[K, V] {
	idx := t.home(key)
	for dist := int32(0); dist <= t.slots[idx].psl; dist++ {
		if t.equal(t.slots[idx].key, key) {
			return Iterator[K, V]{owner: t, idx: int(idx)}
		}
		idx = (idx + 1) & t.capMinus1()
	}
	return t.End()
}

// Insert stores (key, value) if key is absent. It reports true iff a
// new entry was created; an existing value for key is left untouched.
func (t *Subtable[K, V]) Insert(key K, value V) bool {
	idx := t.home(key)
	psl := int32(0)
	for ; psl <= t.slots[idx].psl; psl++ {
		if t.equal(t.slots[idx].key, key) {
			// tie-break on equal psl and exact match alike: the
			// resident (the already-present key) stays.
			return false
		}
		idx = (idx + 1) & t.capMinus1()
	}

	t.length++
	incoming := slot[K, V]{key: key, value: value, psl: psl}
	t.emplace(incoming, idx)

	if float64(t.length) >= t.maxLoad*float64(len(t.slots)) {
		t.grow()
	}
	return true
}

// emplace walks forward from idx applying the Robin Hood creed: the
// incoming record displaces any resident with a strictly smaller psl,
// and the displaced record continues the walk in its place. Ties keep
// the resident and let the newcomer continue (policy "psl >= keeps
// resident", per the probe-distance ordering this table maintains).
func (t *Subtable[K, V]) emplace(incoming slot[K, V], idx uint64) {
	for {
		if !t.slots[idx].occupied() {
			t.slots[idx] = incoming
			return
		}
		if incoming.psl > t.slots[idx].psl {
			incoming, t.slots[idx] = t.slots[idx], incoming
		}
		idx = (idx + 1) & t.capMinus1()
		incoming.psl++
	}
}

func (t *Subtable[K, V]) grow() {
	old := t.slots
	t.slots = newSlots[K, V](len(old) * 2)
	for i := range old {
		if old[i].occupied() {
			old[i].psl = 0
			t.emplace(old[i], t.home(old[i].key))
		}
	}
}

// Erase removes key if present and performs back-shift compaction on
// its successors. It reports true iff key was present.
func (t *Subtable[K, V]) Erase(key K) bool {
	idx := t.home(key)
	found := -1
	for psl := int32(0); psl <= t.slots[idx].psl; psl++ {
		if t.equal(t.slots[idx].key, key) {
			found = int(idx)
			break
		}
		idx = (idx + 1) & t.capMinus1()
	}
	if found == -1 {
		return false
	}

	t.length--
	cur := uint64(found)
	t.slots[cur].clear()

	next := (cur + 1) & t.capMinus1()
	for t.slots[next].psl > 0 {
		t.slots[next].psl--
		t.slots[cur], t.slots[next] = t.slots[next], t.slots[cur]
		cur = next
		next = (cur + 1) & t.capMinus1()
	}
	return true
}

// Index ensures key is present, inserting the zero value of V if it
// was absent, and returns a pointer to its stored value.
func (t *Subtable[K, V]) Index(key K) *V {
	v, _ := t.IndexInserted(key)
	return v
}

// IndexInserted is Index plus a flag reporting whether the lookup
// caused a new entry to be created, so callers that aggregate size
// across multiple subtables (the directory) can track insertions
// without re-deriving them from Size() deltas.
func (t *Subtable[K, V]) IndexInserted(key K) (*V, bool) {
	var zero V
	inserted := t.Insert(key, zero)
	it := t.Find(key)
	return it.valuePtr(), inserted
}

// At returns the stored value for key, or ErrKeyNotFound if absent.
func (t *Subtable[K, V]) At(key K) (V, error) {
	it := t.Find(key)
	if !it.Valid() {
		var zero V
		return zero, errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}
	return it.Value(), nil
}

// Clear resets the subtable to its initial empty state; capacity
// returns to the default.
func (t *Subtable[K, V]) Clear() {
	t.slots = newSlots[K, V](shared.DefaultSubtableCapacity)
	t.length = 0
}

// Begin returns an iterator positioned at the lowest-index occupied
// slot, or End() if the subtable is empty.
func (t *Subtable[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{owner: t, idx: 0}
	it.skipEmpty()
	return it
}

// End returns the terminal iterator for this subtable.
func (t *Subtable[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{owner: t, idx: len(t.slots)}
}

// Each calls fn for every (key, value) pair in slot order, stopping
// early if fn returns true.
func (t *Subtable[K, V]) Each(fn func(key K, value V) bool) {
	for it := t.Begin(); it.Valid(); it.Next() {
		if fn(it.Key(), it.Value()) {
			return
		}
	}
}

// Copy returns a deep copy of the subtable: a new slot array holding
// the same entries, independent of the original.
func (t *Subtable[K, V]) Copy() *Subtable[K, V] {
	cp := &Subtable[K, V]{
		slots:   make([]slot[K, V], len(t.slots)),
		hasher:  t.hasher,
		equal:   t.equal,
		length:  t.length,
		maxLoad: t.maxLoad,
	}
	copy(cp.slots, t.slots)
	return cp
}
