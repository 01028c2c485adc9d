package dysect

import (
	"github.com/fallnlove/dysect-hash-table/internal/subtable"
	"github.com/fallnlove/dysect-hash-table/shared"
)

// New creates an empty HashMap using the default hasher and equality
// predicate for K. Panics if K has no default hasher (see
// shared.GetHasher); use NewWithHasher for such key types.
func New[K comparable, V any]() *HashMap[K, V] {
	return NewWithHasher[K, V](shared.GetHasher[K]())
}

// NewWithHasher creates an empty HashMap using hasher and the default
// (==) equality predicate.
func NewWithHasher[K comparable, V any](hasher shared.HashFn[K]) *HashMap[K, V] {
	return NewWithHasherAndEqual[K, V](hasher, shared.GetEqual[K]())
}

// NewWithHasherAndEqual creates an empty HashMap using the supplied
// hasher and equality predicate. equal must be consistent with hasher:
// equal(a, b) implies hasher(a) == hasher(b).
func NewWithHasherAndEqual[K comparable, V any](hasher shared.HashFn[K], equal shared.EqualFn[K]) *HashMap[K, V] {
	m := &HashMap[K, V]{hasher: hasher, equal: equal}
	for i := range m.dirs {
		m.dirs[i] = subtable.New[K, V](hasher, equal)
	}
	return m
}

// FromPairs builds a HashMap from a sequence of pairs, inserting each
// in order. When a key repeats, the first occurrence wins, matching
// the subtable's own Insert semantics.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) *HashMap[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// FromPairsWithHasher is FromPairs using an explicit hasher and
// equality predicate.
func FromPairsWithHasher[K comparable, V any](pairs []Pair[K, V], hasher shared.HashFn[K], equal shared.EqualFn[K]) *HashMap[K, V] {
	m := NewWithHasherAndEqual[K, V](hasher, equal)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// Copy returns a deep copy of m: the hash functor is shared (it is
// stateless and value-safe to share) and every subtable is deep
// copied, so mutations on the copy never affect the original or vice
// versa.
func (m *HashMap[K, V]) Copy() *HashMap[K, V] {
	cp := &HashMap[K, V]{hasher: m.hasher, equal: m.equal, size: m.size}
	for i, s := range m.dirs {
		cp.dirs[i] = s.Copy()
	}
	return cp
}

// CopyFrom replaces m's contents with a deep copy of other. Assigning
// a map to itself is a no-op.
func (m *HashMap[K, V]) CopyFrom(other *HashMap[K, V]) {
	if m == other {
		return
	}
	m.hasher = other.hasher
	m.equal = other.equal
	m.size = other.size
	for i, s := range other.dirs {
		m.dirs[i] = s.Copy()
	}
}
