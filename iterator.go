package dysect

import "github.com/fallnlove/dysect-hash-table/internal/subtable"

// Iterator is a composite position: a subtable index into the
// directory plus an inner subtable.Iterator. Advancing steps the
// inner iterator and, on its exhaustion, skips forward to the next
// non-empty subtable. The end state is the tagged position
// (directoryWidth, <end iterator of the last subtable>).
//
// Any insert that triggers a resize of the subtable an iterator
// points into invalidates that iterator, as does any erase performed
// against that subtable; operations that leave a subtable untouched
// leave iterators into it valid.
type Iterator[K comparable, V any] struct {
	m      *HashMap[K, V]
	subIdx int
	inner  subtable.Iterator[K, V]
}

// Begin returns an iterator positioned at the first entry found
// scanning the directory left to right, or End() if the map is empty.
func (m *HashMap[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{m: m, subIdx: 0, inner: m.dirs[0].Begin()}
	it.advance()
	return it
}

// End returns the terminal sentinel iterator for this map.
func (m *HashMap[K, V]) End() Iterator[K, V] {
	last := directoryWidth - 1
	return Iterator[K, V]{m: m, subIdx: directoryWidth, inner: m.dirs[last].End()}
}

// advance skips forward over exhausted subtables until the inner
// iterator is valid or the directory is exhausted.
func (it *Iterator[K, V]) advance() {
	for it.subIdx < directoryWidth && !it.inner.Valid() {
		it.subIdx++
		if it.subIdx < directoryWidth {
			it.inner = it.m.dirs[it.subIdx].Begin()
		}
	}
}

// Valid reports whether the iterator is positioned on a live entry.
func (it Iterator[K, V]) Valid() bool {
	return it.subIdx < directoryWidth
}

// Next advances to the next entry in directory order, or to End() if
// none remain.
func (it *Iterator[K, V]) Next() {
	it.inner.Next()
	it.advance()
}

// Key returns the key at the current position. Only valid when Valid().
func (it Iterator[K, V]) Key() K { return it.inner.Key() }

// Value returns the value at the current position. Only valid when Valid().
func (it Iterator[K, V]) Value() V { return it.inner.Value() }

// Equal reports whether it and other reference the same directory
// slot and subtable position. Two end iterators of the same map
// always compare equal.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if it.m != other.m || it.subIdx != other.subIdx {
		return false
	}
	if it.subIdx >= directoryWidth {
		return true
	}
	return it.inner.Equal(other.inner)
}
