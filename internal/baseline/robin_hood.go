// Package baseline implements a conventional, single-level Robin Hood
// hash table: one flat bucket array, no directory of subtables. It
// exists purely as the "conventional Robin-Hood hash table" reference
// point the top-level package's docs compare against (see
// dysect.HashMap's package doc) and is exercised only from the
// benchmark suite, never from library consumers.
package baseline

import (
	"github.com/fallnlove/dysect-hash-table/shared"
)

const emptyBucket = -1

type bucket[K comparable, V any] struct {
	key K
	// psl is the probe sequence length. emptyBucket signals a free slot.
	psl   int32
	value V
}

// RobinHood is a monolithic Robin Hood table with no sharding, used as
// the latency baseline the two-level dysect.HashMap is measured against.
type RobinHood[K comparable, V any] struct {
	buckets    []bucket[K, V]
	hasher     shared.HashFn[K]
	equal      shared.EqualFn[K]
	length     uintptr
	capMinus1  uintptr
	nextResize uintptr
	maxLoad    float32
}

func newBucketArray[K comparable, V any](capacity uintptr) []bucket[K, V] {
	buckets := make([]bucket[K, V], capacity)
	for i := range buckets {
		buckets[i].psl = emptyBucket
	}
	return buckets
}

// New creates a ready to use baseline table with the default hasher
// for K and the default load factor.
func New[K comparable, V any]() *RobinHood[K, V] {
	return NewWithHasher[K, V](shared.GetHasher[K](), shared.GetEqual[K]())
}

// NewWithHasher creates a baseline table using the supplied hasher and
// equality predicate.
func NewWithHasher[K comparable, V any](hasher shared.HashFn[K], equal shared.EqualFn[K]) *RobinHood[K, V] {
	m := &RobinHood[K, V]{
		hasher:  hasher,
		equal:   equal,
		maxLoad: shared.DefaultMaxLoad,
	}
	m.resize(shared.DefaultSubtableCapacity)
	return m
}

// Get returns the value stored for key, or false if absent.
func (m *RobinHood[K, V]) Get(key K) (V, bool) {
	var v V
	idx := uintptr(m.hasher(key)) & m.capMinus1
	for psl := int32(0); psl <= m.buckets[idx].psl; psl++ {
		if m.equal(m.buckets[idx].key, key) {
			return m.buckets[idx].value, true
		}
		idx = (idx + 1) & m.capMinus1
	}
	return v, false
}

func (m *RobinHood[K, V]) resize(n uintptr) {
	newm := RobinHood[K, V]{
		capMinus1:  n - 1,
		length:     m.length,
		buckets:    newBucketArray[K, V](n),
		hasher:     m.hasher,
		equal:      m.equal,
		maxLoad:    m.maxLoad,
		nextResize: uintptr(float32(n) * m.maxLoad),
	}

	for i := range m.buckets {
		if m.buckets[i].psl != emptyBucket {
			idx := newm.hasher(m.buckets[i].key)
			b := m.buckets[i]
			b.psl = 0
			newm.emplace(&b, uintptr(idx)&newm.capMinus1)
		}
	}

	m.capMinus1 = newm.capMinus1
	m.buckets = newm.buckets
	m.nextResize = newm.nextResize
}

// Put maps key to val. Returns true iff key was newly inserted.
func (m *RobinHood[K, V]) Put(key K, val V) bool {
	if m.length >= m.nextResize {
		m.resize((m.capMinus1 + 1) * 2)
	}

	idx := uintptr(m.hasher(key)) & m.capMinus1
	psl := int32(0)
	for ; psl <= m.buckets[idx].psl; psl++ {
		if m.equal(m.buckets[idx].key, key) {
			m.buckets[idx].value = val
			return false
		}
		idx = (idx + 1) & m.capMinus1
	}

	m.length++
	newBucket := bucket[K, V]{key: key, value: val, psl: psl}
	m.emplace(&newBucket, idx)
	return true
}

func (m *RobinHood[K, V]) emplace(current *bucket[K, V], idx uintptr) {
	for ; ; current.psl++ {
		if m.buckets[idx].psl == emptyBucket {
			m.buckets[idx] = *current
			return
		}
		if current.psl > m.buckets[idx].psl {
			*current, m.buckets[idx] = m.buckets[idx], *current
		}
		idx = (idx + 1) & m.capMinus1
	}
}

// Remove removes key from the table. Returns true iff it was present.
func (m *RobinHood[K, V]) Remove(key K) bool {
	idx := uintptr(m.hasher(key)) & m.capMinus1
	var current *bucket[K, V]
	for psl := int32(0); psl <= m.buckets[idx].psl; psl++ {
		if m.equal(m.buckets[idx].key, key) {
			current = &m.buckets[idx]
			break
		}
		idx = (idx + 1) & m.capMinus1
	}
	if current == nil {
		return false
	}

	m.length--
	current.psl = emptyBucket

	idx = (idx + 1) & m.capMinus1
	next := &m.buckets[idx]
	for next.psl > 0 {
		next.psl--
		*current, *next = *next, *current
		current = next
		idx = (idx + 1) & m.capMinus1
		next = &m.buckets[idx]
	}
	return true
}

// Size returns the number of stored key/value pairs.
func (m *RobinHood[K, V]) Size() int {
	return int(m.length)
}

// Each calls fn on every key/value pair in bucket order.
func (m *RobinHood[K, V]) Each(fn func(key K, val V) bool) {
	for _, b := range m.buckets {
		if b.psl != emptyBucket {
			if fn(b.key, b.value) {
				return
			}
		}
	}
}
