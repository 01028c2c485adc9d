package dysect_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallnlove/dysect-hash-table/internal/subtable"

	"github.com/fallnlove/dysect-hash-table"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// S1 basic
func TestBasicInsertFindIterate(t *testing.T) {
	m := dysect.New[int, int]()
	m.Insert(1, 5)
	m.Insert(3, 4)
	m.Insert(2, 1)

	assert.Equal(t, 3, m.Size())

	it := m.Find(3)
	require.True(t, it.Valid())
	assert.Equal(t, 4, it.Value())

	assert.False(t, m.Find(7).Valid())

	seen := map[int]int{}
	for it := m.Begin(); it.Valid(); it.Next() {
		seen[it.Key()] = it.Value()
	}
	assert.Equal(t, map[int]int{1: 5, 3: 4, 2: 1}, seen)
}

// S2 overwrite via index
func TestIndexOverwriteAndGrow(t *testing.T) {
	m := dysect.New[int, int]()
	m.Insert(3, 4)

	*m.Index(3) = 7
	assert.Equal(t, 7, *m.Index(3))

	before := m.Size()
	assert.Equal(t, 0, *m.Index(0))
	assert.Equal(t, before+1, m.Size())
}

// S3 erase compaction
func TestEraseCompactionIdentityHash(t *testing.T) {
	identity := func(k int) uint64 { return uint64(k) }
	m := dysect.NewWithHasher[int, int](identity)

	for i := 0; i < 16; i++ {
		m.Insert(i, i)
	}
	assert.True(t, m.Erase(0))
	assert.Equal(t, 15, m.Size())

	for i := 1; i < 16; i++ {
		require.True(t, m.Find(i).Valid(), "key %d should still be reachable", i)
	}
}

// S4 failure
func TestAtMissingKey(t *testing.T) {
	m := dysect.New[int, int]()
	m.Insert(2, 20)
	m.Insert(-7, -70)
	m.Insert(0, 0)

	_, err := m.At(8)
	assert.ErrorIs(t, err, dysect.ErrKeyNotFound)
	assert.ErrorIs(t, err, subtable.ErrKeyNotFound)

	v, err := m.At(2)
	require.NoError(t, err)
	assert.Equal(t, 20, v)
}

// S5 copy + mutate
func TestCopyIndependence(t *testing.T) {
	a := dysect.New[int, int]()
	a.Insert(-3, 3)
	a.Insert(-2, 2)
	a.Insert(-1, 1)

	b := a.Copy()
	b.Insert(0, 0)

	require.True(t, b.Find(0).Valid())
	assert.False(t, a.Find(0).Valid())

	c := b.Copy()
	b.Clear()
	require.True(t, c.Find(0).Valid())

	// destroying b (dropping references) and c must not disturb a.
	assert.True(t, a.Find(-3).Valid())
	assert.True(t, a.Find(-2).Valid())
	assert.True(t, a.Find(-1).Valid())
}

// S6 pathological hash
func TestPathologicalHashAllZero(t *testing.T) {
	zeroHash := func(int) uint64 { return 0 }
	m := dysect.NewWithHasher[int, int](zeroHash)

	const n = 1000
	for i := 0; i < n; i++ {
		m.Insert(i, i*i)
	}
	assert.Equal(t, n, m.Size())

	for i := 0; i < n; i++ {
		it := m.Find(i)
		require.True(t, it.Valid())
		assert.Equal(t, i*i, it.Value())
	}

	count := 0
	m.Each(func(key, val int) bool {
		count++
		return false
	})
	assert.Equal(t, n, count)
}

func TestSizeConsistency(t *testing.T) {
	m := dysect.New[uint64, uint64]()
	for i := uint64(0); i < 777; i++ {
		m.Insert(i, i)
	}
	for i := uint64(100); i < 200; i++ {
		m.Erase(i)
	}

	count := 0
	for it := m.Begin(); it.Valid(); it.Next() {
		count++
	}
	assert.Equal(t, m.Size(), count)
}

func TestIteratorExhaustionAcrossDirectory(t *testing.T) {
	m := dysect.New[uint64, struct{}]()
	const n = 5000
	for i := uint64(0); i < n; i++ {
		m.Insert(i, struct{}{})
	}

	visited := 0
	for it := m.Begin(); it.Valid(); it.Next() {
		visited++
	}
	if visited != n {
		t.Fatalf("expected to visit %d entries, got %d\n%s", n, visited, spew.Sdump(m.Size()))
	}
}

func TestCrossCheckAgainstBuiltinMap(t *testing.T) {
	m := dysect.New[uint64, uint32]()
	reference := make(map[uint64]uint32)

	const ops = 10000
	for i := 0; i < ops; i++ {
		key := uint64(rand.Intn(1000))

		switch rand.Intn(4) {
		case 0:
			it := m.Find(key)
			if v2, ok2 := reference[key]; ok2 {
				require.True(t, it.Valid())
				assert.Equal(t, v2, it.Value())
			} else {
				assert.False(t, it.Valid())
			}
		case 1, 2:
			val := rand.Uint32()
			_, wasIn := reference[key]
			if !wasIn {
				reference[key] = val
			}
			inserted := m.Insert(key, val)
			assert.Equal(t, !wasIn, inserted)
		case 3:
			if len(reference) == 0 {
				break
			}
			var del uint64
			for k := range reference {
				del = k
				break
			}
			delete(reference, del)
			assert.True(t, m.Erase(del))
		}

		assert.Equal(t, len(reference), m.Size())
	}
}

func ExampleHashMap() {
	m := dysect.New[string, int]()
	m.Insert("foo", 42)
	m.Insert("bar", 13)

	fmt.Println(m.Find("foo").Value())
	fmt.Println(m.Find("baz").Valid())

	m.Erase("foo")

	fmt.Println(m.Find("foo").Valid())
	fmt.Println(m.Find("bar").Value())

	m.Clear()

	fmt.Println(m.Find("foo").Valid())
	fmt.Println(m.Find("bar").Valid())
	// Output:
	// 42
	// false
	// false
	// 13
	// false
	// false
}

func TestComplexKeyType(t *testing.T) {
	type dummy struct {
		a int8
		b uint32
		c string
		d uint64
		e int
	}
	hasher := func(d dummy) uint64 { return 0 }
	m := dysect.NewWithHasher[dummy, uint32](hasher)
	m.Insert(dummy{a: 0, b: 0, c: "", d: 0, e: 0}, 0)
	assert.Equal(t, 1, m.Size())
}
