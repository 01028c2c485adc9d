// Package shared collects the small pieces of ambient machinery used by
// both the directory (dysect package) and the individual subtables
// (internal/subtable): the hash and equality functors, the default
// load factor and directory width, and the power-of-two helpers.
package shared

import (
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// HashFn is a function that returns the hash of t. It must be a pure
// function of t: equal keys must always produce equal hashes.
type HashFn[T any] func(t T) uint64

// EqualFn reports whether a and b denote the same key. It must be
// reflexive, symmetric, transitive, and consistent with the hash
// function supplied alongside it.
type EqualFn[T any] func(a, b T) bool

// GetHasher returns a default hasher for the common Go scalar kinds
// and for strings. Complex key types (structs, slices of struct,
// pointers used as value keys, ...) need an explicit hasher supplied
// through NewWithHasher.
func GetHasher[Key any]() HashFn[Key] {
	var key Key
	kind := reflect.ValueOf(&key).Elem().Type().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch unsafe.Sizeof(key) {
		case 2:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashWord))
		case 4:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashDword))
		case 8:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashQword))
		default:
			panic("unsupported integer byte size")
		}

	case reflect.Int8, reflect.Uint8:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashByte))
	case reflect.Int16, reflect.Uint16:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashWord))
	case reflect.Int32, reflect.Uint32:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashDword))
	case reflect.Int64, reflect.Uint64:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashQword))
	case reflect.Float32:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashFloat32))
	case reflect.Float64:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashFloat64))
	case reflect.String:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashString))

	default:
		panic("dysect: no default hasher for this key type, supply one with NewWithHasher")
	}
}

var hashByte = func(in uint8) uint64 {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashWord = func(in uint16) uint64 {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashDword = func(key uint32) uint64 {
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashFloat32 = func(in float32) uint64 {
	p := unsafe.Pointer(&in)
	key := *(*uint32)(p)

	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

// hashQword implements MurmurHash3's 64-bit finalizer.
var hashQword = func(key uint64) uint64 {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

var hashFloat64 = func(in float64) uint64 {
	p := unsafe.Pointer(&in)
	key := *(*uint64)(p)

	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

// hashString hashes the string's bytes with xxhash. xxhash is used
// instead of the fnv variant the rest of the corpus reaches for
// because it is measurably faster on the string lengths this table
// sees.
var hashString = func(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes hashes a byte slice with xxhash. Useful as a building
// block for callers supplying their own hasher for []byte-keyed or
// composite-keyed maps.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
