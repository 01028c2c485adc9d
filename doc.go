// Package dysect implements a generic, in-memory associative
// container: a two-level hash table that trades a little lookup
// latency, relative to a conventional monolithic Robin Hood table
// (see internal/baseline, used only by the benchmark suite), for
// materially lower memory overhead at scale.
//
// A HashMap is a fixed-width directory of DefaultDirectoryWidth
// independently sized subtables (internal/subtable.Subtable), each a
// Robin Hood open-addressed flat table in its own right. Every
// operation hashes the key once, routes to a subtable by the low bits
// of that hash, and forwards the call; the subtable grows on its own
// when its own load factor is exceeded, so a single hot shard never
// forces every other shard to resize alongside it.
//
// HashMap is not safe for concurrent use. Hashing and equality of
// keys are supplied by the caller (or defaulted for Go's built-in
// scalar and string kinds); the container assumes both are pure,
// deterministic, and mutually consistent.
package dysect
