package shared

const (
	// DefaultMaxLoad is the load factor alpha a subtable tolerates
	// before it must grow. 0.5 trades memory for fewer, shorter probe
	// sequences relative to the 0.7-0.9 range a monolithic table can
	// get away with, since every subtable pays its own worst case.
	DefaultMaxLoad = 0.5

	// DefaultSubtableCapacity is the number of slots a freshly
	// constructed subtable starts with.
	DefaultSubtableCapacity = 8

	// DefaultDirectoryWidth is the fixed number of subtables (S) a
	// HashMap's directory holds. Kept compile-time per the design
	// notes: a runtime-configurable directory width was considered
	// and rejected (see DESIGN.md).
	DefaultDirectoryWidth = 8
)
