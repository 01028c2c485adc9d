package dysect

import "github.com/fallnlove/dysect-hash-table/internal/subtable"

// ErrKeyNotFound is the sentinel At fails with when the requested key
// is absent. It is the same error subtable.Subtable.At raises; the
// directory forwards it unchanged rather than wrapping it again.
var ErrKeyNotFound = subtable.ErrKeyNotFound
