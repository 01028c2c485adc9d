package shared

import "golang.org/x/exp/constraints"

// NextPowerOf2 is a fast computation of the smallest power of two
// greater than or equal to i, for i > 0. NextPowerOf2(0) returns 0.
// see: https://stackoverflow.com/questions/466204/rounding-up-to-next-power-of-2
func NextPowerOf2[T constraints.Unsigned](i T) T {
	if i == 0 {
		return 0
	}
	i--
	i |= i >> 1
	i |= i >> 2
	i |= i >> 4
	i |= i >> 8
	i |= i >> 16
	i |= i >> 32
	i++
	return i
}
