// Package ecc provides curve-agnostic helpers shared by the short
// Weierstrass group law and the concrete curve packages.
package ecc

import "math/big"

var (
	zero, one, three big.Int
)

func init() {
	one.SetUint64(1)
	three.SetUint64(3)
}

// NafDecomposition returns the non-adjacent form of a as little-endian
// trits in {-1, 0, 1}. a must be non-negative.
func NafDecomposition(a *big.Int) []int8 {
	result := make([]int8, 0, a.BitLen()+1)

	// some buffers
	var buf, aCopy big.Int
	aCopy.Set(a)

	for aCopy.Cmp(&zero) != 0 {

		// if aCopy % 2 == 0
		buf.And(&aCopy, &one)

		// aCopy even
		if buf.Cmp(&zero) == 0 {
			result = append(result, 0)
		} else { // aCopy odd
			buf.And(&aCopy, &three)
			if buf.Cmp(&three) == 0 {
				result = append(result, -1)
				aCopy.Add(&aCopy, &one)
			} else {
				result = append(result, 1)
			}
		}
		aCopy.Rsh(&aCopy, 1)
	}
	return result
}
