package field

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/ecgroup/debug"
)

// BatchInvert inverts every nonzero entry of a in place using Montgomery's
// simultaneous-inversion trick: a running product of the nonzero entries is
// inverted once, then each individual inverse is recovered by unrolling the
// product. Zero entries are skipped and left untouched.
//
// Cost: 1 inversion + 3(n-1) multiplications, versus n inversions naively.
func BatchInvert[E any, PE Element[E]](a []E) {
	if len(a) == 0 {
		return
	}

	zeroes := bitset.New(uint(len(a)))
	var accumulator E
	PE(&accumulator).SetOne()

	// prods[i] holds the product of all nonzero entries before a[i]
	prods := make([]E, len(a))
	for i := range a {
		if PE(&a[i]).IsZero() {
			zeroes.Set(uint(i))
			continue
		}
		PE(&prods[i]).Set(&accumulator)
		PE(&accumulator).Mul(&accumulator, &a[i])
	}

	PE(&accumulator).Inverse(&accumulator)

	for i := len(a) - 1; i >= 0; i-- {
		if zeroes.Test(uint(i)) {
			continue
		}
		PE(&prods[i]).Mul(&prods[i], &accumulator)
		PE(&accumulator).Mul(&accumulator, &a[i])
		PE(&a[i]).Set(&prods[i])
	}
}

// SumOfProducts returns Σ a[i]·b[i]. Both slices must have the same length.
func SumOfProducts[E any, PE Element[E]](a, b []E) E {
	debug.Assert(len(a) == len(b), "SumOfProducts: length mismatch")

	var res, t E
	PE(&res).SetZero()
	for i := range a {
		PE(&t).Mul(&a[i], &b[i])
		PE(&res).Add(&res, &t)
	}
	return res
}
