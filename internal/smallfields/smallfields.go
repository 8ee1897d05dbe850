// Package smallfields provides a tiny prime field for tests. The modulus is
// small enough that curve and group-law results over it can be checked by
// hand, which the production gnark-crypto fields cannot offer.
//
// Element satisfies the field.Element contract of this module.
package smallfields

import "strconv"

// Modulus is the field characteristic.
const Modulus uint64 = 43

// Element is an element of F₄₃, held reduced in [0, Modulus).
type Element struct {
	v uint64
}

// NewElement returns v mod Modulus as a field element.
func NewElement(v uint64) Element {
	return Element{v: v % Modulus}
}

// Uint64 returns the canonical representative of z.
func (z *Element) Uint64() uint64 {
	return z.v
}

func (z *Element) Set(x *Element) *Element {
	z.v = x.v
	return z
}

func (z *Element) SetZero() *Element {
	z.v = 0
	return z
}

func (z *Element) SetOne() *Element {
	z.v = 1
	return z
}

func (z *Element) SetUint64(v uint64) *Element {
	z.v = v % Modulus
	return z
}

func (z *Element) Add(x, y *Element) *Element {
	z.v = (x.v + y.v) % Modulus
	return z
}

func (z *Element) Sub(x, y *Element) *Element {
	z.v = (x.v + Modulus - y.v) % Modulus
	return z
}

func (z *Element) Neg(x *Element) *Element {
	z.v = (Modulus - x.v) % Modulus
	return z
}

func (z *Element) Mul(x, y *Element) *Element {
	z.v = (x.v * y.v) % Modulus
	return z
}

func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

func (z *Element) Double(x *Element) *Element {
	return z.Add(x, x)
}

// Inverse sets z to 1/x via Fermat's little theorem. Inverse of zero is
// zero, matching the gnark-crypto convention.
func (z *Element) Inverse(x *Element) *Element {
	if x.v == 0 {
		z.v = 0
		return z
	}
	res, base, exp := uint64(1), x.v, Modulus-2
	for exp > 0 {
		if exp&1 == 1 {
			res = res * base % Modulus
		}
		base = base * base % Modulus
		exp >>= 1
	}
	z.v = res
	return z
}

func (z *Element) Equal(x *Element) bool {
	return z.v == x.v
}

func (z *Element) IsZero() bool {
	return z.v == 0
}

func (z *Element) IsOne() bool {
	return z.v == 1
}

// Marshal returns the canonical big-endian byte representation.
func (z *Element) Marshal() []byte {
	return []byte{byte(z.v)}
}

func (z *Element) String() string {
	return strconv.FormatUint(z.v, 10)
}
