// Package bls12381 instantiates the short Weierstrass group law for the
// BLS12-381 curve y² = x³ + 4, with coordinates in the gnark-crypto
// BLS12-381 base field.
package bls12381

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/ecgroup/ecc/sw"
)

// Curve is the sw.Config of BLS12-381 G1.
type Curve struct{}

// G1Jac is a point of the BLS12-381 G1 group in Jacobian coordinates.
type G1Jac = sw.PointJac[fp.Element, *fp.Element, Curve]

// G1Affine is a point of the BLS12-381 G1 group in affine coordinates.
type G1Affine = sw.PointAffine[fp.Element, *fp.Element, Curve]

// CoeffA returns 0.
func (Curve) CoeffA() fp.Element { return fp.Element{} }

// CoeffB returns 4.
func (Curve) CoeffB() fp.Element {
	var b fp.Element
	b.SetUint64(4)
	return b
}

// MulByA sets z to 0; the a·ZZ² doubling term is never taken since a = 0.
func (Curve) MulByA(z *fp.Element) { z.SetZero() }

// ExtensionDegree returns 1; G1 coordinates live in the prime field.
func (Curve) ExtensionDegree() uint64 { return 1 }

// GroupOrder returns the order of G1, the BLS12-381 scalar field modulus.
func (Curve) GroupOrder() *big.Int { return fr.Modulus() }

// MulAlgorithm selects the NAF ladder.
func (Curve) MulAlgorithm() sw.MulAlgorithm { return sw.MulNAF }

var (
	g1Gen     G1Jac
	g1GenOnce sync.Once
)

// Generator returns the standard generator of G1.
func Generator() G1Jac {
	g1GenOnce.Do(func() {
		g1Gen.X.SetBigInt(mustParseBig("3685416753713387016781088315183077757961620795782546409894578378688607592378376318836054947676345821548104185464507"))
		g1Gen.Y.SetBigInt(mustParseBig("1339506544944476473020471379941921221584933875938349620426543736416511423956333506472724655353366534992391756441569"))
		g1Gen.Z.SetOne()
	})
	return g1Gen
}

func mustParseBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bls12381: invalid integer literal")
	}
	return n
}
