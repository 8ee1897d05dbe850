// Package bn254 instantiates the short Weierstrass group law for the BN254
// curve y² = x³ + 3, with coordinates in the gnark-crypto BN254 base field.
package bn254

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/ecgroup/ecc/sw"
)

// Curve is the sw.Config of BN254.
type Curve struct{}

// G1Jac is a point of the BN254 G1 group in Jacobian coordinates.
type G1Jac = sw.PointJac[fp.Element, *fp.Element, Curve]

// G1Affine is a point of the BN254 G1 group in affine coordinates.
type G1Affine = sw.PointAffine[fp.Element, *fp.Element, Curve]

// CoeffA returns 0.
func (Curve) CoeffA() fp.Element { return fp.Element{} }

// CoeffB returns 3.
func (Curve) CoeffB() fp.Element {
	var b fp.Element
	b.SetUint64(3)
	return b
}

// MulByA sets z to 0; the a·ZZ² doubling term is never taken since a = 0.
func (Curve) MulByA(z *fp.Element) { z.SetZero() }

// ExtensionDegree returns 1; G1 coordinates live in the prime field.
func (Curve) ExtensionDegree() uint64 { return 1 }

// GroupOrder returns the order of G1, the BN254 scalar field modulus.
func (Curve) GroupOrder() *big.Int { return fr.Modulus() }

// MulAlgorithm selects the NAF ladder.
func (Curve) MulAlgorithm() sw.MulAlgorithm { return sw.MulNAF }

var (
	g1Gen     G1Jac
	g1GenOnce sync.Once
)

// Generator returns the canonical generator (1, 2) of G1.
func Generator() G1Jac {
	g1GenOnce.Do(func() {
		g1Gen.X.SetOne()
		g1Gen.Y.SetUint64(2)
		g1Gen.Z.SetOne()
	})
	return g1Gen
}
