// Package starkcurve instantiates the short Weierstrass group law for the
// Stark curve y² = x³ + x + b over the gnark-crypto Stark base field. The
// coefficient a = 1 exercises the generic doubling formula and a trivial
// MulByA specialization.
package starkcurve

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"

	"github.com/consensys/ecgroup/ecc/sw"
)

// Curve is the sw.Config of the Stark curve.
type Curve struct{}

// G1Jac is a Stark curve point in Jacobian coordinates.
type G1Jac = sw.PointJac[fp.Element, *fp.Element, Curve]

// G1Affine is a Stark curve point in affine coordinates.
type G1Affine = sw.PointAffine[fp.Element, *fp.Element, Curve]

// CoeffA returns 1.
func (Curve) CoeffA() fp.Element {
	var a fp.Element
	a.SetOne()
	return a
}

// CoeffB returns the Stark curve b constant.
func (Curve) CoeffB() fp.Element {
	var b fp.Element
	b.SetBigInt(coeffB())
	return b
}

// MulByA leaves z unchanged since a = 1.
func (Curve) MulByA(z *fp.Element) {}

// ExtensionDegree returns 1.
func (Curve) ExtensionDegree() uint64 { return 1 }

// GroupOrder returns the curve order, the Stark scalar field modulus.
func (Curve) GroupOrder() *big.Int { return fr.Modulus() }

// MulAlgorithm selects the NAF ladder.
func (Curve) MulAlgorithm() sw.MulAlgorithm { return sw.MulNAF }

var (
	g1Gen     G1Jac
	g1GenOnce sync.Once
)

// Generator returns the standard generator of the Stark curve.
func Generator() G1Jac {
	g1GenOnce.Do(func() {
		g1Gen.X.SetBigInt(mustParseBig("874739451078007766457464989774322083649278607533249481151382481072868806602"))
		g1Gen.Y.SetBigInt(mustParseBig("152666792071518830868575557812948353041420400780739481342941381225525861407"))
		g1Gen.Z.SetOne()
	})
	return g1Gen
}

func coeffB() *big.Int {
	return mustParseBig("3141592653589793238462643383279502884197169399375105820974944592307816406665")
}

func mustParseBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("starkcurve: invalid integer literal")
	}
	return n
}
