package sw

import (
	"math/big"

	"github.com/consensys/ecgroup/internal/smallfields"
)

// Test curves over F₄₃, small enough that every vector below was checked
// against the affine group law by hand.

// tinyCurve is y² = x³ + x + 3 over F₄₃; the group has prime order 47, so
// every point generates it.
//
// Vectors, with A = (2, 20) and B = (5, 2):
//
//	A+B = (29, 13)   2A = (10, 29)   3A = (41, 6)
//	5A  = (33, 38)  27A = (19, 1)   47A = identity
type tinyCurve struct{}

func (tinyCurve) CoeffA() smallfields.Element { return smallfields.NewElement(1) }
func (tinyCurve) CoeffB() smallfields.Element { return smallfields.NewElement(3) }
func (tinyCurve) MulByA(z *smallfields.Element) {} // a = 1
func (tinyCurve) ExtensionDegree() uint64 { return 1 }
func (tinyCurve) GroupOrder() *big.Int { return big.NewInt(47) }
func (tinyCurve) MulAlgorithm() MulAlgorithm { return MulDoubleAndAdd }

const tinyOrder = 47

type tinyJac = PointJac[smallfields.Element, *smallfields.Element, tinyCurve]
type tinyAffine = PointAffine[smallfields.Element, *smallfields.Element, tinyCurve]

// tinyCurveA0 is y² = x³ + 7 over F₄₃, prime order 31, generator (2, 12).
// It routes doubling through the a = 0 formula.
type tinyCurveA0 struct{}

func (tinyCurveA0) CoeffA() smallfields.Element { return smallfields.Element{} }
func (tinyCurveA0) CoeffB() smallfields.Element { return smallfields.NewElement(7) }
func (tinyCurveA0) MulByA(z *smallfields.Element) { z.SetZero() }
func (tinyCurveA0) ExtensionDegree() uint64 { return 1 }
func (tinyCurveA0) GroupOrder() *big.Int { return big.NewInt(31) }
func (tinyCurveA0) MulAlgorithm() MulAlgorithm { return MulNAF }

const tinyA0Order = 31

type tinyA0Jac = PointJac[smallfields.Element, *smallfields.Element, tinyCurveA0]

// tinyCurveA0Ext3 is tinyCurveA0 with the base field declared as a cubic
// extension, forcing the expanded-subtraction form of the doubling D term.
type tinyCurveA0Ext3 struct{}

func (tinyCurveA0Ext3) CoeffA() smallfields.Element { return smallfields.Element{} }
func (tinyCurveA0Ext3) CoeffB() smallfields.Element { return smallfields.NewElement(7) }
func (tinyCurveA0Ext3) MulByA(z *smallfields.Element) { z.SetZero() }
func (tinyCurveA0Ext3) ExtensionDegree() uint64 { return 3 }
func (tinyCurveA0Ext3) GroupOrder() *big.Int { return big.NewInt(31) }
func (tinyCurveA0Ext3) MulAlgorithm() MulAlgorithm { return MulNAF }

type tinyA0Ext3Jac = PointJac[smallfields.Element, *smallfields.Element, tinyCurveA0Ext3]

// compositeCurve is y² = x³ + x + 1 over F₄₃. The full group has order
// 34 = 2·17 and the config designates the 17-subgroup, so the 2-torsion
// point (38, 0) is on the curve but fails the subgroup check, while
// (11, 15) = 2·(0, 1) passes.
type compositeCurve struct{}

func (compositeCurve) CoeffA() smallfields.Element { return smallfields.NewElement(1) }
func (compositeCurve) CoeffB() smallfields.Element { return smallfields.NewElement(1) }
func (compositeCurve) MulByA(z *smallfields.Element) {} // a = 1
func (compositeCurve) ExtensionDegree() uint64 { return 1 }
func (compositeCurve) GroupOrder() *big.Int { return big.NewInt(17) }
func (compositeCurve) MulAlgorithm() MulAlgorithm { return MulDoubleAndAdd }

type compositeAffine = PointAffine[smallfields.Element, *smallfields.Element, compositeCurve]

func bigFromUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

func tinyAff(x, y uint64) tinyAffine {
	var a tinyAffine
	a.X.SetUint64(x)
	a.Y.SetUint64(y)
	return a
}

func tinyPoint(x, y uint64) tinyJac {
	a := tinyAff(x, y)
	var p tinyJac
	p.FromAffine(&a)
	return p
}

func tinyGen() tinyJac { return tinyPoint(2, 20) }

// tinyScalarMul returns k·G on tinyCurve.
func tinyScalarMul(k uint64) tinyJac {
	g := tinyGen()
	var p tinyJac
	p.ScalarMultiplication(&g, new(big.Int).SetUint64(k))
	return p
}

func tinyA0Gen() tinyA0Jac {
	var a PointAffine[smallfields.Element, *smallfields.Element, tinyCurveA0]
	a.X.SetUint64(2)
	a.Y.SetUint64(12)
	var p tinyA0Jac
	p.FromAffine(&a)
	return p
}
