// Package sw implements the group of points on a short Weierstrass curve
// y² = x³ + ax + b over a finite field, in Jacobian coordinates.
//
// The package is generic over the coordinate field: B is the base-field
// element type, PB its pointer-method set (the field.Element contract), and
// C the curve-parameter type. C must be a zero-value-usable struct; its
// methods are resolved statically, following the parametrization pattern of
// gnark's emulated field.
package sw

import (
	"math/big"

	"github.com/consensys/ecgroup/field"
)

// MulAlgorithm selects the exponentiation strategy used by
// ScalarMultiplication. The group law exposes the primitives; the curve
// parameters pick how they are composed.
type MulAlgorithm uint8

const (
	// MulDoubleAndAdd is the left-to-right binary method.
	MulDoubleAndAdd MulAlgorithm = iota
	// MulNAF recodes the scalar in non-adjacent form and mixes additions
	// and subtractions of the base.
	MulNAF
)

// Config carries the curve-level parameters consumed by the group law.
type Config[B any, PB field.Element[B]] interface {
	// CoeffA returns the curve coefficient a.
	CoeffA() B

	// CoeffB returns the curve coefficient b, used by the on-curve check.
	CoeffB() B

	// MulByA sets z = a·z. Curves with a special-form coefficient (0, 1,
	// small integers) specialize this instead of paying a full
	// multiplication.
	MulByA(z PB)

	// ExtensionDegree returns the degree of the base field over its prime
	// subfield. Doubling on a = 0 curves picks between two algebraically
	// identical expressions based on this value.
	ExtensionDegree() uint64

	// GroupOrder returns the order of the prime-order subgroup.
	GroupOrder() *big.Int

	// MulAlgorithm returns the scalar-multiplication strategy for this
	// curve.
	MulAlgorithm() MulAlgorithm
}
