package sw

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/consensys/ecgroup/field"
)

var (
	// ErrNotOnCurve is returned by the checked constructors when the
	// coordinates do not satisfy the curve equation.
	ErrNotOnCurve = errors.New("point not on curve")

	// ErrNotInSubGroup is returned by the checked constructors when the
	// point is on the curve but outside the prime-order subgroup.
	ErrNotInSubGroup = errors.New("point not in prime-order subgroup")
)

// PointJac is a point in Jacobian coordinates: (X, Y, Z) with Z ≠ 0
// represents the affine point (X/Z², Y/Z³). Z = 0 is the point at infinity
// (the group identity); X and Y then carry no point information and are
// held at 1 by convention.
//
// The zero value is not a valid point; start from SetInfinity, FromAffine
// or one of the constructors.
type PointJac[B any, PB field.Element[B], C Config[B, PB]] struct {
	X, Y, Z B
}

// PointAffine is a point in affine coordinates. (0, 0) encodes the point at
// infinity, so the zero value is the affine identity.
type PointAffine[B any, PB field.Element[B], C Config[B, PB]] struct {
	X, Y B
}

// NewPointJac returns the point (x, y, z) without validating it. Callers
// must guarantee the triple denotes a subgroup point; results of the group
// operations always do.
func NewPointJac[B any, PB field.Element[B], C Config[B, PB]](x, y, z B) PointJac[B, PB, C] {
	return PointJac[B, PB, C]{X: x, Y: y, Z: z}
}

// NewPointJacChecked returns the point (x, y, z) after checking that it
// satisfies the curve equation and lies in the prime-order subgroup.
// Untrusted coordinates must go through this constructor before entering
// arithmetic; callers wanting fail-fast semantics can panic on the error.
func NewPointJacChecked[B any, PB field.Element[B], C Config[B, PB]](x, y, z B) (PointJac[B, PB, C], error) {
	p := NewPointJac[B, PB, C](x, y, z)
	var a PointAffine[B, PB, C]
	a.FromJacobian(&p)
	if !a.IsOnCurve() {
		return PointJac[B, PB, C]{}, ErrNotOnCurve
	}
	if !a.IsInSubGroup() {
		return PointJac[B, PB, C]{}, ErrNotInSubGroup
	}
	return p, nil
}

// Set sets p to q and returns p.
func (p *PointJac[B, PB, C]) Set(q *PointJac[B, PB, C]) *PointJac[B, PB, C] {
	PB(&p.X).Set(&q.X)
	PB(&p.Y).Set(&q.Y)
	PB(&p.Z).Set(&q.Z)
	return p
}

// SetInfinity sets p to the group identity, represented as (1, 1, 0).
func (p *PointJac[B, PB, C]) SetInfinity() *PointJac[B, PB, C] {
	PB(&p.X).SetOne()
	PB(&p.Y).SetOne()
	PB(&p.Z).SetZero()
	return p
}

// IsInfinity reports whether p is the group identity. Z = 0 is the one and
// only identity test.
func (p *PointJac[B, PB, C]) IsInfinity() bool {
	return PB(&p.Z).IsZero()
}

// Equal reports whether p and q denote the same group element. Two triples
// (X, Y, Z) and (X', Y', Z') are equivalent iff X·Z'² = X'·Z² and
// Y·Z'³ = Y'·Z³; no field inversion is performed.
func (p *PointJac[B, PB, C]) Equal(q *PointJac[B, PB, C]) bool {
	if p.IsInfinity() {
		return q.IsInfinity()
	}
	if q.IsInfinity() {
		return false
	}

	var z1z1, z2z2, l, r B
	PB(&z1z1).Square(&p.Z)
	PB(&z2z2).Square(&q.Z)

	PB(&l).Mul(&p.X, &z2z2)
	PB(&r).Mul(&q.X, &z1z1)
	if !PB(&l).Equal(&r) {
		return false
	}

	PB(&l).Mul(&z2z2, &q.Z)
	PB(&l).Mul(&l, &p.Y)
	PB(&r).Mul(&z1z1, &p.Z)
	PB(&r).Mul(&r, &q.Y)
	return PB(&l).Equal(&r)
}

// Neg sets p = -q and returns p. Negating the identity yields the identity.
func (p *PointJac[B, PB, C]) Neg(q *PointJac[B, PB, C]) *PointJac[B, PB, C] {
	PB(&p.X).Set(&q.X)
	PB(&p.Y).Neg(&q.Y)
	PB(&p.Z).Set(&q.Z)
	return p
}

// FromAffine lifts a to Jacobian coordinates with Z = 1, or to the identity
// if a is the affine identity.
func (p *PointJac[B, PB, C]) FromAffine(a *PointAffine[B, PB, C]) *PointJac[B, PB, C] {
	x, y, ok := a.XY()
	if !ok {
		return p.SetInfinity()
	}
	PB(&p.X).Set(&x)
	PB(&p.Y).Set(&y)
	PB(&p.Z).SetOne()
	return p
}

// Hash returns a canonical digest of the group element: projectively
// equivalent representations hash identically, consistent with Equal. The
// point is normalized to affine form before hashing; never hash the raw
// coordinate triple.
func (p *PointJac[B, PB, C]) Hash() [blake2b.Size256]byte {
	var a PointAffine[B, PB, C]
	a.FromJacobian(p)
	return a.Hash()
}

// Zeroize clears all three coordinates. For use on all exit paths of code
// where a point holds secret-derived data.
func (p *PointJac[B, PB, C]) Zeroize() {
	PB(&p.X).SetZero()
	PB(&p.Y).SetZero()
	PB(&p.Z).SetZero()
}

func (p *PointJac[B, PB, C]) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s, %s)", PB(&p.X).String(), PB(&p.Y).String(), PB(&p.Z).String())
}

// Set sets a to b and returns a.
func (a *PointAffine[B, PB, C]) Set(b *PointAffine[B, PB, C]) *PointAffine[B, PB, C] {
	PB(&a.X).Set(&b.X)
	PB(&a.Y).Set(&b.Y)
	return a
}

// SetInfinity sets a to the affine identity marker (0, 0).
func (a *PointAffine[B, PB, C]) SetInfinity() *PointAffine[B, PB, C] {
	PB(&a.X).SetZero()
	PB(&a.Y).SetZero()
	return a
}

// IsInfinity reports whether a is the affine identity marker.
func (a *PointAffine[B, PB, C]) IsInfinity() bool {
	return PB(&a.X).IsZero() && PB(&a.Y).IsZero()
}

// XY returns the coordinate pair of a; ok is false when a is the identity
// and carries no coordinates.
func (a *PointAffine[B, PB, C]) XY() (x, y B, ok bool) {
	if a.IsInfinity() {
		return x, y, false
	}
	PB(&x).Set(&a.X)
	PB(&y).Set(&a.Y)
	return x, y, true
}

// Equal reports whether a and b are the same point. Affine coordinates are
// canonical, so this is memberwise equality.
func (a *PointAffine[B, PB, C]) Equal(b *PointAffine[B, PB, C]) bool {
	return PB(&a.X).Equal(&b.X) && PB(&a.Y).Equal(&b.Y)
}

// Neg sets a = -b and returns a.
func (a *PointAffine[B, PB, C]) Neg(b *PointAffine[B, PB, C]) *PointAffine[B, PB, C] {
	if b.IsInfinity() {
		return a.SetInfinity()
	}
	PB(&a.X).Set(&b.X)
	PB(&a.Y).Neg(&b.Y)
	return a
}

// FromJacobian sets a to the canonical affine representative of p, at the
// cost of one field inversion. Use BatchJacobianToAffine to amortize the
// inversion over many points.
func (a *PointAffine[B, PB, C]) FromJacobian(p *PointJac[B, PB, C]) *PointAffine[B, PB, C] {
	if p.IsInfinity() {
		return a.SetInfinity()
	}

	var zinv, zinv2, zinv3 B
	PB(&zinv).Inverse(&p.Z)
	PB(&zinv2).Square(&zinv)
	PB(&zinv3).Mul(&zinv2, &zinv)
	PB(&a.X).Mul(&p.X, &zinv2)
	PB(&a.Y).Mul(&p.Y, &zinv3)
	return a
}

// IsOnCurve reports whether a satisfies y² = x³ + a·x + b. The identity is
// on the curve.
func (a *PointAffine[B, PB, C]) IsOnCurve() bool {
	if a.IsInfinity() {
		return true
	}

	var conf C
	var lhs, rhs, t B
	PB(&lhs).Square(&a.Y)
	PB(&rhs).Square(&a.X)
	PB(&rhs).Mul(&rhs, &a.X)
	t = conf.CoeffA()
	PB(&t).Mul(&t, &a.X)
	PB(&rhs).Add(&rhs, &t)
	t = conf.CoeffB()
	PB(&rhs).Add(&rhs, &t)
	return PB(&lhs).Equal(&rhs)
}

// IsInSubGroup reports whether a lies in the prime-order subgroup, i.e.
// [r]a is the identity for the subgroup order r.
func (a *PointAffine[B, PB, C]) IsInSubGroup() bool {
	var conf C
	var p, r PointJac[B, PB, C]
	p.FromAffine(a)
	r.ScalarMultiplication(&p, conf.GroupOrder())
	return r.IsInfinity()
}

// Hash returns a canonical digest of the point; see PointJac.Hash.
func (a *PointAffine[B, PB, C]) Hash() [blake2b.Size256]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // only fails on invalid key size
	}
	if x, y, ok := a.XY(); ok {
		h.Write([]byte{1})
		h.Write(PB(&x).Marshal())
		h.Write(PB(&y).Marshal())
	} else {
		h.Write([]byte{0})
	}
	var digest [blake2b.Size256]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

func (a *PointAffine[B, PB, C]) String() string {
	if a.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", PB(&a.X).String(), PB(&a.Y).String())
}
