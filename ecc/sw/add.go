package sw

import "github.com/consensys/ecgroup/field"

// AddMixed sets p to p + a, where a is in affine coordinates (an implicit
// Z = 1 makes this cheaper than AddAssign). The equal and inverse cases are
// detected and routed to Double and SetInfinity respectively.
//
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-madd-2007-bl
func (p *PointJac[B, PB, C]) AddMixed(a *PointAffine[B, PB, C]) *PointJac[B, PB, C] {
	ax, ay, ok := a.XY()
	if !ok {
		// a is the identity
		return p
	}
	if p.IsInfinity() {
		PB(&p.X).Set(&ax)
		PB(&p.Y).Set(&ay)
		PB(&p.Z).SetOne()
		return p
	}

	var z1z1, u2, s2 B

	// Z1Z1 = Z1²
	PB(&z1z1).Square(&p.Z)

	// U2 = X2*Z1Z1
	PB(&u2).Mul(&ax, &z1z1)

	// S2 = Y2*Z1*Z1Z1
	PB(&s2).Mul(&ay, &p.Z)
	PB(&s2).Mul(&s2, &z1z1)

	if PB(&u2).Equal(&p.X) {
		if PB(&s2).Equal(&p.Y) {
			// p == a, double instead
			return p.Double()
		}
		// p == -a
		return p.SetInfinity()
	}

	var h, hh, i, j, r, v, t B

	// H = U2-X1
	PB(&h).Sub(&u2, &p.X)

	// HH = H²
	PB(&hh).Square(&h)

	// I = 4*HH
	PB(&i).Double(&hh)
	PB(&i).Double(&i)

	// J = -H*I
	PB(&j).Neg(&h)
	PB(&j).Mul(&j, &i)

	// r = 2*(S2-Y1)
	PB(&r).Sub(&s2, &p.Y)
	PB(&r).Double(&r)

	// V = X1*I
	PB(&v).Mul(&p.X, &i)

	// X3 = r²+J-2*V
	PB(&p.X).Square(&r)
	PB(&p.X).Add(&p.X, &j)
	PB(&t).Double(&v)
	PB(&p.X).Sub(&p.X, &t)

	// Y3 = r*(V-X3)+2*Y1*J
	PB(&v).Sub(&v, &p.X)
	PB(&p.Y).Double(&p.Y)
	p.Y = field.SumOfProducts[B, PB]([]B{r, p.Y}, []B{v, j})

	// Z3 = 2*Z1*H
	PB(&p.Z).Mul(&p.Z, &h)
	PB(&p.Z).Double(&p.Z)

	return p
}

// SubMixed sets p to p - a; subtraction is addition of the negation.
func (p *PointJac[B, PB, C]) SubMixed(a *PointAffine[B, PB, C]) *PointJac[B, PB, C] {
	var na PointAffine[B, PB, C]
	na.Neg(a)
	return p.AddMixed(&na)
}

// AddAssign sets p to p + q, both in Jacobian coordinates, with no
// assumption on either Z. Identity operands short-circuit before any field
// work; the equal and inverse cases are routed to Double and SetInfinity.
//
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-add-2007-bl
func (p *PointJac[B, PB, C]) AddAssign(q *PointJac[B, PB, C]) *PointJac[B, PB, C] {
	if p.IsInfinity() {
		return p.Set(q)
	}
	if q.IsInfinity() {
		return p
	}

	var z1z1, z2z2, u1, u2, s1, s2 B

	// Z1Z1 = Z1²
	PB(&z1z1).Square(&p.Z)

	// Z2Z2 = Z2²
	PB(&z2z2).Square(&q.Z)

	// U1 = X1*Z2Z2
	PB(&u1).Mul(&p.X, &z2z2)

	// U2 = X2*Z1Z1
	PB(&u2).Mul(&q.X, &z1z1)

	// S1 = Y1*Z2*Z2Z2
	PB(&s1).Mul(&p.Y, &q.Z)
	PB(&s1).Mul(&s1, &z2z2)

	// S2 = Y2*Z1*Z1Z1
	PB(&s2).Mul(&q.Y, &p.Z)
	PB(&s2).Mul(&s2, &z1z1)

	if PB(&u1).Equal(&u2) {
		if PB(&s1).Equal(&s2) {
			// p == q, double instead
			return p.Double()
		}
		// p == -q
		return p.SetInfinity()
	}

	var h, i, j, r, v, t B

	// H = U2-U1
	PB(&h).Sub(&u2, &u1)

	// I = (2*H)²
	PB(&i).Double(&h)
	PB(&i).Square(&i)

	// J = -H*I
	PB(&j).Neg(&h)
	PB(&j).Mul(&j, &i)

	// r = 2*(S2-S1)
	PB(&r).Sub(&s2, &s1)
	PB(&r).Double(&r)

	// V = U1*I
	PB(&v).Mul(&u1, &i)

	// X3 = r²+J-2*V
	PB(&p.X).Square(&r)
	PB(&p.X).Add(&p.X, &j)
	PB(&t).Double(&v)
	PB(&p.X).Sub(&p.X, &t)

	// Y3 = r*(V-X3)+2*S1*J
	PB(&v).Sub(&v, &p.X)
	PB(&s1).Double(&s1)
	p.Y = field.SumOfProducts[B, PB]([]B{r, s1}, []B{v, j})

	// Z3 = 2*Z1*Z2*H
	PB(&p.Z).Mul(&p.Z, &q.Z)
	PB(&p.Z).Double(&p.Z)
	PB(&p.Z).Mul(&p.Z, &h)

	return p
}

// SubAssign sets p to p - q; subtraction is addition of the negation.
func (p *PointJac[B, PB, C]) SubAssign(q *PointJac[B, PB, C]) *PointJac[B, PB, C] {
	var nq PointJac[B, PB, C]
	nq.Neg(q)
	return p.AddAssign(&nq)
}

// Sum returns Σ points[i], folding AddAssign from the identity. The group
// is commutative; any order yields the same element.
func Sum[B any, PB field.Element[B], C Config[B, PB]](points []PointJac[B, PB, C]) PointJac[B, PB, C] {
	var acc PointJac[B, PB, C]
	acc.SetInfinity()
	for i := range points {
		acc.AddAssign(&points[i])
	}
	return acc
}

// SumMixed returns Σ points[i] over affine points, folding the cheaper
// AddMixed from the identity.
func SumMixed[B any, PB field.Element[B], C Config[B, PB]](points []PointAffine[B, PB, C]) PointJac[B, PB, C] {
	var acc PointJac[B, PB, C]
	acc.SetInfinity()
	for i := range points {
		acc.AddMixed(&points[i])
	}
	return acc
}
