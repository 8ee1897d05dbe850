package sw

// Double sets p to 2·p in place and returns p. Doubling the identity
// returns the identity. The Jacobian addition formulas are incomplete, so
// doubling is never computed as p + p; two dedicated formulas are used,
// selected on the curve coefficient a:
//
//	a == 0: https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-dbl-2009-l
//	a != 0: https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
func (p *PointJac[B, PB, C]) Double() *PointJac[B, PB, C] {
	if p.IsInfinity() {
		return p
	}

	var conf C
	coeffA := conf.CoeffA()
	if PB(&coeffA).IsZero() {
		return p.doubleCoeffAZero()
	}
	return p.doubleGeneric()
}

// doubleCoeffAZero is dbl-2009-l, valid only when a = 0.
func (p *PointJac[B, PB, C]) doubleCoeffAZero() *PointJac[B, PB, C] {
	var conf C
	var a, b, c, d, e, t B

	// A = X1²
	PB(&a).Square(&p.X)

	// B = Y1²
	PB(&b).Square(&p.Y)

	// C = B²
	PB(&c).Square(&b)

	// D = 2*((X1+B)²-A-C), equal to 4*X1*B; the direct product is cheaper
	// on low-degree fields, the expanded form on higher towers. Both
	// yield bit-identical results.
	if deg := conf.ExtensionDegree(); deg == 1 || deg == 2 {
		PB(&d).Mul(&p.X, &b)
		PB(&d).Double(&d)
		PB(&d).Double(&d)
	} else {
		PB(&d).Add(&p.X, &b)
		PB(&d).Square(&d)
		PB(&d).Sub(&d, &a)
		PB(&d).Sub(&d, &c)
		PB(&d).Double(&d)
	}

	// E = 3*A
	PB(&e).Double(&a)
	PB(&e).Add(&e, &a)

	// Z3 = 2*Y1*Z1
	PB(&p.Z).Mul(&p.Z, &p.Y)
	PB(&p.Z).Double(&p.Z)

	// X3 = E²-2*D
	PB(&p.X).Square(&e)
	PB(&t).Double(&d)
	PB(&p.X).Sub(&p.X, &t)

	// Y3 = E*(D-X3)-8*C
	PB(&p.Y).Sub(&d, &p.X)
	PB(&p.Y).Mul(&p.Y, &e)
	PB(&c).Double(&c)
	PB(&c).Double(&c)
	PB(&c).Double(&c)
	PB(&p.Y).Sub(&p.Y, &c)

	return p
}

// doubleGeneric is dbl-2007-bl, valid for any a; the a·ZZ² term goes
// through the MulByA hook.
func (p *PointJac[B, PB, C]) doubleGeneric() *PointJac[B, PB, C] {
	var conf C
	var xx, yy, yyyy, zz, s, m, t B

	// XX = X1²
	PB(&xx).Square(&p.X)

	// YY = Y1²
	PB(&yy).Square(&p.Y)

	// YYYY = YY²
	PB(&yyyy).Square(&yy)

	// ZZ = Z1²
	PB(&zz).Square(&p.Z)

	// S = 2*((X1+YY)²-XX-YYYY)
	PB(&s).Add(&p.X, &yy)
	PB(&s).Square(&s)
	PB(&s).Sub(&s, &xx)
	PB(&s).Sub(&s, &yyyy)
	PB(&s).Double(&s)

	// M = 3*XX+a*ZZ²
	PB(&m).Double(&xx)
	PB(&m).Add(&m, &xx)
	PB(&t).Square(&zz)
	conf.MulByA(PB(&t))
	PB(&m).Add(&m, &t)

	// X3 = M²-2*S
	PB(&p.X).Square(&m)
	PB(&t).Double(&s)
	PB(&p.X).Sub(&p.X, &t)

	// Z3 = 2*Y1*Z1
	PB(&p.Z).Mul(&p.Z, &p.Y)
	PB(&p.Z).Double(&p.Z)

	// Y3 = M*(S-X3)-8*YYYY
	PB(&p.Y).Sub(&s, &p.X)
	PB(&p.Y).Mul(&p.Y, &m)
	PB(&yyyy).Double(&yyyy)
	PB(&yyyy).Double(&yyyy)
	PB(&yyyy).Double(&yyyy)
	PB(&p.Y).Sub(&p.Y, &yyyy)

	return p
}
