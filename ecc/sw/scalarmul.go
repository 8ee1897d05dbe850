package sw

import (
	"math/big"

	"github.com/consensys/ecgroup/ecc"
)

// ScalarMultiplication sets p = s·q and returns p. The exponentiation
// strategy is chosen by the curve parameters (Config.MulAlgorithm); every
// strategy composes only Double, AddAssign and SubAssign, so the result is
// consistent with the group law regardless of the choice. A negative
// scalar multiplies the negated base.
func (p *PointJac[B, PB, C]) ScalarMultiplication(q *PointJac[B, PB, C], s *big.Int) *PointJac[B, PB, C] {
	var conf C

	base := *q
	if s.Sign() < 0 {
		base.Neg(&base)
		var abs big.Int
		abs.Neg(s)
		s = &abs
	}

	switch conf.MulAlgorithm() {
	case MulNAF:
		return p.mulNAF(&base, s)
	default:
		return p.mulDoubleAndAdd(&base, s)
	}
}

// mulDoubleAndAdd is the left-to-right binary method over the big-endian
// bits of s. s must be non-negative.
func (p *PointJac[B, PB, C]) mulDoubleAndAdd(base *PointJac[B, PB, C], s *big.Int) *PointJac[B, PB, C] {
	var res PointJac[B, PB, C]
	res.SetInfinity()
	for i := s.BitLen() - 1; i >= 0; i-- {
		res.Double()
		if s.Bit(i) == 1 {
			res.AddAssign(base)
		}
	}
	return p.Set(&res)
}

// mulNAF walks the non-adjacent form of s from the most significant trit,
// adding or subtracting the base. The signed recoding has ~1/3 nonzero
// digits versus ~1/2 for the binary expansion. s must be non-negative.
func (p *PointJac[B, PB, C]) mulNAF(base *PointJac[B, PB, C], s *big.Int) *PointJac[B, PB, C] {
	naf := ecc.NafDecomposition(s)

	var negBase PointJac[B, PB, C]
	negBase.Neg(base)

	var res PointJac[B, PB, C]
	res.SetInfinity()
	for i := len(naf) - 1; i >= 0; i-- {
		res.Double()
		switch naf[i] {
		case 1:
			res.AddAssign(base)
		case -1:
			res.AddAssign(&negBase)
		}
	}
	return p.Set(&res)
}
