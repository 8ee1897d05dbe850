package starkcurve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// The generator constants are load-bearing: IsOnCurve failing here means a
// typo in the embedded literals, not an arithmetic bug.
func TestGenerator(t *testing.T) {
	g := Generator()

	var a G1Affine
	a.FromJacobian(&g)
	require.True(t, a.IsOnCurve())
	require.True(t, a.IsInSubGroup())

	var r G1Jac
	r.ScalarMultiplication(&g, Curve{}.GroupOrder())
	require.True(t, r.IsInfinity())
}

// a = 1 routes doubling through the generic branch; check it against
// repeated addition.
func TestGenericDoubling(t *testing.T) {
	g := Generator()

	var d, sum G1Jac
	d.Set(&g)
	d.Double()
	sum.Set(&g)
	sum.AddAssign(&g)
	require.True(t, d.Equal(&sum), "double(G) != G+G")

	var g4 G1Jac
	g4.ScalarMultiplication(&g, big.NewInt(4))
	d.Double()
	require.True(t, d.Equal(&g4), "double(double(G)) != 4G")
}

func TestGroupLaw(t *testing.T) {
	g := Generator()

	var g2, g5, g7, sum G1Jac
	g2.ScalarMultiplication(&g, big.NewInt(2))
	g5.ScalarMultiplication(&g, big.NewInt(5))
	g7.ScalarMultiplication(&g, big.NewInt(7))
	sum.Set(&g2)
	sum.AddAssign(&g5)
	require.True(t, sum.Equal(&g7), "2G+5G != 7G")

	// G + (-G) == identity
	var n G1Jac
	n.Neg(&g)
	sum.Set(&g)
	sum.AddAssign(&n)
	require.True(t, sum.IsInfinity())
}

func TestNegativeScalar(t *testing.T) {
	g := Generator()

	var left, kG, right G1Jac
	left.ScalarMultiplication(&g, big.NewInt(-9))
	kG.ScalarMultiplication(&g, big.NewInt(9))
	right.Neg(&kG)
	require.True(t, left.Equal(&right))
}

func BenchmarkDouble(b *testing.B) {
	g := Generator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Double()
	}
}
