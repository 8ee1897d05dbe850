package smallfields

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInverseExhaustive(t *testing.T) {
	for v := uint64(1); v < Modulus; v++ {
		x := NewElement(v)
		var inv, prod Element
		inv.Inverse(&x)
		prod.Mul(&x, &inv)
		require.True(t, prod.IsOne(), "v=%d", v)
	}

	var zero, inv Element
	inv.Inverse(&zero)
	require.True(t, inv.IsZero())
}

func TestFieldAxioms(t *testing.T) {
	for a := uint64(0); a < Modulus; a++ {
		for b := uint64(0); b < Modulus; b++ {
			x, y := NewElement(a), NewElement(b)

			var s1, s2 Element
			s1.Add(&x, &y)
			s2.Add(&y, &x)
			require.True(t, s1.Equal(&s2))

			var d, back Element
			d.Sub(&x, &y)
			back.Add(&d, &y)
			require.True(t, back.Equal(&x))

			var n, sum Element
			n.Neg(&y)
			sum.Add(&y, &n)
			require.True(t, sum.IsZero())
		}
	}
}

func TestDerivedOps(t *testing.T) {
	x := NewElement(29)

	var sq, mul Element
	sq.Square(&x)
	mul.Mul(&x, &x)
	require.True(t, sq.Equal(&mul))

	var dbl, add Element
	dbl.Double(&x)
	add.Add(&x, &x)
	require.True(t, dbl.Equal(&add))
}

func TestReduction(t *testing.T) {
	reduced := NewElement(Modulus + 2)
	require.Equal(t, uint64(2), reduced.Uint64())

	var z Element
	z.SetUint64(100)
	require.Equal(t, uint64(100%Modulus), z.Uint64())
}

func TestMarshalString(t *testing.T) {
	x := NewElement(29)
	require.Equal(t, []byte{29}, x.Marshal())
	require.Equal(t, "29", x.String())

	var zero Element
	require.True(t, zero.IsZero())
	require.Equal(t, "0", zero.String())
}
