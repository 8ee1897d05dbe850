package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/ecgroup/field"
	"github.com/consensys/ecgroup/internal/smallfields"
)

func elems(vs ...uint64) []smallfields.Element {
	res := make([]smallfields.Element, len(vs))
	for i, v := range vs {
		res[i].SetUint64(v)
	}
	return res
}

func TestBatchInvert(t *testing.T) {
	a := elems(1, 7, 0, 42, 12, 0, 3)
	expected := make([]smallfields.Element, len(a))
	for i := range a {
		expected[i].Inverse(&a[i])
	}

	field.BatchInvert[smallfields.Element](a)

	for i := range a {
		require.True(t, a[i].Equal(&expected[i]), "index %d", i)
	}
	// zero entries left untouched
	require.True(t, a[2].IsZero())
	require.True(t, a[5].IsZero())
}

func TestBatchInvertEdgeCases(t *testing.T) {
	field.BatchInvert[smallfields.Element](nil)

	all0 := elems(0, 0, 0)
	field.BatchInvert[smallfields.Element](all0)
	for i := range all0 {
		require.True(t, all0[i].IsZero())
	}

	single := elems(5)
	field.BatchInvert[smallfields.Element](single)
	var want smallfields.Element
	want.SetUint64(26) // 5·26 = 130 = 3·43 + 1
	require.True(t, single[0].Equal(&want))
}

func TestSumOfProducts(t *testing.T) {
	a := elems(2, 3, 5)
	b := elems(7, 11, 13)

	got := field.SumOfProducts[smallfields.Element](a, b)

	var want smallfields.Element
	want.SetUint64(2*7 + 3*11 + 5*13)
	require.True(t, got.Equal(&want))

	empty := field.SumOfProducts[smallfields.Element](nil, nil)
	require.True(t, empty.IsZero())
}

func TestOne(t *testing.T) {
	one := field.One[smallfields.Element]()
	require.True(t, one.IsOne())
}
