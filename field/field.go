// Package field defines the capability contract the group law in ecc/sw
// consumes from a coordinate field, plus generic helpers built on it.
//
// The method set mirrors the element API generated by
// github.com/consensys/gnark-crypto, so the fp/fr element type of any
// gnark-crypto curve satisfies Element without a wrapper.
package field

// Element is the pointer-method contract for a field element of type E.
// All mutating methods follow the z.Op(x, y) convention: the receiver is
// the destination and may alias any operand.
type Element[E any] interface {
	*E

	Set(x *E) *E
	SetZero() *E
	SetOne() *E

	Add(x, y *E) *E
	Sub(x, y *E) *E
	Neg(x *E) *E
	Mul(x, y *E) *E
	Square(x *E) *E
	Double(x *E) *E
	Inverse(x *E) *E

	Equal(x *E) bool
	IsZero() bool
	IsOne() bool

	Marshal() []byte
	String() string
}

// One returns the multiplicative identity of E.
func One[E any, PE Element[E]]() E {
	var one E
	PE(&one).SetOne()
	return one
}
