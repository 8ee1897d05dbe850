// Package ecgroup implements the group law of elliptic curves in short
// Weierstrass form y² = x³ + a·x + b, over any prime field exposing the
// field.Element contract.
//
// The generic arithmetic lives in ecc/sw: Jacobian-coordinate points with
// complete addition, mixed addition, doubling specialized on the curve
// coefficient a, scalar multiplication and batch affine normalization.
// Ready-made instantiations are provided for:
//   - BN254 (ecc/bn254)
//   - BLS12-381 (ecc/bls12381)
//   - the Stark curve (ecc/starkcurve)
//
// A new curve is added by implementing sw.Config for its parameters; see
// any of the curve packages for the pattern.
package ecgroup
