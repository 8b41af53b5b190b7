// Package edwards implements the [group.Group] interfaces for the
// prime-order subgroup of the edwards25519 curve.
//
// The implementation wraps filippo.io/edwards25519, which provides
// constant-time scalar and point arithmetic throughout. Scalars use
// the canonical 32-byte little-endian encoding of RFC 8032; points use
// the standard 32-byte compressed encoding. Unlike secp256k1, the
// identity element has a valid wire encoding here, so statements about
// the zero witness serialize without restriction.
//
// This is the preferred backend when resistance to timing side
// channels is a requirement.
package edwards
