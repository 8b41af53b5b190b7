// Package secp256k1 implements the [group.Group] interfaces for the
// secp256k1 curve, the curve used by Bitcoin and Ethereum.
//
// The implementation wraps github.com/btcsuite/btcd/btcec/v2. Scalars
// are btcec ModNScalar values (32-byte big-endian canonical encoding);
// points are Jacobian-coordinate curve points with the point at
// infinity represented by a zero Z coordinate. The compressed 33-byte
// SEC encoding is the canonical point encoding.
//
// # Security Considerations
//
// btcec's point multiplication and scalar inversion are variable-time
// (the library exposes only the *NonConst routines). Deployments that
// need strict constant-time arithmetic for secret-dependent operations
// should prefer the edwards backend, which is constant-time throughout.
//
// The point at infinity has no SEC encoding: Bytes on the identity
// returns an all-zero string that SetBytes rejects. Protocols on this
// backend can prove statements about the identity in memory but cannot
// serialize such a statement point.
package secp256k1
