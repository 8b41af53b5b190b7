// Package zkdl implements a non-interactive zero-knowledge proof of
// knowledge of a discrete logarithm (a Schnorr proof made
// non-interactive with the Fiat-Shamir transform) over an arbitrary
// elliptic curve group.
//
// A prover holding a secret scalar x with public point Y = x*G
// convinces a verifier it knows x without revealing it:
//
//  1. Sample a uniform nonce r and commit to it: T = r*G.
//  2. Derive the challenge c by hashing the domain-separated transcript
//     (session id, party id, G, Y, T).
//  3. Respond with S = r + c*x mod the group order.
//
// The verifier recomputes c from the same transcript and accepts iff
// S*G == T + c*Y.
//
// # Domain Separation
//
// The challenge transcript binds a proof to one session id and one
// party id. Verifying the same proof under any other (session, party)
// context fails, which prevents replaying a proof across protocol runs
// or between the two parties of one run. All transcript fields are
// length-prefixed, so distinct contexts can never serialize to the same
// byte string.
//
// # Example
//
//	g := secp256k1.New()
//	e, _ := zkdl.New(g)
//
//	x, _ := g.RandomScalar(rand.Reader)
//	y := g.NewPoint().ScalarMult(x, g.Generator())
//
//	proof, err := e.Prove(rand.Reader, "sid", 1, x, y, g.Generator())
//	if err != nil {
//	    return err
//	}
//	ok := e.Verify(proof, "sid", 1, y, g.Generator())
//
// # Security Considerations
//
// The nonce r must never repeat across two proofs for the same secret:
// two transcripts with a shared r form two linear equations that
// recover x. Prove therefore takes the random source as an explicit
// parameter and refuses to continue when it fails.
//
// Verify accepts untrusted input. Malformed proof bytes are rejected by
// [Engine.DecodeProof] before any arithmetic, and an algebraic mismatch
// is reported as a plain false, never as an error or panic.
package zkdl
