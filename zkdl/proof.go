package zkdl

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/nizk/group"
)

var (
	// ErrEmptySessionID is returned by Prove when the session id is empty.
	ErrEmptySessionID = errors.New("zkdl: empty session id")

	// ErrInvalidProof is returned by DecodeProof for bytes that do not
	// form a canonical proof encoding.
	ErrInvalidProof = errors.New("zkdl: invalid proof encoding")
)

// Proof is a non-interactive Schnorr proof of knowledge of a discrete
// logarithm: the prover knows x such that Y = x*G. A Proof is an
// immutable value, produced once by [Engine.Prove] and consumed by
// [Engine.Verify]; it is only meaningful relative to the exact session
// id, party id and statement it was produced for.
type Proof struct {
	T group.Point  // commitment r*G
	S group.Scalar // response r + c*x
}

// Engine produces and checks discrete-logarithm proofs over one group.
// It is stateless: methods carry no shared mutable state, so a single
// Engine is safe for concurrent use as long as the random source handed
// to Prove is.
type Engine struct {
	group  group.Group
	hasher Hasher
}

// New creates an Engine over g using the default SHA-256 challenge
// hasher.
func New(g group.Group) (*Engine, error) {
	return NewWithHasher(g, &SHA256Hasher{})
}

// NewWithHasher creates an Engine with a custom challenge hasher.
// Both parties of a protocol run must use the same hasher.
func NewWithHasher(g group.Group, h Hasher) (*Engine, error) {
	if g == nil {
		return nil, errors.New("zkdl: nil group")
	}
	if h == nil {
		return nil, errors.New("zkdl: nil hasher")
	}
	return &Engine{group: g, hasher: h}, nil
}

// Group returns the group the engine operates over.
func (e *Engine) Group() group.Group {
	return e.group
}

// Prove generates a proof of knowledge of x such that y = x*base.
//
// The nonce is drawn from rng, which must be a cryptographically secure
// source such as crypto/rand.Reader; if the source fails, Prove aborts
// with an error rather than degrading. The relation y = x*base is the
// caller's responsibility: if it does not hold, the resulting proof
// simply fails verification.
func (e *Engine) Prove(rng io.Reader, sessionID string, partyID uint64, x group.Scalar, y, base group.Point) (*Proof, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if x == nil || y == nil || base == nil {
		return nil, errors.New("zkdl: nil statement or witness")
	}

	r, err := e.group.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("zkdl: sample nonce: %w", err)
	}

	t := e.group.NewPoint().ScalarMult(r, base)

	c, err := e.hasher.Challenge(e.group, sessionID, partyID, base, y, t)
	if err != nil {
		return nil, fmt.Errorf("zkdl: derive challenge: %w", err)
	}

	// s = r + c*x
	cx := e.group.NewScalar().Mul(c, x)
	s := e.group.NewScalar().Add(r, cx)

	return &Proof{T: t, S: s}, nil
}

// Verify checks a proof against the statement y = x*base under the
// given session id and party id. It recomputes the challenge over the
// same transcript order used by Prove and accepts iff
//
//	S*base == T + c*y
//
// Verify is total: it returns false for any mismatched, malformed or
// nil input and never panics or returns a partial result.
func (e *Engine) Verify(proof *Proof, sessionID string, partyID uint64, y, base group.Point) bool {
	if proof == nil || proof.T == nil || proof.S == nil || y == nil || base == nil {
		return false
	}

	c, err := e.hasher.Challenge(e.group, sessionID, partyID, base, y, proof.T)
	if err != nil {
		return false
	}

	lhs := e.group.NewPoint().ScalarMult(proof.S, base)

	cy := e.group.NewPoint().ScalarMult(c, y)
	rhs := e.group.NewPoint().Add(proof.T, cy)

	return lhs.Equal(rhs)
}
