package zkdl

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/nizk/group"
)

// transcriptLabel versions the challenge transcript. Changing the
// transcript layout requires bumping the label.
const transcriptLabel = "zkdl/challenge/v1"

// Hasher derives the Fiat-Shamir challenge from a proof transcript.
// Different implementations can provide different hash functions; all
// of them must be deterministic and pure.
type Hasher interface {
	// Challenge binds the session id, the party id and an ordered list
	// of curve points into a scalar. Identical inputs always yield an
	// identical scalar, and reordering the points changes the result.
	Challenge(g group.Group, sessionID string, partyID uint64, points ...group.Point) (group.Scalar, error)
}

// transcript serializes the challenge inputs into one unambiguous byte
// string. Every variable-length field carries a big-endian u32 length
// prefix, so no two distinct (sessionID, partyID, points) tuples can
// produce the same bytes.
func transcript(sessionID string, partyID uint64, points []group.Point) []byte {
	size := len(transcriptLabel) + 4 + len(sessionID) + 8 + 4
	for _, p := range points {
		size += 4 + len(p.Bytes())
	}

	buf := make([]byte, 0, size)
	buf = append(buf, transcriptLabel...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(sessionID)))
	buf = append(buf, sessionID...)
	buf = binary.BigEndian.AppendUint64(buf, partyID)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(points)))
	for _, p := range points {
		enc := p.Bytes()
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(enc)))
		buf = append(buf, enc...)
	}
	return buf
}

// SHA256Hasher implements [Hasher] using SHA-256.
// This is the default hasher for general use.
type SHA256Hasher struct{}

// Challenge implements Hasher.Challenge. The digest is interpreted as a
// big-endian integer and reduced modulo the group order.
func (h *SHA256Hasher) Challenge(g group.Group, sessionID string, partyID uint64, points ...group.Point) (group.Scalar, error) {
	digest := sha256.Sum256(transcript(sessionID, partyID, points))
	return g.ScalarFromUniform(digest[:])
}

// Blake2bHasher implements [Hasher] using BLAKE2b-256. It produces a
// different (incompatible) challenge stream than [SHA256Hasher]; both
// sides of a protocol run must agree on the hasher.
type Blake2bHasher struct{}

// Challenge implements Hasher.Challenge.
func (h *Blake2bHasher) Challenge(g group.Group, sessionID string, partyID uint64, points ...group.Point) (group.Scalar, error) {
	digest := blake2b.Sum256(transcript(sessionID, partyID, points))
	return g.ScalarFromUniform(digest[:])
}
