package zkdl

import "fmt"

// ProofSize returns the byte length of a serialized proof for the
// engine's group: one compressed point followed by one fixed-width
// scalar.
func (e *Engine) ProofSize() int {
	return e.group.PointSize() + e.group.ScalarSize()
}

// EncodeProof serializes a proof as the compressed commitment T
// followed by the canonical scalar encoding of S.
func (e *Engine) EncodeProof(p *Proof) ([]byte, error) {
	if p == nil || p.T == nil || p.S == nil {
		return nil, fmt.Errorf("%w: nil proof", ErrInvalidProof)
	}
	buf := make([]byte, 0, e.ProofSize())
	buf = append(buf, p.T.Bytes()...)
	buf = append(buf, p.S.Bytes()...)
	if len(buf) != e.ProofSize() {
		return nil, fmt.Errorf("%w: unencodable commitment", ErrInvalidProof)
	}
	return buf, nil
}

// DecodeProof parses a serialized proof. It is strict: data of the
// wrong length, commitments that are not valid curve points, and
// non-canonical scalars are all rejected with an error wrapping
// [ErrInvalidProof]. No arithmetic is attempted on rejected input, so
// DecodeProof is safe to expose to untrusted bytes.
func (e *Engine) DecodeProof(data []byte) (*Proof, error) {
	if len(data) != e.ProofSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidProof, len(data), e.ProofSize())
	}

	t, err := e.group.NewPoint().SetBytes(data[:e.group.PointSize()])
	if err != nil {
		return nil, fmt.Errorf("%w: commitment: %v", ErrInvalidProof, err)
	}
	s, err := e.group.NewScalar().SetBytes(data[e.group.PointSize():])
	if err != nil {
		return nil, fmt.Errorf("%w: response: %v", ErrInvalidProof, err)
	}

	return &Proof{T: t, S: s}, nil
}
