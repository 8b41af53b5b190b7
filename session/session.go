package session

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/f3rmion/nizk/group"
	"github.com/f3rmion/nizk/zkdl"
)

// Barrier synchronizes the two parties of a session before any message
// flows. Await blocks until the peer has arrived under the same id, or
// fails when the peer never shows up or the id is already taken.
type Barrier interface {
	Await(ctx context.Context, id string) error
}

// Transport carries opaque message bytes between the two parties. It
// attaches no meaning to the payload.
type Transport interface {
	Send(ctx context.Context, payload []byte) error
	Recv(ctx context.Context) ([]byte, error)
}

// Result is the outcome of a successful handshake: the peer proved
// knowledge of the discrete logarithm of PeerKey within this session.
type Result struct {
	PeerID  uint64
	PeerKey group.Point
}

// Party runs one side of a mutual proof-of-knowledge handshake.
// Create instances with [NewParty]. A Party is stateless across
// handshakes; proof lifecycle bookkeeping lives here and in the
// barrier, never in the proof engine.
type Party struct {
	engine *zkdl.Engine
	hasher zkdl.Hasher
	id     uint64
	log    zerolog.Logger
}

// PartyOption configures a Party.
type PartyOption func(*Party)

// WithLogger sets the party's logger. The default discards all events.
func WithLogger(log zerolog.Logger) PartyOption {
	return func(p *Party) { p.log = log }
}

// WithHasher selects the challenge hasher. Both parties must agree.
func WithHasher(h zkdl.Hasher) PartyOption {
	return func(p *Party) { p.hasher = h }
}

// NewParty creates a handshake party with the given group and party id.
// The two parties of a session must use distinct ids.
func NewParty(g group.Group, id uint64, opts ...PartyOption) (*Party, error) {
	p := &Party{
		hasher: &zkdl.SHA256Hasher{},
		id:     id,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	e, err := zkdl.NewWithHasher(g, p.hasher)
	if err != nil {
		return nil, err
	}
	p.engine = e
	return p, nil
}

// Engine returns the underlying proof engine for advanced use cases.
func (p *Party) Engine() *zkdl.Engine {
	return p.engine
}

// ID returns this party's identifier.
func (p *Party) ID() uint64 {
	return p.id
}

// Handshake proves knowledge of x to the peer and verifies the peer's
// proof in return.
//
// The flow: wait for the peer at the barrier under sessionID, send
// (party id, public key, proof), receive the peer's message, and verify
// the peer's proof under the peer's party id and the shared session id.
// Any verification failure, echoed message, or malformed payload aborts
// the handshake with an error.
func (p *Party) Handshake(ctx context.Context, rng io.Reader, sessionID string, x group.Scalar, barrier Barrier, tr Transport) (*Result, error) {
	if sessionID == "" {
		return nil, zkdl.ErrEmptySessionID
	}

	g := p.engine.Group()
	y := g.NewPoint().ScalarMult(x, g.Generator())

	if err := barrier.Await(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("session: barrier: %w", err)
	}
	p.log.Debug().Str("session", sessionID).Uint64("party", p.id).Msg("peer arrived")

	proof, err := p.engine.Prove(rng, sessionID, p.id, x, y, g.Generator())
	if err != nil {
		return nil, fmt.Errorf("session: prove: %w", err)
	}

	msg, err := p.encodeMessage(y, proof)
	if err != nil {
		return nil, fmt.Errorf("session: encode message: %w", err)
	}
	if err := tr.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("session: send: %w", err)
	}

	peerMsg, err := tr.Recv(ctx)
	if err != nil {
		return nil, fmt.Errorf("session: recv: %w", err)
	}
	peerID, peerKey, peerProof, err := p.decodeMessage(peerMsg)
	if err != nil {
		return nil, fmt.Errorf("session: decode message: %w", err)
	}
	if peerID == p.id {
		return nil, errors.New("session: peer claims our own party id")
	}

	if !p.engine.Verify(peerProof, sessionID, peerID, peerKey, g.Generator()) {
		return nil, errors.New("session: peer proof rejected")
	}
	p.log.Info().
		Str("session", sessionID).
		Uint64("party", p.id).
		Uint64("peer", peerID).
		Msg("peer proof verified")

	return &Result{PeerID: peerID, PeerKey: peerKey}, nil
}

// Message layout: u64 party id, u32-prefixed public key bytes, then
// the serialized proof (fixed length for the engine's group).
func (p *Party) encodeMessage(y group.Point, proof *zkdl.Proof) ([]byte, error) {
	enc, err := p.engine.EncodeProof(proof)
	if err != nil {
		return nil, err
	}
	yBytes := y.Bytes()

	buf := make([]byte, 0, 8+4+len(yBytes)+len(enc))
	buf = binary.BigEndian.AppendUint64(buf, p.id)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(yBytes)))
	buf = append(buf, yBytes...)
	buf = append(buf, enc...)
	return buf, nil
}

func (p *Party) decodeMessage(data []byte) (uint64, group.Point, *zkdl.Proof, error) {
	g := p.engine.Group()
	if len(data) < 8+4 {
		return 0, nil, nil, errors.New("short message")
	}
	peerID := binary.BigEndian.Uint64(data[:8])
	yLen := int(binary.BigEndian.Uint32(data[8:12]))
	if yLen != g.PointSize() || len(data) != 12+yLen+p.engine.ProofSize() {
		return 0, nil, nil, errors.New("malformed message")
	}

	peerKey, err := g.NewPoint().SetBytes(data[12 : 12+yLen])
	if err != nil {
		return 0, nil, nil, fmt.Errorf("peer key: %w", err)
	}
	proof, err := p.engine.DecodeProof(data[12+yLen:])
	if err != nil {
		return 0, nil, nil, err
	}
	return peerID, peerKey, proof, nil
}
