package zkdl

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/nizk/bjj"
	"github.com/f3rmion/nizk/edwards"
	"github.com/f3rmion/nizk/group"
	"github.com/f3rmion/nizk/secp256k1"
)

func testGroups() []group.Group {
	return []group.Group{secp256k1.New(), edwards.New(), bjj.New()}
}

// keyPair samples a fresh witness and computes its statement y = x*G.
func keyPair(t *testing.T, g group.Group) (group.Scalar, group.Point) {
	t.Helper()
	x, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return x, g.NewPoint().ScalarMult(x, g.Generator())
}

func TestProveVerify(t *testing.T) {
	for _, g := range testGroups() {
		t.Run(g.Name(), func(t *testing.T) {
			e, err := New(g)
			if err != nil {
				t.Fatal(err)
			}
			x, y := keyPair(t, g)

			proof, err := e.Prove(rand.Reader, "sid", 1, x, y, g.Generator())
			if err != nil {
				t.Fatal(err)
			}

			t.Run("Completeness", func(t *testing.T) {
				if !e.Verify(proof, "sid", 1, y, g.Generator()) {
					t.Error("honest proof rejected")
				}
			})

			t.Run("WrongSessionID", func(t *testing.T) {
				if e.Verify(proof, "other", 1, y, g.Generator()) {
					t.Error("proof accepted under different session id")
				}
			})

			t.Run("WrongPartyID", func(t *testing.T) {
				if e.Verify(proof, "sid", 2, y, g.Generator()) {
					t.Error("proof accepted under different party id")
				}
			})

			t.Run("WrongStatement", func(t *testing.T) {
				_, y2 := keyPair(t, g)
				if e.Verify(proof, "sid", 1, y2, g.Generator()) {
					t.Error("proof accepted for a different public key")
				}
			})

			t.Run("TamperedResponse", func(t *testing.T) {
				one, err := g.ScalarFromUniform(append(make([]byte, 31), 1))
				if err != nil {
					t.Fatal(err)
				}
				bad := &Proof{T: proof.T, S: g.NewScalar().Add(proof.S, one)}
				if e.Verify(bad, "sid", 1, y, g.Generator()) {
					t.Error("proof with altered response accepted")
				}
			})

			t.Run("TamperedCommitment", func(t *testing.T) {
				bad := &Proof{T: g.NewPoint().Add(proof.T, g.Generator()), S: proof.S}
				if e.Verify(bad, "sid", 1, y, g.Generator()) {
					t.Error("proof with altered commitment accepted")
				}
			})
		})
	}
}

func TestProofFreshness(t *testing.T) {
	for _, g := range testGroups() {
		t.Run(g.Name(), func(t *testing.T) {
			e, _ := New(g)
			x, y := keyPair(t, g)

			p1, err := e.Prove(rand.Reader, "sid", 1, x, y, g.Generator())
			if err != nil {
				t.Fatal(err)
			}
			p2, err := e.Prove(rand.Reader, "sid", 1, x, y, g.Generator())
			if err != nil {
				t.Fatal(err)
			}

			// Fresh nonces make the commitments differ with overwhelming
			// probability, yet both proofs remain valid.
			if p1.T.Equal(p2.T) {
				t.Error("two independent proofs share a commitment")
			}
			if !e.Verify(p1, "sid", 1, y, g.Generator()) || !e.Verify(p2, "sid", 1, y, g.Generator()) {
				t.Error("fresh proof rejected")
			}
		})
	}
}

func TestEdgeWitnesses(t *testing.T) {
	for _, g := range testGroups() {
		t.Run(g.Name(), func(t *testing.T) {
			e, _ := New(g)

			t.Run("ZeroWitness", func(t *testing.T) {
				// x = 0 makes y the identity. The algebra is indifferent.
				x := g.NewScalar()
				y := g.NewPoint().ScalarMult(x, g.Generator())
				if !y.IsIdentity() {
					t.Fatal("0*G should be the identity")
				}

				proof, err := e.Prove(rand.Reader, "sid", 1, x, y, g.Generator())
				if err != nil {
					t.Fatal(err)
				}
				if !e.Verify(proof, "sid", 1, y, g.Generator()) {
					t.Error("proof for zero witness rejected")
				}
			})

			t.Run("MaxWitness", func(t *testing.T) {
				// x = order - 1, the largest canonical scalar.
				one, err := g.ScalarFromUniform(append(make([]byte, 31), 1))
				if err != nil {
					t.Fatal(err)
				}
				x := g.NewScalar().Negate(one)
				y := g.NewPoint().ScalarMult(x, g.Generator())

				proof, err := e.Prove(rand.Reader, "sid", 1, x, y, g.Generator())
				if err != nil {
					t.Fatal(err)
				}
				if !e.Verify(proof, "sid", 1, y, g.Generator()) {
					t.Error("proof for order-1 witness rejected")
				}
			})
		})
	}
}

func TestSoundness(t *testing.T) {
	g := secp256k1.New()
	e, _ := New(g)
	_, y := keyPair(t, g)

	// Forged proofs from random commitments and responses must not
	// verify. A single accepted forgery would break the scheme.
	for i := 0; i < 32; i++ {
		r, _ := g.RandomScalar(rand.Reader)
		s, _ := g.RandomScalar(rand.Reader)
		forged := &Proof{T: g.NewPoint().ScalarMult(r, g.Generator()), S: s}
		if e.Verify(forged, "sid", 1, y, g.Generator()) {
			t.Fatal("forged proof accepted")
		}
	}
}

func TestProveErrors(t *testing.T) {
	g := edwards.New()
	e, _ := New(g)
	x, y := keyPair(t, g)

	t.Run("EmptySessionID", func(t *testing.T) {
		_, err := e.Prove(rand.Reader, "", 1, x, y, g.Generator())
		if !errors.Is(err, ErrEmptySessionID) {
			t.Errorf("got %v, want ErrEmptySessionID", err)
		}
	})

	t.Run("NilWitness", func(t *testing.T) {
		if _, err := e.Prove(rand.Reader, "sid", 1, nil, y, g.Generator()); err == nil {
			t.Error("expected error for nil witness")
		}
	})

	t.Run("FailingRNG", func(t *testing.T) {
		if _, err := e.Prove(errReader{}, "sid", 1, x, y, g.Generator()); err == nil {
			t.Error("expected error from failing random source")
		}
	})

	t.Run("NilEngineArgs", func(t *testing.T) {
		if _, err := New(nil); err == nil {
			t.Error("expected error for nil group")
		}
		if _, err := NewWithHasher(g, nil); err == nil {
			t.Error("expected error for nil hasher")
		}
	})
}

func TestVerifyIsTotal(t *testing.T) {
	g := edwards.New()
	e, _ := New(g)
	_, y := keyPair(t, g)

	if e.Verify(nil, "sid", 1, y, g.Generator()) {
		t.Error("nil proof accepted")
	}
	if e.Verify(&Proof{}, "sid", 1, y, g.Generator()) {
		t.Error("empty proof accepted")
	}
	if e.Verify(&Proof{T: g.NewPoint(), S: g.NewScalar()}, "sid", 1, nil, g.Generator()) {
		t.Error("nil statement accepted")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}
