package edwards

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/f3rmion/nizk/group"
)

func TestScalar(t *testing.T) {
	g := New()

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		product := g.NewScalar().Mul(a, aInv)

		b, _ := g.RandomScalar(rand.Reader)
		result := g.NewScalar().Mul(product, b)

		if !result.Equal(b) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		zero := g.NewScalar()
		_, err := g.NewScalar().Invert(zero)
		if err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		zero := g.NewScalar()
		a, _ := g.RandomScalar(rand.Reader)
		negA := g.NewScalar().Negate(a)

		result := g.NewScalar().Add(a, negA)

		if !result.Equal(zero) {
			t.Error("negating scalar failed")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)

		enc := a.Bytes()
		if len(enc) != g.ScalarSize() {
			t.Fatalf("encoding is %d bytes, want %d", len(enc), g.ScalarSize())
		}
		restored, err := g.NewScalar().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("SetBytesRejectsUnreduced", func(t *testing.T) {
		// The subgroup order l, little-endian, is not canonical.
		be := g.Order()
		le := make([]byte, g.ScalarSize())
		for i, b := range be {
			le[len(be)-1-i] = b
		}
		if _, err := g.NewScalar().SetBytes(le); err == nil {
			t.Error("expected error for scalar >= l")
		}

		if _, err := g.NewScalar().SetBytes(make([]byte, 16)); err == nil {
			t.Error("expected error for short encoding")
		}
	})

	t.Run("ScalarFromUniform", func(t *testing.T) {
		// Input is interpreted big-endian regardless of the backend's
		// native encoding.
		var seed [32]byte
		seed[31] = 1
		one, err := g.ScalarFromUniform(seed[:])
		if err != nil {
			t.Fatal(err)
		}

		a, _ := g.RandomScalar(rand.Reader)
		if !g.NewScalar().Mul(one, a).Equal(a) {
			t.Error("1*a != a")
		}

		again, err := g.ScalarFromUniform(seed[:])
		if err != nil {
			t.Fatal(err)
		}
		if !again.Equal(one) {
			t.Error("ScalarFromUniform not deterministic")
		}
	})

	t.Run("NewScalarIsZero", func(t *testing.T) {
		zero := g.NewScalar()
		if !zero.IsZero() {
			t.Error("new scalar should be zero")
		}
	})

	t.Run("Equal", func(t *testing.T) {
		var a group.Scalar
		for {
			a, _ = g.RandomScalar(rand.Reader)
			if !a.IsZero() {
				break
			}
		}
		b := g.NewScalar().Set(a)
		if !a.Equal(b) {
			t.Error("copied scalar should equal original")
		}

		b = g.NewScalar().Negate(a)
		if a.Equal(b) {
			t.Error("a should not equal -a")
		}
	})
}

func TestPoint(t *testing.T) {
	g := New()

	t.Run("AddSub", func(t *testing.T) {
		s1, _ := g.RandomScalar(rand.Reader)
		s2, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s1, g.Generator())
		Q := g.NewPoint().ScalarMult(s2, g.Generator())

		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)

		if !diff.Equal(P) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s, g.Generator())
		negP := g.NewPoint().Negate(P)

		result := g.NewPoint().Add(P, negP)

		if !result.IsIdentity() {
			t.Error("P + (-P) != identity")
		}
	})

	t.Run("ScalarMultDistributes", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		lhs := g.NewPoint().ScalarMult(g.NewScalar().Add(a, b), g.Generator())
		rhs := g.NewPoint().Add(
			g.NewPoint().ScalarMult(a, g.Generator()),
			g.NewPoint().ScalarMult(b, g.Generator()),
		)

		if !lhs.Equal(rhs) {
			t.Error("(a+b)*G != a*G + b*G")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s, g.Generator())

		enc := P.Bytes()
		if len(enc) != g.PointSize() {
			t.Fatalf("encoding is %d bytes, want %d", len(enc), g.PointSize())
		}
		restored, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
	})

	t.Run("IdentityRoundtrip", func(t *testing.T) {
		// Unlike short Weierstrass encodings, the identity has a
		// perfectly ordinary compressed form here.
		enc := g.NewPoint().Bytes()
		restored, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.IsIdentity() {
			t.Error("identity should roundtrip through bytes")
		}
	})

	t.Run("SetBytesRejectsGarbage", func(t *testing.T) {
		garbage := bytes.Repeat([]byte{0xff}, g.PointSize())
		if _, err := g.NewPoint().SetBytes(garbage); err == nil {
			t.Error("expected error for non-point bytes")
		}

		if _, err := g.NewPoint().SetBytes([]byte{0x01}); err == nil {
			t.Error("expected error for short encoding")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		identity := g.NewPoint()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}

		gen := g.Generator()
		if gen.IsIdentity() {
			t.Error("generator should not be identity")
		}
	})
}
