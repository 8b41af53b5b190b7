package edwards

import (
	"fmt"
	"io"
	"math/big"

	"filippo.io/edwards25519"

	"github.com/f3rmion/nizk/group"
)

const (
	scalarSize = 32
	pointSize  = 32
)

// curveOrder is the order of the prime-order subgroup,
// l = 2^252 + 27742317777372353535851937790883648493.
var curveOrder *big.Int

func init() {
	curveOrder, _ = new(big.Int).SetString(
		"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
}

// Scalar represents an element of the edwards25519 scalar field. It
// implements [group.Scalar] by wrapping filippo.io/edwards25519's
// Scalar, which is constant-time and keeps values reduced modulo l.
//
// The canonical encoding is 32 bytes little-endian, per RFC 8032.
type Scalar struct {
	inner edwards25519.Scalar
}

// Add sets s to a + b (mod l) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod l) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Subtract(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod l) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Multiply(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod l) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Negate(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) (mod l) and returns s. Returns an error if a
// is zero.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, fmt.Errorf("edwards: cannot invert zero scalar")
	}
	s.inner.Invert(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// Bytes returns the scalar as its canonical 32-byte little-endian
// encoding.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes sets s from a canonical 32-byte little-endian encoding and
// returns it. Non-canonical values (>= l) are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != scalarSize {
		return nil, fmt.Errorf("edwards: %w: got %d, want %d",
			group.ErrInvalidScalarLength, len(data), scalarSize)
	}
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("edwards: %w: %v", group.ErrInvalidScalar, err)
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	var zero edwards25519.Scalar
	return s.inner.Equal(&zero) == 1
}

// Point represents a point on the edwards25519 curve. It implements
// [group.Point] by wrapping filippo.io/edwards25519's Point. The
// identity element encodes as it does in RFC 8032 and round-trips
// through Bytes/SetBytes like any other point.
type Point struct {
	inner edwards25519.Point
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	p.inner.Subtract(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Negate(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p. The multiplication is
// constant-time in the scalar.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMult(&s.(*Scalar).inner, &q.(*Point).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the canonical 32-byte compressed encoding of the point.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a 32-byte compressed encoding and returns it.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != pointSize {
		return nil, fmt.Errorf("edwards: %w: got %d, want %d",
			group.ErrInvalidPointLength, len(data), pointSize)
	}
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, fmt.Errorf("edwards: %w: %v", group.ErrInvalidPoint, err)
	}
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Edwards implements [group.Group] for the prime-order subgroup of
// edwards25519.
//
// Edwards is a zero-sized type that provides access to edwards25519
// operations. Create an instance with [New].
type Edwards struct{}

// New returns an edwards25519 group instance.
func New() *Edwards {
	return &Edwards{}
}

// Name returns "edwards25519".
func (g *Edwards) Name() string { return "edwards25519" }

// NewScalar returns a new scalar initialized to zero.
func (g *Edwards) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint returns a new point initialized to the identity element.
func (g *Edwards) NewPoint() group.Point {
	var p Point
	p.inner.Set(edwards25519.NewIdentityPoint())
	return &p
}

// Generator returns the standard edwards25519 base point.
func (g *Edwards) Generator() group.Point {
	var p Point
	p.inner.Set(edwards25519.NewGeneratorPoint())
	return &p
}

// RandomScalar generates a scalar uniformly distributed in [0, l) by
// wide reduction of 64 bytes from the provided random source.
func (g *Edwards) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("edwards: read random scalar: %w", err)
	}
	s := &Scalar{}
	if _, err := s.inner.SetUniformBytes(buf[:]); err != nil {
		return nil, fmt.Errorf("edwards: reduce random scalar: %w", err)
	}
	return s, nil
}

// ScalarFromUniform interprets data as a big-endian integer and reduces
// it modulo the group order.
func (g *Edwards) ScalarFromUniform(data []byte) (group.Scalar, error) {
	if len(data) < scalarSize {
		return nil, fmt.Errorf("edwards: %w: need at least %d bytes, got %d",
			group.ErrInvalidScalarLength, scalarSize, len(data))
	}
	v := new(big.Int).SetBytes(data)
	v.Mod(v, curveOrder)

	var be [scalarSize]byte
	v.FillBytes(be[:])
	var le [scalarSize]byte
	for i := range be {
		le[i] = be[scalarSize-1-i]
	}

	s := &Scalar{}
	if _, err := s.inner.SetCanonicalBytes(le[:]); err != nil {
		return nil, fmt.Errorf("edwards: reduce scalar: %w", err)
	}
	return s, nil
}

// ScalarSize returns 32, the byte length of a canonical scalar.
func (g *Edwards) ScalarSize() int { return scalarSize }

// PointSize returns 32, the byte length of a compressed point.
func (g *Edwards) PointSize() int { return pointSize }

// Order returns the subgroup order l as a big-endian byte slice.
func (g *Edwards) Order() []byte {
	return curveOrder.Bytes()
}
