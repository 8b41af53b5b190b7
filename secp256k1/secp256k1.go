package secp256k1

import (
	"fmt"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/f3rmion/nizk/group"
)

const (
	scalarSize = 32
	pointSize  = 33
)

// curveOrder is the secp256k1 group order n.
var curveOrder *big.Int

func init() {
	curveOrder = new(big.Int).Set(btcec.S256().N)
}

// Scalar represents an element of the secp256k1 scalar field. It
// implements [group.Scalar] by wrapping btcec's ModNScalar, which keeps
// all values reduced modulo the group order.
type Scalar struct {
	inner btcec.ModNScalar
}

// Add sets s to a + b (mod n) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod n) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	var negB btcec.ModNScalar
	negB.NegateVal(&b.(*Scalar).inner)
	s.inner.Add2(&a.(*Scalar).inner, &negB)
	return s
}

// Mul sets s to a * b (mod n) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod n) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.NegateVal(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) (mod n) and returns s. Returns an error if a
// is zero.
//
// btcec only exposes variable-time inversion; see the package
// documentation for the timing characteristics of this backend.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, fmt.Errorf("secp256k1: cannot invert zero scalar")
	}
	s.inner.InverseValNonConst(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	var buf [scalarSize]byte
	s.inner.PutBytes(&buf)
	return buf[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns it.
// Values greater than or equal to the group order are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != scalarSize {
		return nil, fmt.Errorf("secp256k1: %w: got %d, want %d",
			group.ErrInvalidScalarLength, len(data), scalarSize)
	}
	if overflow := s.inner.SetBytes((*[scalarSize]byte)(data)); overflow != 0 {
		return nil, fmt.Errorf("secp256k1: %w: not reduced mod n", group.ErrInvalidScalar)
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equals(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point represents a point on the secp256k1 curve, including the point
// at infinity. It implements [group.Point] by wrapping btcec's
// JacobianPoint; the identity element is the point with Z = 0.
type Point struct {
	inner btcec.JacobianPoint
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	btcec.AddNonConst(&a.(*Point).inner, &b.(*Point).inner, &p.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var negB Point
	negB.Negate(b)
	btcec.AddNonConst(&a.(*Point).inner, &negB.inner, &p.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	p.inner.Y.Negate(1)
	p.inner.Y.Normalize()
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	qPoint := q.(*Point)
	if qPoint.IsIdentity() {
		p.inner = btcec.JacobianPoint{}
		return p
	}
	btcec.ScalarMultNonConst(&s.(*Scalar).inner, &qPoint.inner, &p.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the 33-byte compressed SEC encoding of the point.
//
// The point at infinity has no SEC encoding; it is returned as 33 zero
// bytes, which SetBytes rejects. Statements and commitments exchanged
// over the wire must therefore be non-identity points on this backend.
func (p *Point) Bytes() []byte {
	if p.IsIdentity() {
		return make([]byte, pointSize)
	}
	affine := p.inner
	affine.ToAffine()
	return btcec.NewPublicKey(&affine.X, &affine.Y).SerializeCompressed()
}

// SetBytes sets p from a 33-byte compressed SEC encoding and returns
// it. Returns an error if the data does not represent a valid curve
// point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != pointSize {
		return nil, fmt.Errorf("secp256k1: %w: got %d, want %d",
			group.ErrInvalidPointLength, len(data), pointSize)
	}
	pub, err := btcec.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("secp256k1: %w: %v", group.ErrInvalidPoint, err)
	}
	pub.AsJacobian(&p.inner)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
// Comparison is performed on the affine form, so differing Jacobian
// representations of one point compare equal.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	if p.IsIdentity() || bPoint.IsIdentity() {
		return p.IsIdentity() && bPoint.IsIdentity()
	}
	pa, ba := p.inner, bPoint.inner
	pa.ToAffine()
	ba.ToAffine()
	return pa.X.Equals(&ba.X) && pa.Y.Equals(&ba.Y)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return (p.inner.Z.Normalize()).IsZero()
}

// Secp256k1 implements [group.Group] for the secp256k1 curve.
//
// Secp256k1 is a zero-sized type that provides access to secp256k1
// curve operations. Create an instance with [New].
type Secp256k1 struct{}

// New returns a secp256k1 group instance.
func New() *Secp256k1 {
	return &Secp256k1{}
}

// Name returns "secp256k1".
func (g *Secp256k1) Name() string { return "secp256k1" }

// NewScalar returns a new scalar initialized to zero.
func (g *Secp256k1) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint returns a new point initialized to the point at infinity.
func (g *Secp256k1) NewPoint() group.Point {
	return &Point{}
}

// Generator returns the standard secp256k1 base point G.
func (g *Secp256k1) Generator() group.Point {
	var p Point
	btcec.Generator().AsJacobian(&p.inner)
	return &p
}

// RandomScalar generates a scalar uniformly distributed in [0, n)
// using rejection sampling on the provided random source.
func (g *Secp256k1) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [scalarSize]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("secp256k1: read random scalar: %w", err)
		}
		s := &Scalar{}
		if overflow := s.inner.SetBytes(&buf); overflow == 0 {
			return s, nil
		}
	}
}

// ScalarFromUniform interprets data as a big-endian integer and reduces
// it modulo the group order.
func (g *Secp256k1) ScalarFromUniform(data []byte) (group.Scalar, error) {
	if len(data) < scalarSize {
		return nil, fmt.Errorf("secp256k1: %w: need at least %d bytes, got %d",
			group.ErrInvalidScalarLength, scalarSize, len(data))
	}
	v := new(big.Int).SetBytes(data)
	v.Mod(v, curveOrder)

	var buf [scalarSize]byte
	v.FillBytes(buf[:])
	s := &Scalar{}
	s.inner.SetBytes(&buf)
	return s, nil
}

// ScalarSize returns 32, the byte length of a canonical scalar.
func (g *Secp256k1) ScalarSize() int { return scalarSize }

// PointSize returns 33, the byte length of a compressed point.
func (g *Secp256k1) PointSize() int { return pointSize }

// Order returns the secp256k1 group order n as a big-endian byte slice.
func (g *Secp256k1) Order() []byte {
	return curveOrder.Bytes()
}
