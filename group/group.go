package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as exponents in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical fixed-width byte representation of
	// the scalar. Its length is always [Group.ScalarSize].
	Bytes() []byte
	// SetBytes sets the receiver from a canonical encoding and returns
	// it. It is strict: data of the wrong length, or representing a
	// value outside [0, order), is rejected with an error rather than
	// reduced. Use [Group.ScalarFromUniform] for reducing conversions.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of a cryptographic group, typically a point
// on an elliptic curve. Points support addition, subtraction, negation,
// and scalar multiplication.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency.
//
// The identity element (zero point, point at infinity) is the additive
// identity: P + Identity = P for all points P. Equality is defined over
// the canonical (affine) form of a point, so two internal
// representations of the same point always compare equal.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical compressed encoding of the point.
	// Its length is always [Group.PointSize].
	Bytes() []byte
	// SetBytes sets the receiver from a compressed encoding and returns
	// it. Data that does not decode to a valid group element is
	// rejected with an error.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a cryptographic group suitable for discrete-logarithm
// based proof systems. It provides factory methods for creating scalars
// and points, access to the group's generator, and conversions between
// byte strings and scalars.
//
// A Group implementation encapsulates all curve-specific details,
// allowing protocol code to be generic over different elliptic curves.
//
// Example usage:
//
//	g := secp256k1.New()  // or any other Group implementation
//	scalar, _ := g.RandomScalar(rand.Reader)
//	point := g.NewPoint().ScalarMult(scalar, g.Generator())
type Group interface {
	// Name returns a short identifier for the group, e.g. "secp256k1".
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a scalar sampled uniformly from [0, order)
	// using the provided randomness source. The source must be
	// cryptographically secure for any protocol use.
	RandomScalar(r io.Reader) (Scalar, error)
	// ScalarFromUniform interprets data as a big-endian integer and
	// reduces it modulo the group order. It is intended for converting
	// hash output into a scalar and accepts at least 32 bytes.
	ScalarFromUniform(data []byte) (Scalar, error)
	// ScalarSize returns the byte length of a canonical scalar encoding.
	ScalarSize() int
	// PointSize returns the byte length of a compressed point encoding.
	PointSize() int
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
}
