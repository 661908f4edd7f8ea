// Package weierstrass implements the group law on a short Weierstrass curve
// y² = x³ + A·x + B over a prime field, in affine coordinates. The point at
// infinity is modeled explicitly, so addition, doubling and scalar
// multiplication are total functions over the group.
//
// The arithmetic is not constant time. It is built from first principles on
// math/big and is meant to be checked against a hardened implementation, not
// to replace one.
package weierstrass

import (
	"errors"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/modmath"
)

var (
	// ErrSingularCurve is returned by New when 4A³ + 27B² ≡ 0 (mod P),
	// i.e. the parameters describe a singular curve without a group law.
	ErrSingularCurve = errors.New("weierstrass: singular curve parameters")

	// ErrGeneratorOffCurve is returned by New when the base point does
	// not satisfy the curve equation.
	ErrGeneratorOffCurve = errors.New("weierstrass: generator is not on the curve")

	// ErrNegativeScalar is returned by ScalarMult for a negative scalar.
	ErrNegativeScalar = errors.New("weierstrass: negative scalar")
)

// Curve is an elliptic curve group over a prime field. It is immutable and
// safe for concurrent use.
type Curve struct {
	params *Params
}

// New constructs the curve group for the given parameters. It rejects
// singular curves (the non-singularity invariant 4A³ + 27B² ≢ 0 mod P) and
// parameters whose base point does not lie on the curve.
func New(params *Params) (*Curve, error) {
	// 4A³ + 27B² mod P
	d := new(big.Int).Mul(params.A, params.A)
	d.Mul(d, params.A)
	d.Mul(d, big.NewInt(4))
	b := new(big.Int).Mul(params.B, params.B)
	b.Mul(b, big.NewInt(27))
	d.Add(d, b)
	d.Mod(d, params.P)
	if d.Sign() == 0 {
		return nil, ErrSingularCurve
	}

	c := &Curve{params: params}
	if !c.IsOnCurve(c.Generator()) {
		return nil, ErrGeneratorOffCurve
	}
	return c, nil
}

// Params returns the curve parameters. Callers must not modify them.
func (c *Curve) Params() *Params {
	return c.params
}

// Generator returns the base point G.
func (c *Curve) Generator() Point {
	return NewPoint(c.params.Gx, c.params.Gy)
}

// Polynomial evaluates x³ + A·x + B mod P.
func (c *Curve) Polynomial(x *big.Int) *big.Int {
	y2 := new(big.Int).Mul(x, x)
	y2.Mul(y2, x)
	y2.Add(y2, new(big.Int).Mul(c.params.A, x))
	y2.Add(y2, c.params.B)
	return y2.Mod(y2, c.params.P)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, c.params.P)
	return y2.Cmp(c.Polynomial(p.X)) == 0
}

// Neg returns −p, the reflection of p across the x axis.
func (c *Curve) Neg(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	y := new(big.Int).Neg(p.Y)
	y.Mod(y, c.params.P)
	return Point{X: new(big.Int).Set(p.X), Y: y}
}

// Double returns 2·p. Doubling the point at infinity yields infinity, as
// does doubling a point with a vertical tangent (2y ≡ 0 mod P).
func (c *Curve) Double(p Point) (Point, error) {
	if p.IsInfinity() {
		return Infinity(), nil
	}

	twoY := new(big.Int).Lsh(p.Y, 1)
	twoY.Mod(twoY, c.params.P)
	if twoY.Sign() == 0 {
		// Vertical tangent: p is its own inverse.
		return Infinity(), nil
	}

	inv, err := modmath.InverseMod(twoY, c.params.P)
	if err != nil {
		return Point{}, err
	}

	// s = (3x² + A) / 2y mod P
	s := new(big.Int).Mul(p.X, p.X)
	s.Mul(s, big.NewInt(3))
	s.Add(s, c.params.A)
	s.Mul(s, inv)
	s.Mod(s, c.params.P)

	return c.chord(s, p, p), nil
}

// Add returns p + q under the full group law: infinity is the identity,
// p + (−p) = infinity, and p + p delegates to Double.
func (c *Curve) Add(p, q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) == 0 {
			return c.Double(p)
		}
		// Same x, different y: q = −p.
		return Infinity(), nil
	}

	dx := new(big.Int).Sub(q.X, p.X)
	dx.Mod(dx, c.params.P)
	inv, err := modmath.InverseMod(dx, c.params.P)
	if err != nil {
		return Point{}, err
	}

	// s = (y_q − y_p) / (x_q − x_p) mod P
	s := new(big.Int).Sub(q.Y, p.Y)
	s.Mod(s, c.params.P)
	s.Mul(s, inv)
	s.Mod(s, c.params.P)

	return c.chord(s, p, q), nil
}

// chord completes an addition or doubling given the slope s of the chord
// (or tangent) through p and q.
func (c *Curve) chord(s *big.Int, p, q Point) Point {
	x := new(big.Int).Mul(s, s)
	x.Sub(x, p.X)
	x.Sub(x, q.X)
	x.Mod(x, c.params.P)

	y := new(big.Int).Sub(p.X, x)
	y.Mul(y, s)
	y.Sub(y, p.Y)
	y.Mod(y, c.params.P)

	return Point{X: x, Y: y}
}

// ScalarMult returns n·p by binary double-and-add, walking the bits of n
// from the most significant down. n must be non-negative; 0·p and any
// multiple of the point at infinity are the point at infinity.
func (c *Curve) ScalarMult(n *big.Int, p Point) (Point, error) {
	if n.Sign() < 0 {
		return Point{}, ErrNegativeScalar
	}
	if n.Sign() == 0 || p.IsInfinity() {
		return Infinity(), nil
	}

	q := p
	for i := n.BitLen() - 2; i >= 0; i-- {
		var err error
		q, err = c.Double(q)
		if err != nil {
			return Point{}, err
		}
		if n.Bit(i) == 1 {
			q, err = c.Add(q, p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return q, nil
}
