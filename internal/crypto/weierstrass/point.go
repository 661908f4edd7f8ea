package weierstrass

import (
	"fmt"
	"math/big"
)

// Point is a curve point in affine coordinates (X, Y). The identity of the
// group, the point at infinity, is carried as an explicit tag instead of a
// sentinel coordinate pair, so the group law can be total over all points.
//
// Points have value semantics: group operations return fresh points and
// never mutate their operands.
type Point struct {
	X, Y *big.Int
	inf  bool
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether p and q are the same point. Two affine points are
// equal iff both coordinates match; the point at infinity only equals itself.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	if p.inf {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.X.Text(16), p.Y.Text(16))
}
