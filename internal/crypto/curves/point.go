package curves

import (
	"fmt"
	"math/big"
)

type pointKind uint8

const (
	kindIdentity pointKind = iota
	kindAffine
)

// Point is either the identity element (the point at infinity) or an affine
// point (x, y). The zero value is the identity.
//
// Affine points are only produced by a Curve, either from validated
// coordinates or as the result of the group law, so they always lie on the
// curve they came from.
type Point struct {
	kind pointKind
	x, y *big.Int
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{kind: kindIdentity}
}

func affine(x, y *big.Int) Point {
	return Point{kind: kindAffine, x: x, y: y}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.kind == kindIdentity
}

// X returns a copy of the x-coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are both the identity or share both
// coordinates.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "identity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
