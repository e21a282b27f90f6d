package curves

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/field"
	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

// Curve implements the group law of a short-Weierstrass curve in affine
// coordinates. It is not constant time.
type Curve struct {
	params *Params
	fp     *field.Field
	g      Point
}

// New returns a Curve for the given parameters.
func New(params *Params) *Curve {
	return &Curve{
		params: params,
		fp:     field.New(params.p),
		g:      affine(params.gx, params.gy),
	}
}

// NewP256 returns the NIST P-256 curve.
func NewP256() *Curve {
	return New(P256())
}

func (c *Curve) Params() *Params {
	return c.params
}

// BasePoint returns the generator G.
func (c *Curve) BasePoint() Point {
	return c.g
}

// Order returns the order n of G.
func (c *Curve) Order() *big.Int {
	return c.params.N()
}

// IsOnCurve reports whether (x, y) satisfies y^2 = x^3 + a*x + b mod p.
// Coordinates must be canonical, i.e. in [0, p).
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	if x.Sign() < 0 || x.Cmp(c.params.p) >= 0 || y.Sign() < 0 || y.Cmp(c.params.p) >= 0 {
		return false
	}

	f := c.fp
	// x^3 + a*x + b
	rhs := f.Mul(f.Square(x), x)
	rhs = f.Add(rhs, f.Mul(c.params.a, x))
	rhs = f.Add(rhs, c.params.b)

	return f.Square(y).Cmp(rhs) == 0
}

// NewPoint validates (x, y) and returns it as a Point. The coordinates are
// copied.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	if !c.IsOnCurve(x, y) {
		return Point{}, xsig.NewValidationError(x, y)
	}
	return affine(new(big.Int).Set(x), new(big.Int).Set(y)), nil
}

// Negate returns -p.
func (c *Curve) Negate(p Point) Point {
	if p.IsIdentity() {
		return p
	}
	return affine(p.x, c.fp.Neg(p.y))
}

// Add returns p + q.
func (c *Curve) Add(p, q Point) (Point, error) {
	if p.IsIdentity() {
		return q, nil
	}
	if q.IsIdentity() {
		return p, nil
	}

	if p.x.Cmp(q.x) == 0 {
		// q == -p
		if c.fp.Add(p.y, q.y).Sign() == 0 {
			return Identity(), nil
		}
		if p.y.Cmp(q.y) == 0 {
			return c.Double(p)
		}
	}

	f := c.fp
	inv, err := f.Inverse(f.Sub(q.x, p.x))
	if err != nil {
		return Point{}, errors.WithMessage(err, "adding points with equal x")
	}
	lambda := f.Mul(f.Sub(q.y, p.y), inv)

	return c.chord(lambda, p, q), nil
}

// Double returns 2p. Doubling an affine point with y = 0 is an
// ArithmeticError.
func (c *Curve) Double(p Point) (Point, error) {
	if p.IsIdentity() {
		return p, nil
	}

	f := c.fp
	inv, err := f.Inverse(f.Add(p.y, p.y))
	if err != nil {
		return Point{}, errors.WithMessage(err, "doubling point with y = 0")
	}
	// (3x^2 + a) / 2y
	num := f.Mul(big.NewInt(3), f.Square(p.x))
	num = f.Add(num, c.params.a)
	lambda := f.Mul(num, inv)

	return c.chord(lambda, p, p), nil
}

// chord finishes addition/doubling once the slope is known:
// x3 = l^2 - x1 - x2, y3 = l(x1 - x3) - y1.
func (c *Curve) chord(lambda *big.Int, p, q Point) Point {
	f := c.fp
	x3 := f.Sub(f.Sub(f.Square(lambda), p.x), q.x)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.x, x3)), p.y)
	return affine(x3, y3)
}

// ScalarMult returns k*p using left-to-right double-and-add. k is reduced
// modulo n first, so negative scalars are accepted and the loop never runs
// longer than the bit length of n. Every point of a prime-order curve has
// order n, so the reduction does not change the result.
func (c *Curve) ScalarMult(k *big.Int, p Point) (Point, error) {
	if k == nil {
		return Point{}, errors.New("scalar mult: nil scalar")
	}
	if p.IsIdentity() {
		return p, nil
	}

	e := new(big.Int).Mod(k, c.params.n)
	r := Identity()

	var err error
	for i := e.BitLen() - 1; i >= 0; i-- {
		r, err = c.Double(r)
		if err != nil {
			return Point{}, err
		}
		if e.Bit(i) == 1 {
			r, err = c.Add(r, p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return r, nil
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(k, c.g)
}
