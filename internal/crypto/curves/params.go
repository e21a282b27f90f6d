package curves

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// Params describes a short-Weierstrass curve y^2 = x^3 + a*x + b over GF(p)
// with a base point G of prime order n. A Params value is immutable: the
// accessors hand out copies.
type Params struct {
	name    string
	p, a, b *big.Int
	gx, gy  *big.Int
	n       *big.Int
}

// NewParams builds a parameter set from the given domain values. The inputs
// are copied. The base point must satisfy the curve equation.
func NewParams(name string, p, a, b, gx, gy, n *big.Int) (*Params, error) {
	for _, v := range []*big.Int{p, a, b, gx, gy, n} {
		if v == nil {
			return nil, errors.Errorf("curve %s: nil domain parameter", name)
		}
	}
	if p.Sign() <= 0 || n.Sign() <= 0 {
		return nil, errors.Errorf("curve %s: modulus and order must be positive", name)
	}

	params := &Params{
		name: name,
		p:    new(big.Int).Set(p),
		a:    new(big.Int).Mod(a, p),
		b:    new(big.Int).Mod(b, p),
		gx:   new(big.Int).Set(gx),
		gy:   new(big.Int).Set(gy),
		n:    new(big.Int).Set(n),
	}

	if !New(params).IsOnCurve(gx, gy) {
		return nil, errors.Errorf("curve %s: base point is not on the curve", name)
	}
	return params, nil
}

var (
	p256Once   sync.Once
	p256Params *Params
)

// P256 returns the NIST P-256 parameters. The set is built once and shared
// read-only by every caller.
func P256() *Params {
	p256Once.Do(func() {
		std := elliptic.P256().Params()
		// P-256 uses a = -3.
		a := new(big.Int).Sub(std.P, big.NewInt(3))

		var err error
		p256Params, err = NewParams("P-256", std.P, a, std.B, std.Gx, std.Gy, std.N)
		if err != nil {
			panic(err)
		}
	})
	return p256Params
}

// Name returns the curve name, e.g. "P-256".
func (p *Params) Name() string { return p.name }

// P returns the field modulus.
func (p *Params) P() *big.Int { return new(big.Int).Set(p.p) }

// A returns the linear coefficient of the curve equation.
func (p *Params) A() *big.Int { return new(big.Int).Set(p.a) }

// B returns the constant coefficient of the curve equation.
func (p *Params) B() *big.Int { return new(big.Int).Set(p.b) }

// Gx returns the x-coordinate of the base point.
func (p *Params) Gx() *big.Int { return new(big.Int).Set(p.gx) }

// Gy returns the y-coordinate of the base point.
func (p *Params) Gy() *big.Int { return new(big.Int).Set(p.gy) }

// N returns the order of the base point.
func (p *Params) N() *big.Int { return new(big.Int).Set(p.n) }

// BitSize returns the bit length of the field modulus.
func (p *Params) BitSize() int { return p.p.BitLen() }
