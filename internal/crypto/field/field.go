package field

import (
	"math/big"

	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

// Field performs arithmetic modulo a prime P.
// Every method returns a freshly allocated value in [0, P) and never
// modifies its arguments.
type Field struct {
	p *big.Int
}

// New returns a Field for the modulus p. p is copied.
func New(p *big.Int) *Field {
	return &Field{p: new(big.Int).Set(p)}
}

// Modulus returns a copy of P.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Reduce maps x into [0, P).
func (f *Field) Reduce(x *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, negative inputs land in range too.
	return new(big.Int).Mod(x, f.p)
}

func (f *Field) Add(x, y *big.Int) *big.Int {
	r := new(big.Int).Add(x, y)
	return r.Mod(r, f.p)
}

func (f *Field) Sub(x, y *big.Int) *big.Int {
	r := new(big.Int).Sub(x, y)
	return r.Mod(r, f.p)
}

func (f *Field) Mul(x, y *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Mod(r, f.p)
}

func (f *Field) Square(x *big.Int) *big.Int {
	return f.Mul(x, x)
}

// Neg returns -x mod P.
func (f *Field) Neg(x *big.Int) *big.Int {
	r := new(big.Int).Neg(x)
	return r.Mod(r, f.p)
}

// Inverse returns x^-1 mod P. Inverting zero is an ArithmeticError.
func (f *Field) Inverse(x *big.Int) (*big.Int, error) {
	r := f.Reduce(x)
	if r.Sign() == 0 {
		return nil, xsig.NewArithmeticError("inverse", xsig.ErrInverseOfZero)
	}
	return r.ModInverse(r, f.p), nil
}

// Equal reports whether x and y are congruent mod P.
func (f *Field) Equal(x, y *big.Int) bool {
	return f.Reduce(x).Cmp(f.Reduce(y)) == 0
}
