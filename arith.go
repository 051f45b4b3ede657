package pnc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// MaxExactBits limits the size of exact results. An Integer or Rational
// operation whose result could need more bits than this is an InternalError
// rather than an attempt to exhaust memory.
const MaxExactBits = 1 << 24

// to converts n to kind k, which must not be less than n's kind. prec is the
// precision for conversions to Real.
func (n Number) to(k Kind, prec uint) Number {
	if n.kind == k {
		return n
	}
	r := Number{kind: k, base: n.base}
	switch k {
	case Rational:
		r.q = new(big.Rat).SetInt(n.integer())
	case Real:
		r.f = n.real(prec)
	default:
		panic("pnc: cannot convert " + n.kind.String() + " to " + k.String())
	}
	return r
}

// real returns a new float holding the value of n rounded to prec bits.
func (n Number) real(prec uint) *big.Float {
	if prec == 0 {
		prec = DefaultPrec
	}
	f := new(big.Float).SetPrec(prec)
	switch n.kind {
	case Integer:
		f.SetInt(n.integer())
	case Rational:
		f.SetRat(n.q)
	case Real:
		f.Set(n.f)
	default:
		panic("pnc: invalid number kind " + n.kind.String())
	}
	return f
}

// unify promotes n and m to the greater of their kinds. The precision of a
// promoted Real is the greater of the operands' precisions.
func unify(n, m Number) (Number, Number, Kind) {
	k := n.kind
	if m.kind > k {
		k = m.kind
	}
	prec := maxPrec(n, m)
	return n.to(k, prec), m.to(k, prec), k
}

func maxPrec(n, m Number) uint {
	p, q := n.Prec(), m.Prec()
	if p > q {
		return p
	}
	return q
}

// binop applies the operation for the unified kind of n and m. The result
// takes n's base. An exact result that could exceed MaxExactBits or a Real
// result that overflows is an *InternalError. additive tells whether the
// Integer operation grows its result by at most one bit.
func (n Number) binop(m Number, additive bool,
	fi func(z, x, y *big.Int) *big.Int,
	fq func(z, x, y *big.Rat) *big.Rat,
	ff func(z, x, y *big.Float) *big.Float,
) (Number, error) {
	x, y, k := unify(n, m)
	if !exactFits(x, y, k, additive) {
		return Number{}, &InternalError{Reason: "resource exhausted"}
	}
	r := Number{kind: k, base: n.base}
	switch k {
	case Integer:
		r.i = fi(new(big.Int), x.integer(), y.integer())
	case Rational:
		r.q = fq(new(big.Rat), x.q, y.q)
	case Real:
		r.f = ff(new(big.Float).SetPrec(x.f.Prec()), x.f, y.f)
		if r.f.IsInf() {
			return Number{}, &InternalError{Reason: "real overflow"}
		}
	default:
		panic("pnc: invalid number kind " + k.String())
	}
	return r, nil
}

// exactFits reports whether an operation on x and y of kind k stays within
// MaxExactBits.
func exactFits(x, y Number, k Kind, additive bool) bool {
	p, q := x.exactBits(), y.exactBits()
	switch {
	case k == Real:
		return true
	case k == Integer && additive:
		if q > p {
			p = q
		}
		return p+1 <= MaxExactBits
	default:
		return p+q <= MaxExactBits
	}
}

// exactBits is the number of bits in the payload of an Integer or Rational.
func (n Number) exactBits() int {
	switch n.kind {
	case Integer:
		return n.integer().BitLen()
	case Rational:
		return n.q.Num().BitLen() + n.q.Denom().BitLen()
	default:
		return 0
	}
}

// Add returns n + m.
func (n Number) Add(m Number) (Number, error) {
	return n.binop(m, true, (*big.Int).Add, (*big.Rat).Add, (*big.Float).Add)
}

// Sub returns n - m.
func (n Number) Sub(m Number) (Number, error) {
	return n.binop(m, true, (*big.Int).Sub, (*big.Rat).Sub, (*big.Float).Sub)
}

// Mul returns n × m.
func (n Number) Mul(m Number) (Number, error) {
	return n.binop(m, false, (*big.Int).Mul, (*big.Rat).Mul, (*big.Float).Mul)
}

// Quo returns n ÷ m. Integers are not closed under division, so the quotient
// of two Integers is an Integer only when it is whole and a Rational
// otherwise. A zero divisor is a *DivideByZeroError.
func (n Number) Quo(m Number) (Number, error) {
	if m.Sign() == 0 {
		return Number{}, &DivideByZeroError{Arg: 2}
	}
	x, y, k := unify(n, m)
	if !exactFits(x, y, k, false) {
		return Number{}, &InternalError{Reason: "resource exhausted"}
	}
	r := Number{kind: k, base: n.base}
	switch k {
	case Integer:
		q := new(big.Rat).SetFrac(x.integer(), y.integer())
		if q.IsInt() {
			r.i = new(big.Int).Set(q.Num())
		} else {
			r.kind = Rational
			r.q = q
		}
	case Rational:
		r.q = new(big.Rat).Quo(x.q, y.q)
	case Real:
		r.f = new(big.Float).SetPrec(x.f.Prec()).Quo(x.f, y.f)
		if r.f.IsInf() {
			return Number{}, &InternalError{Reason: "real overflow"}
		}
	default:
		panic("pnc: invalid number kind " + k.String())
	}
	return r, nil
}

// Rem returns the remainder of n ÷ m, truncated toward zero. Both operands
// must be whole-valued; otherwise the result is a *DomainError. A zero
// divisor is a *DivideByZeroError. The result has the greater of the
// operands' kinds.
func (n Number) Rem(m Number) (Number, error) {
	a, ok := n.whole()
	if !ok {
		return Number{}, &DomainError{Arg: 1, X: n, Want: "an integer"}
	}
	b, ok := m.whole()
	if !ok {
		return Number{}, &DomainError{Arg: 2, X: m, Want: "an integer"}
	}
	if b.Sign() == 0 {
		return Number{}, &DivideByZeroError{Arg: 2}
	}
	_, _, k := unify(n, m)
	r := Number{kind: Integer, base: n.base, i: new(big.Int).Rem(a, b)}
	return r.to(k, maxPrec(n, m)), nil
}

// Cmp compares n and m after promotion, returning -1, 0, or +1.
func (n Number) Cmp(m Number) int {
	x, y, k := unify(n, m)
	switch k {
	case Integer:
		return x.integer().Cmp(y.integer())
	case Rational:
		return x.q.Cmp(y.q)
	case Real:
		return x.f.Cmp(y.f)
	default:
		panic("pnc: invalid number kind " + k.String())
	}
}

// Neg returns -n.
func (n Number) Neg() Number {
	r := Number{kind: n.kind, base: n.base}
	switch n.kind {
	case Integer:
		r.i = new(big.Int).Neg(n.integer())
	case Rational:
		r.q = new(big.Rat).Neg(n.q)
	case Real:
		r.f = new(big.Float).Neg(n.f)
	default:
		panic("pnc: invalid number kind " + n.kind.String())
	}
	return r
}

// Abs returns |n|.
func (n Number) Abs() Number {
	if n.Sign() < 0 {
		return n.Neg()
	}
	return n
}

// Pow returns n raised to the power m. If neither operand is Real and m is
// whole, the result is exact; a negative exponent gives the reciprocal power.
// Otherwise the result is a Real, computed at prec bits unless either operand
// is already Real, in which case the greater operand precision is used. A
// negative base with a fractional exponent is a *DomainError, and zero to a
// negative power is a *DivideByZeroError.
func (n Number) Pow(m Number, prec uint) (Number, error) {
	_, _, k := unify(n, m)
	if k == Real {
		prec = maxPrec(n, m)
	}
	if m.Sign() == 0 {
		return Number{kind: Integer, base: n.base, i: big.NewInt(1)}.to(k, prec), nil
	}
	if n.Sign() == 0 {
		if m.Sign() < 0 {
			return Number{}, &DivideByZeroError{Arg: 1}
		}
		return n.to(k, prec), nil
	}
	e, whole := m.whole()
	if whole && k != Real {
		r, err := n.exactPow(e)
		if err != nil || r.kind >= k {
			return r, err
		}
		return r.to(k, prec), nil
	}
	x, y := n.to(Real, prec), m.to(Real, prec)
	neg := false
	if x.Sign() < 0 {
		if !whole {
			return Number{}, &DomainError{Arg: 1, X: n, Want: "a non-negative base for a fractional power"}
		}
		neg = e.Bit(0) == 1
		x = x.Neg()
	}
	z := bigfloat.Pow(new(big.Float).SetPrec(x.f.Prec()), x.f, y.f)
	if z.IsInf() {
		return Number{}, &InternalError{Reason: "real overflow"}
	}
	if neg {
		z.Neg(z)
	}
	return Number{kind: Real, base: n.base, f: z}, nil
}

// exactPow computes n^e for an Integer or Rational n.
func (n Number) exactPow(e *big.Int) (Number, error) {
	abs := new(big.Int).Abs(e)
	bits := int64(n.exactBits())
	if !abs.IsInt64() || abs.Int64() > MaxExactBits || bits*abs.Int64() > MaxExactBits {
		return Number{}, &InternalError{Reason: "resource exhausted"}
	}
	var p, q *big.Int
	switch n.kind {
	case Integer:
		p = new(big.Int).Exp(n.integer(), abs, nil)
		q = big.NewInt(1)
	case Rational:
		p = new(big.Int).Exp(n.q.Num(), abs, nil)
		q = new(big.Int).Exp(n.q.Denom(), abs, nil)
	default:
		panic("pnc: exact power of " + n.kind.String())
	}
	if e.Sign() < 0 {
		p, q = q, p
	}
	r := Number{kind: n.kind, base: n.base}
	v := new(big.Rat).SetFrac(p, q)
	if n.kind == Integer && v.IsInt() {
		r.i = new(big.Int).Set(v.Num())
	} else {
		r.kind = Rational
		r.q = v
	}
	return r, nil
}
