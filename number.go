package pnc

import (
	"math/big"
	"strings"
)

// Kind is the variant of a Number. The order of kinds is the promotion
// order: an operation on two Numbers produces the greater of their kinds.
type Kind uint8

const (
	// Integer is an arbitrary-precision integer.
	Integer Kind = iota
	// Rational is an exact fraction in lowest terms.
	Rational
	// Real is an arbitrary-precision binary floating-point number.
	Real
)

//go:generate stringer -type=Kind

// DefaultPrec is the precision in bits of Real values when none is given.
const DefaultPrec = 256

// Number is an immutable Integer, Rational, or Real with a display base. The
// zero value is the Integer 0 in base 10.
//
// Exactly one of the payload fields is valid, as selected by kind. Methods on
// Number never modify their receivers or arguments.
type Number struct {
	kind Kind
	base uint8
	i    *big.Int
	q    *big.Rat
	f    *big.Float
}

// NewInt creates an Integer Number in base 10. x is copied.
func NewInt(x *big.Int) Number {
	return Number{kind: Integer, base: 10, i: new(big.Int).Set(x)}
}

// NewInt64 creates an Integer Number in base 10.
func NewInt64(x int64) Number {
	return Number{kind: Integer, base: 10, i: big.NewInt(x)}
}

// NewRat creates a Rational Number in base 10. x is copied. big.Rat keeps
// its value normalized, so the result is already canonical.
func NewRat(x *big.Rat) Number {
	return Number{kind: Rational, base: 10, q: new(big.Rat).Set(x)}
}

// NewFloat creates a Real Number in base 10. x is copied at its own
// precision. Panics if x is infinite.
func NewFloat(x *big.Float) Number {
	if x.IsInf() {
		panic("pnc: infinite Real")
	}
	return Number{kind: Real, base: 10, f: new(big.Float).Copy(x)}
}

// boolnum converts a truth value to a Number.
func boolnum(b bool) Number {
	if b {
		return NewInt64(1)
	}
	return NewInt64(0)
}

// InBase returns n with a different display base. Panics if base is not one
// of 2, 8, 10, or 16.
func (n Number) InBase(base int) Number {
	switch base {
	case 2, 8, 10, 16:
	default:
		panic("pnc: invalid base")
	}
	n.base = uint8(base)
	return n
}

// Kind returns the variant of n.
func (n Number) Kind() Kind {
	return n.kind
}

// Base returns the display base of n.
func (n Number) Base() int {
	if n.base == 0 {
		return 10
	}
	return int(n.base)
}

// Int returns a copy of the value of an Integer. Panics if n is not an
// Integer.
func (n Number) Int() *big.Int {
	if n.kind != Integer {
		panic("pnc: Int of " + n.kind.String())
	}
	if n.i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.i)
}

// Rat returns a copy of the value of a Rational. Panics if n is not a
// Rational.
func (n Number) Rat() *big.Rat {
	if n.kind != Rational {
		panic("pnc: Rat of " + n.kind.String())
	}
	return new(big.Rat).Set(n.q)
}

// Float returns a copy of the value of a Real. Panics if n is not a Real.
func (n Number) Float() *big.Float {
	if n.kind != Real {
		panic("pnc: Float of " + n.kind.String())
	}
	return new(big.Float).Copy(n.f)
}

// Prec returns the precision of a Real, or 0 for exact kinds.
func (n Number) Prec() uint {
	if n.kind != Real {
		return 0
	}
	return n.f.Prec()
}

// integer returns the Integer payload without copying.
func (n Number) integer() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// Sign returns -1, 0, or +1 according to the sign of n.
func (n Number) Sign() int {
	switch n.kind {
	case Integer:
		return n.integer().Sign()
	case Rational:
		return n.q.Sign()
	case Real:
		return n.f.Sign()
	default:
		panic("pnc: invalid number kind " + n.kind.String())
	}
}

// Truth reports whether n is nonzero.
func (n Number) Truth() bool {
	return n.Sign() != 0
}

// IsWhole reports whether n has an integer value, regardless of its kind.
func (n Number) IsWhole() bool {
	switch n.kind {
	case Integer:
		return true
	case Rational:
		return n.q.IsInt()
	case Real:
		return n.f.IsInt()
	default:
		panic("pnc: invalid number kind " + n.kind.String())
	}
}

// whole returns the integer value of a whole n. The second result is false if
// n is not whole.
func (n Number) whole() (*big.Int, bool) {
	switch n.kind {
	case Integer:
		return n.integer(), true
	case Rational:
		if !n.q.IsInt() {
			return nil, false
		}
		return n.q.Num(), true
	case Real:
		if !n.f.IsInt() {
			return nil, false
		}
		z, _ := n.f.Int(nil)
		return z, true
	default:
		panic("pnc: invalid number kind " + n.kind.String())
	}
}

// Equal reports whether n and m have the same kind and value. Unlike Cmp, it
// does not promote, so the Integer 1 and the Rational 1/1 are not Equal. The
// display base is ignored.
func (n Number) Equal(m Number) bool {
	if n.kind != m.kind {
		return false
	}
	switch n.kind {
	case Integer:
		return n.integer().Cmp(m.integer()) == 0
	case Rational:
		return n.q.Cmp(m.q) == 0
	case Real:
		return n.f.Cmp(m.f) == 0
	default:
		panic("pnc: invalid number kind " + n.kind.String())
	}
}

// String renders n with its base prefix, so that the result parses back to
// an Equal Number.
func (n Number) String() string {
	var b strings.Builder
	txt := n.Text()
	if strings.HasPrefix(txt, "-") {
		b.WriteByte('-')
		txt = txt[1:]
	}
	b.WriteString(basePrefix(n.Base()))
	b.WriteString(txt)
	return b.String()
}

// Text renders n in its base without a base prefix.
func (n Number) Text() string {
	base := n.Base()
	var s string
	switch n.kind {
	case Integer:
		s = n.integer().Text(base)
	case Rational:
		s = n.q.Num().Text(base) + "/" + n.q.Denom().Text(base)
	case Real:
		s = realText(n.f, base)
	default:
		panic("pnc: invalid number kind " + n.kind.String())
	}
	if base == 16 {
		s = strings.ToUpper(s)
	}
	return s
}

func basePrefix(base int) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		return "0x"
	default:
		return ""
	}
}
