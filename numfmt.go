package pnc

import (
	"math/big"
	"strconv"
	"strings"
)

// ParseNumber parses a number literal. Literals have an optional sign, an
// optional base prefix 0b, 0o, or 0x, and digits in that base containing at
// most one '.' (a Real) or one '/' (a Rational), but not both. Reals are
// rounded to prec bits; if prec is 0, DefaultPrec is used.
//
// On failure, the result is the zero Number and a *LiteralError.
func ParseNumber(s string, prec uint) (Number, error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	body := s
	neg := false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	base := 10
	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
		if base != 10 {
			body = body[2:]
		}
	}
	dots := strings.Count(body, ".")
	slashes := strings.Count(body, "/")
	switch {
	case dots > 0 && slashes > 0:
		return Number{}, &LiteralError{Text: s, Reason: "both '.' and '/'"}
	case dots > 1:
		return Number{}, &LiteralError{Text: s, Reason: "more than one '.'"}
	case slashes > 1:
		return Number{}, &LiteralError{Text: s, Reason: "more than one '/'"}
	}
	if !digitsIn(body, base) {
		return Number{}, &LiteralError{Text: s, Reason: "invalid base " + strconv.Itoa(base) + " digits"}
	}

	var n Number
	switch {
	case slashes == 1:
		k := strings.IndexByte(body, '/')
		p, ok := new(big.Int).SetString(body[:k], base)
		if !ok {
			return Number{}, &LiteralError{Text: s, Reason: "invalid numerator"}
		}
		q, ok := new(big.Int).SetString(body[k+1:], base)
		if !ok {
			return Number{}, &LiteralError{Text: s, Reason: "invalid denominator"}
		}
		if q.Sign() == 0 {
			return Number{}, &LiteralError{Text: s, Reason: "zero denominator"}
		}
		r := new(big.Rat).SetFrac(p, q)
		if neg {
			r.Neg(r)
		}
		n = Number{kind: Rational, q: r}
	case dots == 1:
		f, _, err := new(big.Float).SetPrec(prec).Parse(body, base)
		if err != nil {
			return Number{}, &LiteralError{Text: s, Reason: err.Error()}
		}
		if neg {
			f.Neg(f)
		}
		n = Number{kind: Real, f: f}
	default:
		z, ok := new(big.Int).SetString(body, base)
		if !ok {
			return Number{}, &LiteralError{Text: s, Reason: "invalid integer"}
		}
		if neg {
			z.Neg(z)
		}
		n = Number{kind: Integer, i: z}
	}
	n.base = uint8(base)
	return n, nil
}

// digitsIn reports whether s is made of digits valid in base, apart from
// one '.' or '/', with at least one digit on each side of a '/'.
func digitsIn(s string, base int) bool {
	for _, part := range strings.Split(s, "/") {
		n := 0
		for i := 0; i < len(part); i++ {
			if part[i] == '.' {
				continue
			}
			if digitValue(part[i]) >= base {
				return false
			}
			n++
		}
		if n == 0 {
			return false
		}
	}
	return true
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 255
	}
}

// realText renders a finite float in the given base as a plain positional
// numeral with a radix point and no exponent.
func realText(f *big.Float, base int) string {
	var b strings.Builder
	if f.Sign() < 0 {
		b.WriteByte('-')
	}
	digits, exp := realDigits(f, base)
	switch {
	case exp > 0:
		if exp > len(digits) {
			digits += strings.Repeat("0", exp-len(digits))
		}
		b.WriteString(digits[:exp])
		b.WriteByte('.')
		b.WriteString(digits[exp:])
	case exp == 0:
		b.WriteString("0.")
		b.WriteString(digits)
	default:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp))
		b.WriteString(digits)
	}
	return b.String()
}

// realDigits returns the significant digits of |f| in base and the exponent
// e such that |f| = 0.digits × base^e. The digits have no trailing zeros.
// Zero has no digits and exponent 0.
func realDigits(f *big.Float, base int) (string, int) {
	if f.Sign() == 0 {
		return "", 0
	}
	if base == 10 {
		// Shortest decimal that reads back to the same value at f's precision.
		s := new(big.Float).Abs(f).Text('e', -1)
		k := strings.IndexByte(s, 'e')
		e, err := strconv.Atoi(s[k+1:])
		if err != nil {
			panic("pnc: bad exponent in " + s)
		}
		digits := strings.Replace(s[:k], ".", "", 1)
		return strings.TrimRight(digits, "0"), e + 1
	}
	// Binary floats have terminating expansions in power-of-two bases, so
	// this is exact.
	r, _ := f.Rat(nil)
	r.Abs(r)
	ip := new(big.Int).Quo(r.Num(), r.Denom())
	frac := new(big.Rat).Sub(r, new(big.Rat).SetInt(ip))
	scale := new(big.Rat).SetInt64(int64(base))
	var fd strings.Builder
	d := new(big.Int)
	for frac.Sign() != 0 {
		frac.Mul(frac, scale)
		d.Quo(frac.Num(), frac.Denom())
		fd.WriteString(d.Text(base))
		frac.Sub(frac, new(big.Rat).SetInt(d))
	}
	if ip.Sign() != 0 {
		id := ip.Text(base)
		return strings.TrimRight(id+fd.String(), "0"), len(id)
	}
	fs := fd.String()
	lead := len(fs) - len(strings.TrimLeft(fs, "0"))
	return strings.TrimRight(fs[lead:], "0"), -lead
}
