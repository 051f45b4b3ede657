package pnc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
	"golang.org/x/exp/constraints"
)

// MaxListLen is the length of the longest list range will construct.
const MaxListLen = 1 << 20

// MaxFib is the largest argument fib accepts.
const MaxFib = 1 << 16

// builtins returns the default functions in registration order. Each call
// returns new descriptors.
func builtins() []*Builtin {
	return []*Builtin{
		Binary("+", Number.Add),
		Binary("-", Number.Sub),
		Binary("*", Number.Mul),
		Binary("/", Number.Quo),
		Binary("%", Number.Rem),
		Binary("=", compare(func(c int) bool { return c == 0 })),
		Binary("!=", compare(func(c int) bool { return c != 0 })),
		Binary("<", compare(func(c int) bool { return c < 0 })),
		Binary("<=", compare(func(c int) bool { return c <= 0 })),
		Binary(">", compare(func(c int) bool { return c > 0 })),
		Binary(">=", compare(func(c int) bool { return c >= 0 })),
		Unary("bool", func(x Number) (Number, error) { return boolnum(x.Truth()), nil }),
		Unary("fib", fib),
		{Name: "list", Arity: Variadic, Params: []Type{TypeAny}, Returns: TypeList, Fn: list},
		{Name: "len", Arity: 1, Params: []Type{TypeList}, Returns: TypeNumber, Fn: length},
		{Name: "sum", Arity: 1, Params: []Type{TypeList}, Returns: TypeNumber, Fn: sum},
		{Name: "range", Arity: 2, Params: []Type{TypeNumber, TypeNumber}, Returns: TypeList, Fn: numrange},
		{Name: "if", Arity: 3, Params: []Type{TypeNumber, TypeNumber, TypeNumber}, Returns: TypeNumber, Fn: cond},

		{Name: "^", Arity: 2, Params: []Type{TypeNumber, TypeNumber}, Returns: TypeNumber, Fn: pow},
		Unary("neg", func(x Number) (Number, error) { return x.Neg(), nil }),
		Unary("abs", func(x Number) (Number, error) { return x.Abs(), nil }),
		Binary("min", total(func(x, y Number) Number {
			if y.Cmp(x) < 0 {
				return y
			}
			return x
		})),
		Binary("max", total(func(x, y Number) Number {
			if y.Cmp(x) > 0 {
				return y
			}
			return x
		})),
		Unary("not", func(x Number) (Number, error) { return boolnum(!x.Truth()), nil }),
		{Name: "and", Arity: Variadic, Params: []Type{TypeNumber}, Returns: TypeNumber, Fn: and},
		{Name: "or", Arity: Variadic, Params: []Type{TypeNumber}, Returns: TypeNumber, Fn: or},
		transcendental("sqrt", sqrt),
		transcendental("exp", exp),
		transcendental("ln", ln),
		transcendental("log", log10),
	}
}

// bounded returns z as a T if lo <= z <= hi.
func bounded[T constraints.Signed](z *big.Int, lo, hi T) (T, bool) {
	if !z.IsInt64() {
		return 0, false
	}
	v := z.Int64()
	if v < int64(lo) || v > int64(hi) {
		return 0, false
	}
	return T(v), true
}

// fib computes the n'th term of 1, 1, 2, 3, 5, ....
func fib(x Number) (Number, error) {
	z, ok := x.whole()
	if !ok || z.Sign() < 0 {
		return Number{}, &DomainError{Arg: 1, X: x, Want: "a non-negative integer"}
	}
	n, ok := bounded(z, 0, MaxFib)
	if !ok {
		return Number{}, &InternalError{Reason: "resource exhausted"}
	}
	a, b := big.NewInt(1), big.NewInt(1)
	for i := 1; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return Number{kind: Integer, base: x.base, i: b}, nil
}

func list(env *Env, args []Value) (Value, error) {
	l := make([]Number, len(args))
	for i, v := range args {
		if v.typ != TypeNumber {
			return Value{}, &ListError{}
		}
		l[i] = v.num
	}
	return ListValue(l), nil
}

func length(env *Env, args []Value) (Value, error) {
	return NumberValue(NewInt64(int64(len(args[0].list)))), nil
}

// sum adds the elements of a list from left to right, so the result takes
// the first element's base. The sum of an empty list is 0.
func sum(env *Env, args []Value) (Value, error) {
	l := args[0].list
	if len(l) == 0 {
		return NumberValue(NewInt64(0)), nil
	}
	r := l[0]
	for _, x := range l[1:] {
		var err error
		r, err = r.Add(x)
		if err != nil {
			return Value{}, err
		}
	}
	return NumberValue(r), nil
}

// numrange lists the Integers in [start, stop) in the base of start.
func numrange(env *Env, args []Value) (Value, error) {
	x, y := args[0].num, args[1].num
	start, ok := x.whole()
	if !ok {
		return Value{}, &DomainError{Arg: 1, X: x, Want: "an integer"}
	}
	stop, ok := y.whole()
	if !ok {
		return Value{}, &DomainError{Arg: 2, X: y, Want: "an integer"}
	}
	count := new(big.Int).Sub(stop, start)
	if count.Sign() <= 0 {
		return ListValue(nil), nil
	}
	n, ok := bounded(count, 0, MaxListLen)
	if !ok {
		return Value{}, &InternalError{Reason: "resource exhausted"}
	}
	l := make([]Number, n)
	one := big.NewInt(1)
	k := new(big.Int).Set(start)
	for i := range l {
		l[i] = Number{kind: Integer, base: x.base, i: new(big.Int).Set(k)}
		k.Add(k, one)
	}
	return ListValue(l), nil
}

func cond(env *Env, args []Value) (Value, error) {
	if args[0].num.Truth() {
		return args[1], nil
	}
	return args[2], nil
}

func pow(env *Env, args []Value) (Value, error) {
	r, err := args[0].num.Pow(args[1].num, env.Prec())
	if err != nil {
		return Value{}, err
	}
	return NumberValue(r), nil
}

func and(env *Env, args []Value) (Value, error) {
	for _, v := range args {
		if !v.num.Truth() {
			return NumberValue(boolnum(false)), nil
		}
	}
	return NumberValue(boolnum(true)), nil
}

func or(env *Env, args []Value) (Value, error) {
	for _, v := range args {
		if v.num.Truth() {
			return NumberValue(boolnum(true)), nil
		}
	}
	return NumberValue(boolnum(false)), nil
}

// transcendental wraps a real function of one variable into a Builtin. f
// receives its argument rounded to the working precision, which is the
// greater of the Env's precision and the argument's, and a result variable at
// the same precision. It returns the result, which need not be out, and must
// not modify in. The result keeps the argument's base.
func transcendental(name string, f func(x Number, out, in *big.Float) (*big.Float, error)) *Builtin {
	return &Builtin{
		Name:    name,
		Arity:   1,
		Params:  []Type{TypeNumber},
		Returns: TypeNumber,
		Fn: func(env *Env, args []Value) (Value, error) {
			x := args[0].num
			prec := env.Prec()
			if p := x.Prec(); p > prec {
				prec = p
			}
			r, err := f(x, new(big.Float).SetPrec(prec), x.real(prec))
			if err != nil {
				return Value{}, err
			}
			if r.IsInf() {
				return Value{}, &InternalError{Reason: "real overflow"}
			}
			return NumberValue(Number{kind: Real, base: x.base, f: r}), nil
		},
	}
}

func sqrt(x Number, out, in *big.Float) (*big.Float, error) {
	if in.Sign() < 0 {
		return nil, &DomainError{Arg: 1, X: x, Want: "a non-negative number"}
	}
	return out.Sqrt(in), nil
}

func exp(x Number, out, in *big.Float) (*big.Float, error) {
	return bigfloat.Exp(out, in), nil
}

func ln(x Number, out, in *big.Float) (*big.Float, error) {
	if in.Sign() <= 0 {
		return nil, &DomainError{Arg: 1, X: x, Want: "a positive number"}
	}
	return bigfloat.Log(out, in), nil
}

func log10(x Number, out, in *big.Float) (*big.Float, error) {
	if in.Sign() <= 0 {
		return nil, &DomainError{Arg: 1, X: x, Want: "a positive number"}
	}
	r := bigfloat.Log(out, in)
	ten := new(big.Float).SetPrec(r.Prec()).SetInt64(10)
	ten = bigfloat.Log(new(big.Float).SetPrec(r.Prec()), ten)
	return r.Quo(r, ten), nil
}
