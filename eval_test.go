package pnc_test

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/pnc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add", "(+ 2 3)", "5"},
		{"add-rat", "(+ 1/2 1/3)", "5/6"},
		{"sum-range", "(sum (range 1 4))", "6"},
		{"len-list", "(len (list 1 2 3))", "3"},
		{"sub", "(- 10 4)", "6"},
		{"mul-hex", "(* 0x10 2)", "0x20"},
		{"div-exact", "(/ 6 3)", "2"},
		{"div-frac", "(/ 6 4)", "3/2"},
		{"rem", "(% 7 3)", "1"},
		{"nested", "(+ (* 2 3) (- 4 (/ 5 5)))", "9"},
		{"promote-real", "(+ 1/2 0.25)", "0.75"},
		{"left-base", "(+ 0b1 3)", "0b100"},
		{"eq", "(= 1 1/1)", "1"},
		{"eq-base", "(= 0x1 1)", "1"},
		{"ne", "(!= 1 2)", "1"},
		{"lt", "(< 1 2)", "1"},
		{"le", "(<= 2 2)", "1"},
		{"gt", "(> 1 2)", "0"},
		{"ge", "(>= 1 2)", "0"},
		{"cmp-hex", "(< 0x10 0x20)", "1"},
		{"bool-true", "(bool 5)", "1"},
		{"bool-false", "(bool 0)", "0"},
		{"bool-rat", "(bool 0/3)", "0"},
		{"fib-0", "(fib 0)", "1"},
		{"fib-1", "(fib 1)", "1"},
		{"fib-10", "(fib 10)", "89"},
		{"fib-hex", "(fib 0x10)", "0x63D"},
		{"if-true", "(if 1 2 3)", "2"},
		{"if-false", "(if 0 2 3)", "3"},
		{"if-rat", "(if 1/2 2 3)", "2"},
		{"sum-empty", "(sum (list))", "0"},
		{"sum-real", "(sum (list 1/2 0.5))", "1."},
		{"sum-base", "(sum (list 0x1 2 3))", "0x6"},
		{"len-empty", "(len (list))", "0"},
		{"range-empty", "(len (range 5 1))", "0"},
		{"range-neg", "(sum (range -3 0))", "-6"},
		{"range-whole-rat", "(len (range 4/2 5))", "3"},
		{"pow", "(^ 2 10)", "1024"},
		{"pow-neg", "(^ 2 -2)", "1/4"},
		{"neg", "(neg 5)", "-5"},
		{"abs", "(abs -5)", "5"},
		{"min", "(min 3 1/2)", "1/2"},
		{"max", "(max 3 1/2)", "3"},
		{"not", "(not 0)", "1"},
		{"and", "(and 1 2)", "1"},
		{"and-false", "(and 1 0)", "0"},
		{"and-empty", "(and)", "1"},
		{"or", "(or 0 3)", "1"},
		{"or-empty", "(or)", "0"},
		{"sqrt", "(sqrt 4)", "2."},
		{"sqrt-hex", "(sqrt 0x10)", "0x4."},
		{"true", "#true", "1"},
		{"false", "#false", "0"},
		{"literal", "1/2", "1/2"},
		{"literal-hex", "0x1a", "0x1A"},
		{"literal-real", "1.25", "1.25"},
		{"paren-atom", "(+ 1 (+ 0 0))", "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := pnc.EvalString(c.src)
			require.NoError(t, err, "evaluating %q", c.src)
			assert.Equal(t, pnc.TypeNumber, v.Type())
			assert.Equal(t, c.want, v.String(), "evaluating %q", c.src)
		})
	}
}

func TestEvalFaults(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind pnc.FaultKind
		msg  string
	}{
		{"div-zero", "(/ 1 0)", pnc.DivideByZeroFault, "argument #2 of function '/' cannot be 0"},
		{"rem-zero", "(% 1 0)", pnc.DivideByZeroFault, "argument #2 of function '%' cannot be 0"},
		{"pow-zero", "(^ 0 -1)", pnc.DivideByZeroFault, "argument #1 of function '^' cannot be 0"},
		{"nested-list", "(list (list 1))", pnc.ValueFault, "a list cannot contain another list"},
		{"arity", "(+ 1 2 3)", pnc.ValueFault, "function '+' got 3 arguments, expected 2"},
		{"arity-first", "(+ x 2 3)", pnc.ValueFault, "function '+' got 3 arguments, expected 2"},
		{"arity-few", "(if 1 2)", pnc.ValueFault, "function 'if' got 2 arguments, expected 3"},
		{"undef-func", "(foo 1)", pnc.NameFault, "undefined function 'foo'"},
		{"list-head", "((+ 1 2) 3)", pnc.NameFault, "undefined function '(+ 1 2)'"},
		{"ident", "x", pnc.NameFault, "'x' is unknown"},
		{"ident-numeric", "1.2.3", pnc.NameFault, "'1.2.3' is unknown"},
		{"ident-arg", "(+ 1 y)", pnc.NameFault, "'y' is unknown"},
		{"undef-const", "#nope", pnc.NameFault, "undefined constant '#nope'"},
		{"eager", "(if 1 2 #nope)", pnc.NameFault, "undefined constant '#nope'"},
		{"empty-list", "()", pnc.ParseFault, "unrecognized expression"},
		{"unbalanced", "(+ 1 2", pnc.ParseFault, "unbalanced parentheses"},
		{"bare", "+ 1 2", pnc.ParseFault, "unrecognized expression"},
		{"type-list", "(len 1)", pnc.ValueFault, "argument #1 of function 'len' is type num, expected list of num"},
		{"type-num", "(+ (list 1) 2)", pnc.ValueFault, "argument #1 of function '+' is type list of num, expected num"},
		{"type-second", "(+ 2 (list 1))", pnc.ValueFault, "argument #2 of function '+' is type list of num, expected num"},
		{"type-variadic", "(and 1 (list))", pnc.ValueFault, "argument #2 of function 'and' is type list of num, expected num"},
		{"rem-frac", "(% 7.5 2)", pnc.ValueFault, "argument #1 of function '%' is 7.5, expected an integer"},
		{"range-frac", "(range 1/2 3)", pnc.ValueFault, "argument #1 of function 'range' is 1/2, expected an integer"},
		{"range-big", "(range 0 2000000)", pnc.InternalFault, "resource exhausted"},
		{"fib-neg", "(fib -1)", pnc.ValueFault, "argument #1 of function 'fib' is -1, expected a non-negative integer"},
		{"fib-frac", "(fib 1/2)", pnc.ValueFault, "argument #1 of function 'fib' is 1/2, expected a non-negative integer"},
		{"fib-big", "(fib 100000)", pnc.InternalFault, "resource exhausted"},
		{"sqrt-neg", "(sqrt -1)", pnc.ValueFault, "argument #1 of function 'sqrt' is -1, expected a non-negative number"},
		{"ln-zero", "(ln 0)", pnc.ValueFault, "argument #1 of function 'ln' is 0, expected a positive number"},
		{"log-neg", "(log -1/2)", pnc.ValueFault, "argument #1 of function 'log' is -1/2, expected a positive number"},
		{"pow-neg-frac", "(^ -8 1/3)", pnc.ValueFault, "argument #1 of function '^' is -8, expected a non-negative base for a fractional power"},
		{"pow-huge", "(^ 2 100000000)", pnc.InternalFault, "resource exhausted"},
		{"mul-huge", "(* (^ 2 8388608) (^ 2 8388608))", pnc.InternalFault, "resource exhausted"},
		{"real-overflow", "(* (exp 1000000000) (exp 1000000000))", pnc.InternalFault, "real overflow"},
		{"exp-overflow", "(exp 2000000000)", pnc.InternalFault, "real overflow"},
		{"pow-overflow", "(^ 10 1000000000.)", pnc.InternalFault, "real overflow"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := pnc.EvalString(c.src)
			require.Error(t, err, "evaluating %q gave %v", c.src, v)
			assert.Equal(t, pnc.Value{}, v)
			assert.Equal(t, c.kind, pnc.KindOf(err))
			assert.EqualError(t, err, c.msg)
		})
	}
}

func TestEvalEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "\n"} {
		v, err := pnc.EvalString(src)
		require.NoError(t, err)
		assert.Equal(t, pnc.TypeNone, v.Type())
		assert.Equal(t, "", v.String())
	}
}

func TestEvalList(t *testing.T) {
	v, err := pnc.EvalString("(range 0x1 4)")
	require.NoError(t, err)
	assert.Equal(t, pnc.TypeList, v.Type())
	assert.Equal(t, "(...)", v.String())
	assert.Equal(t, 3, v.Len())
	l, ok := v.List()
	require.True(t, ok)
	var got []string
	for _, n := range l {
		got = append(got, n.String())
	}
	assert.Equal(t, []string{"0x1", "0x2", "0x3"}, got)
	_, ok = v.Number()
	assert.False(t, ok)
}

func TestEvalAutoWrap(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"+ 1 2", "3"},
		{"(+ 1 2)", "3"},
		{"sum (range 1 4)", "6"},
		{"7", "7"},
		{"#true", "1"},
	}
	for _, c := range cases {
		v, err := pnc.EvalString(c.src, pnc.AutoWrap())
		require.NoError(t, err, "evaluating %q", c.src)
		assert.Equal(t, c.want, v.String(), "evaluating %q", c.src)
	}
}

func TestEvalReal(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"#pi", math.Pi},
		{"#e", math.E},
		{"(exp 1)", math.E},
		{"(ln #e)", 1},
		{"(log 1000)", 3},
		{"(sqrt 2)", math.Sqrt2},
		{"(^ 2 0.5)", math.Sqrt2},
		{"(^ 4 1/2)", 2},
		{"(/ 1. 3)", 1.0 / 3},
		{"(* #pi 2)", 2 * math.Pi},
		{"(^ 2. 1)", 2},
		{"(^ 7 1.)", 7},
		{"(^ 2.5 1)", 2.5},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			v, err := pnc.EvalString(c.src)
			require.NoError(t, err)
			n, ok := v.Number()
			require.True(t, ok)
			require.Equal(t, pnc.Real, n.Kind())
			f, _ := n.Float().Float64()
			assert.InDelta(t, c.want, f, 1e-12)
		})
	}
}

func TestEnvPrec(t *testing.T) {
	env := pnc.NewEnv(pnc.Prec(64))
	assert.Equal(t, uint(64), env.Prec())
	for _, src := range []string{"#pi", "#e", "(/ 1. 3)", "(sqrt 2)", "(+ 1 0.5)"} {
		v, err := env.EvalString(src)
		require.NoError(t, err, "evaluating %q", src)
		n, _ := v.Number()
		assert.Equal(t, uint(64), n.Prec(), "precision of %q", src)
	}
	// The last precision wins.
	env = pnc.NewEnv(pnc.Prec(32), pnc.Prec(100))
	assert.Equal(t, uint(100), env.Prec())
	assert.Equal(t, uint(pnc.DefaultPrec), pnc.NewEnv().Prec())
}

func TestEnvConst(t *testing.T) {
	env := pnc.NewEnv(pnc.Const("#answer", pnc.NewInt64(42)), pnc.Const("#true", pnc.NewInt64(2)))
	v, err := env.EvalString("(+ #answer #true)")
	require.NoError(t, err)
	assert.Equal(t, "44", v.String())
	n, ok := env.Constant("#false")
	require.True(t, ok)
	assert.Equal(t, "0", n.String())
	_, ok = env.Constant("#answer!")
	assert.False(t, ok)

	// The default environment is unaffected.
	_, err = pnc.EvalString("#answer")
	assert.Equal(t, pnc.NameFault, pnc.KindOf(err))
}

func TestEnvFuncs(t *testing.T) {
	sub := pnc.Binary("+", pnc.Number.Sub)
	count := &pnc.Builtin{
		Name:    "count",
		Arity:   pnc.Variadic,
		Params:  []pnc.Type{pnc.TypeAny},
		Returns: pnc.TypeNumber,
		Fn: func(env *pnc.Env, args []pnc.Value) (pnc.Value, error) {
			return pnc.NumberValue(pnc.NewInt64(int64(len(args)))), nil
		},
	}
	env := pnc.NewEnv(pnc.Funcs(sub, count))
	cases := []struct {
		src  string
		want string
	}{
		{"(+ 5 2)", "3"},
		{"(count)", "0"},
		{"(count 1 (list 1 2) 3)", "3"},
		{"(* 5 2)", "10"},
	}
	for _, c := range cases {
		v, err := env.EvalString(c.src)
		require.NoError(t, err, "evaluating %q", c.src)
		assert.Equal(t, c.want, v.String(), "evaluating %q", c.src)
	}
	assert.Same(t, sub, env.Func("+"))
	assert.Nil(t, env.Func("nope"))
}

func TestEnvFuncsBadReturn(t *testing.T) {
	liar := &pnc.Builtin{
		Name:    "liar",
		Arity:   0,
		Params:  []pnc.Type{},
		Returns: pnc.TypeNumber,
		Fn: func(env *pnc.Env, args []pnc.Value) (pnc.Value, error) {
			return pnc.ListValue(nil), nil
		},
	}
	_, err := pnc.NewEnv(pnc.Funcs(liar)).EvalString("(liar)")
	assert.Equal(t, pnc.InternalFault, pnc.KindOf(err))
}

func TestEnvWith(t *testing.T) {
	base := pnc.NewEnv(pnc.Const("#x", pnc.NewInt64(1)))
	derived := base.With(pnc.Const("#x", pnc.NewInt64(2)), pnc.Prec(80))
	v, err := base.EvalString("#x")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
	v, err = derived.EvalString("#x")
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
	assert.Equal(t, uint(pnc.DefaultPrec), base.Prec())
	assert.Equal(t, uint(80), derived.Prec())
}

func TestEnvOptionPanics(t *testing.T) {
	assert.Panics(t, func() { pnc.Prec(0) })
	assert.Panics(t, func() { pnc.Const("x", pnc.NewInt64(1)) })
	assert.Panics(t, func() { pnc.Const("#", pnc.NewInt64(1)) })
	assert.Panics(t, func() { pnc.Funcs(nil) })
	assert.Panics(t, func() { pnc.Funcs(&pnc.Builtin{Name: "f"}) })
	assert.Panics(t, func() {
		pnc.Funcs(&pnc.Builtin{
			Name:   "f",
			Arity:  2,
			Params: []pnc.Type{pnc.TypeNumber},
			Fn:     func(*pnc.Env, []pnc.Value) (pnc.Value, error) { return pnc.Value{}, nil },
		})
	})
}

func TestCompile(t *testing.T) {
	env := pnc.NewEnv()
	n, err := pnc.Parse("(+ 0x1a (* 4/8 #pi))")
	require.NoError(t, err)
	e, err := env.Compile(n)
	require.NoError(t, err)
	assert.Equal(t, "(+ 0x1A (* 1/2 #pi))", e.String())
	// Compiled expressions can be evaluated repeatedly.
	a, err := env.Eval(e)
	require.NoError(t, err)
	b, err := env.Eval(e)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	e, err = env.Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, e)
	v, err := env.Eval(e)
	require.NoError(t, err)
	assert.Equal(t, pnc.TypeNone, v.Type())
}

func TestEvalConcurrent(t *testing.T) {
	env := pnc.NewEnv()
	n, err := pnc.Parse("(sum (range 0 1000))")
	require.NoError(t, err)
	e, err := env.Compile(n)
	require.NoError(t, err)
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := env.Eval(e)
			if err != nil {
				results[i] = err.Error()
				return
			}
			results[i] = v.String()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "499500", r)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, pnc.NoFault, pnc.KindOf(nil))
	assert.Equal(t, pnc.NoFault, pnc.KindOf(errors.New("not a fault")))
	_, err := pnc.EvalString("(/ 1 0)")
	wrapped := fmt.Errorf("evaluating: %w", err)
	assert.Equal(t, pnc.DivideByZeroFault, pnc.KindOf(wrapped))
	var dz *pnc.DivideByZeroError
	require.ErrorAs(t, wrapped, &dz)
	assert.Equal(t, "/", dz.Func)
	assert.Equal(t, 2, dz.Arg)
}

func TestValueNumberAccessors(t *testing.T) {
	v := pnc.NumberValue(pnc.NewRat(big.NewRat(6, 4)))
	n, ok := v.Number()
	require.True(t, ok)
	assert.Equal(t, "3/2", n.String())
	_, ok = v.List()
	assert.False(t, ok)
	assert.Equal(t, 0, v.Len())
}

func BenchmarkEval(b *testing.B) {
	b.Run("arith", func(b *testing.B) {
		b.ReportAllocs()
		env := pnc.NewEnv()
		n, err := pnc.Parse("(+ (* 2 3) (/ 7 2) 0.5)", pnc.AutoWrap())
		if err != nil {
			b.Fatal(err)
		}
		e, err := env.Compile(n)
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			env.Eval(e)
		}
	})
	b.Run("range", func(b *testing.B) {
		b.ReportAllocs()
		env := pnc.NewEnv()
		n, err := pnc.Parse("(sum (range 0 1000))")
		if err != nil {
			b.Fatal(err)
		}
		e, err := env.Compile(n)
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			env.Eval(e)
		}
	})
}
