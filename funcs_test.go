package pnc

import (
	"math/big"
	"testing"
)

func TestBuiltinsWellFormed(t *testing.T) {
	want := []string{
		"+", "-", "*", "/", "%", "=", "!=", "<", "<=", ">", ">=",
		"bool", "fib", "list", "len", "sum", "range", "if",
		"^", "neg", "abs", "min", "max", "not", "and", "or",
		"sqrt", "exp", "ln", "log",
	}
	fns := builtins()
	if len(fns) != len(want) {
		t.Fatalf("wrong number of builtins: want %d, got %d", len(want), len(fns))
	}
	seen := make(map[string]bool)
	for i, f := range fns {
		f.check()
		if f.Name != want[i] {
			t.Errorf("builtin %d: want %q, got %q", i, want[i], f.Name)
		}
		if seen[f.Name] {
			t.Errorf("duplicate builtin %q", f.Name)
		}
		seen[f.Name] = true
	}
	// Each call makes new descriptors.
	if builtins()[0] == fns[0] {
		t.Errorf("builtins shares descriptors")
	}
}

func TestBuiltinSignatures(t *testing.T) {
	cases := []struct {
		name    string
		arity   int
		params  []Type
		returns Type
	}{
		{"+", 2, []Type{TypeNumber, TypeNumber}, TypeNumber},
		{"bool", 1, []Type{TypeNumber}, TypeNumber},
		{"fib", 1, []Type{TypeNumber}, TypeNumber},
		{"list", Variadic, []Type{TypeAny}, TypeList},
		{"len", 1, []Type{TypeList}, TypeNumber},
		{"sum", 1, []Type{TypeList}, TypeNumber},
		{"range", 2, []Type{TypeNumber, TypeNumber}, TypeList},
		{"if", 3, []Type{TypeNumber, TypeNumber, TypeNumber}, TypeNumber},
		{"and", Variadic, []Type{TypeNumber}, TypeNumber},
	}
	env := NewEnv()
	for _, c := range cases {
		f := env.Func(c.name)
		if f == nil {
			t.Errorf("no builtin %q", c.name)
			continue
		}
		if f.Arity != c.arity || f.Returns != c.returns || len(f.Params) != len(c.params) {
			t.Errorf("wrong signature for %q: %d %v -> %v", c.name, f.Arity, f.Params, f.Returns)
			continue
		}
		for i, p := range c.params {
			if f.Params[i] != p {
				t.Errorf("wrong parameter %d of %q: want %v, got %v", i+1, c.name, p, f.Params[i])
			}
		}
	}
}

func TestParamVariadic(t *testing.T) {
	b := &Builtin{Name: "v", Arity: Variadic, Params: []Type{TypeNumber}}
	for i := 0; i < 5; i++ {
		if b.param(i) != TypeNumber {
			t.Errorf("wrong type for parameter %d", i)
		}
	}
}

func TestUnaryBinary(t *testing.T) {
	double := Unary("double", func(x Number) (Number, error) { return x.Add(x) })
	r, err := double.Fn(nil, []Value{NumberValue(NewInt64(21))})
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "42" {
		t.Errorf("wrong double: %v", r)
	}
	quo := Binary("quo", Number.Quo)
	_, err = quo.Fn(nil, []Value{NumberValue(NewInt64(1)), NumberValue(NewInt64(0))})
	if KindOf(err) != DivideByZeroFault {
		t.Errorf("wrong error from quo: %v", err)
	}
}

func TestFibSequence(t *testing.T) {
	want := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, w := range want {
		r, err := fib(NewInt64(int64(i)))
		if err != nil {
			t.Fatal(err)
		}
		if r.Int().Int64() != w {
			t.Errorf("fib(%d): want %d, got %v", i, w, r)
		}
	}
	r, err := fib(NewFloat(big.NewFloat(5)))
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != Integer || r.String() != "8" {
		t.Errorf("fib(5.): want Integer 8, got %v %v", r.Kind(), r)
	}
}

func TestBounded(t *testing.T) {
	cases := []struct {
		z    *big.Int
		ok   bool
		want int
	}{
		{big.NewInt(0), true, 0},
		{big.NewInt(10), true, 10},
		{big.NewInt(11), false, 0},
		{big.NewInt(-1), false, 0},
		{new(big.Int).Lsh(big.NewInt(1), 100), false, 0},
	}
	for _, c := range cases {
		v, ok := bounded(c.z, 0, 10)
		if ok != c.ok || v != c.want {
			t.Errorf("bounded(%v): want %d, %t; got %d, %t", c.z, c.want, c.ok, v, ok)
		}
	}
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		t    Type
		want string
	}{
		{TypeNone, "none"},
		{TypeNumber, "num"},
		{TypeList, "list of num"},
		{TypeAny, "any"},
		{Type(9), "Type(9)"},
	}
	for _, c := range cases {
		if got := c.t.String(); got != c.want {
			t.Errorf("wrong string for %d: want %q, got %q", c.t, c.want, got)
		}
	}
}

func TestFaultKindString(t *testing.T) {
	cases := []struct {
		k    FaultKind
		want string
	}{
		{NoFault, "NoFault"},
		{ParseFault, "ParseFault"},
		{NameFault, "NameFault"},
		{ValueFault, "ValueFault"},
		{DivideByZeroFault, "DivideByZeroFault"},
		{InternalFault, "InternalFault"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("wrong string: want %q, got %q", c.want, got)
		}
	}
}
