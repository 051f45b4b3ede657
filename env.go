package pnc

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
	"golang.org/x/exp/slices"
)

// Env is an evaluation environment: the functions and constants available to
// programs and the precision of Real results. An Env is immutable once
// created, so any number of goroutines may evaluate with it concurrently.
type Env struct {
	funcs  []*Builtin
	consts []constant
	prec   uint
}

type constant struct {
	name string
	val  Number
}

// EnvOption is an option used when creating an Env.
type EnvOption interface {
	envOption()
}

type (
	precopt  uint
	constopt constant
	funcsopt []*Builtin
)

func (precopt) envOption()  {}
func (constopt) envOption() {}
func (funcsopt) envOption() {}

// Prec sets the precision in bits of Real constants and of Reals created by
// inexact operations on exact numbers. Panics if bits is 0.
func Prec(bits uint) EnvOption {
	if bits == 0 {
		panic("pnc: zero precision")
	}
	return precopt(bits)
}

// Const defines a constant. The name must begin with #. A constant defined
// this way hides a default constant of the same name.
func Const(name string, val Number) EnvOption {
	if !strings.HasPrefix(name, "#") || len(name) < 2 {
		panic("pnc: constant name " + name + " must begin with #")
	}
	return constopt{name: name, val: val}
}

// Funcs adds functions. A function added this way hides a default function of
// the same name. Panics if any descriptor is malformed.
func Funcs(fns ...*Builtin) EnvOption {
	for _, f := range fns {
		f.check()
	}
	return funcsopt(fns)
}

// NewEnv creates an evaluation environment with the default functions and
// constants. If no precision is given, the default is DefaultPrec.
func NewEnv(opts ...EnvOption) *Env {
	env := Env{prec: DefaultPrec}
	// Apply the last precision first so that the default constants use it.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			env.prec = uint(p)
			break
		}
	}
	env.funcs = builtins()
	env.consts = defaultConsts(env.prec)
	return env.with(opts)
}

// With creates a copy of env with additional options applied. Functions and
// constants of the new Env hide those of env with the same names. A new
// precision applies to later operations but does not recompute existing
// constants.
func (env *Env) With(opts ...EnvOption) *Env {
	n := Env{prec: env.prec}
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	n.funcs = slices.Clone(env.funcs)
	n.consts = slices.Clone(env.consts)
	return n.with(opts)
}

// with prepends the functions and constants from opts, so that later options
// take priority over earlier ones and all of them over existing entries.
func (env Env) with(opts []EnvOption) *Env {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			// Already done. Do nothing.
		case constopt:
			env.consts = slices.Insert(env.consts, 0, constant(opt))
		case funcsopt:
			env.funcs = slices.Insert(env.funcs, 0, opt...)
		default:
			panic("pnc: unknown option type")
		}
	}
	return &env
}

func defaultConsts(prec uint) []constant {
	pi := bigfloat.Pi(new(big.Float).SetPrec(prec))
	e := bigfloat.Exp(new(big.Float).SetPrec(prec), new(big.Float).SetPrec(prec).SetInt64(1))
	return []constant{
		{"#true", boolnum(true)},
		{"#false", boolnum(false)},
		{"#pi", Number{kind: Real, base: 10, f: pi}},
		{"#e", Number{kind: Real, base: 10, f: e}},
	}
}

// Func returns the first registered function with the given name, or nil if
// there is none.
func (env *Env) Func(name string) *Builtin {
	k := slices.IndexFunc(env.funcs, func(b *Builtin) bool { return b.Name == name })
	if k < 0 {
		return nil
	}
	return env.funcs[k]
}

// Constant returns the value of a constant. The second result is false if
// there is no constant with the given name.
func (env *Env) Constant(name string) (Number, bool) {
	k := slices.IndexFunc(env.consts, func(c constant) bool { return c.name == name })
	if k < 0 {
		return Number{}, false
	}
	return env.consts[k].val, true
}

// Prec returns the precision of Reals created in the environment.
func (env *Env) Prec() uint {
	return env.prec
}
