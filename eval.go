package pnc

import "strings"

// Eval evaluates an expression compiled by env. A nil expression evaluates to
// nothing. If an error occurs, e.g. an undefined constant or an argument
// outside a function's domain, the result is the zero Value and the error is
// a Fault describing the first problem encountered.
func (env *Env) Eval(e *Expr) (Value, error) {
	if e == nil {
		return Value{}, nil
	}
	return e.eval(env)
}

func (e *Expr) eval(env *Env) (Value, error) {
	switch e.kind {
	case exprNum:
		return NumberValue(e.num), nil
	case exprIdent:
		if !strings.HasPrefix(e.name, "#") {
			return Value{}, &NameError{Name: e.name, Space: Identifier}
		}
		v, ok := env.Constant(e.name)
		if !ok {
			return Value{}, &NameError{Name: e.name, Space: Constant}
		}
		return NumberValue(v), nil
	case exprCall:
		return e.call(env)
	default:
		panic("pnc: invalid expression kind")
	}
}

// call checks the arity of a call, evaluates its arguments from left to
// right, and applies the function.
func (e *Expr) call(env *Env) (Value, error) {
	f := e.fn
	if f.Arity != Variadic && len(e.args) != f.Arity {
		return Value{}, &CallError{Func: f.Name, Got: len(e.args), Want: f.Arity}
	}
	args := make([]Value, len(e.args))
	for i, a := range e.args {
		v, err := a.eval(env)
		if err != nil {
			return Value{}, err
		}
		if want := f.param(i); !want.accepts(v.typ) {
			return Value{}, &ArgTypeError{Func: f.Name, Arg: i + 1, Got: v.typ, Want: want}
		}
		args[i] = v
	}
	r, err := f.Fn(env, args)
	if err != nil {
		if n, ok := err.(funcNamer); ok {
			n.nameFunc(f.Name)
		}
		return Value{}, err
	}
	if r.typ != f.Returns && f.Returns != TypeAny {
		return Value{}, &InternalError{Reason: "function '" + f.Name + "' returned " + r.typ.String() + ", declared " + f.Returns.String()}
	}
	return r, nil
}

// EvalString parses, compiles, and evaluates a program with env.
func (env *Env) EvalString(src string, opts ...ParseOption) (Value, error) {
	n, err := Parse(src, opts...)
	if err != nil {
		return Value{}, err
	}
	e, err := env.Compile(n)
	if err != nil {
		return Value{}, err
	}
	return env.Eval(e)
}

var defaultEnv = NewEnv()

// EvalString is a shortcut to parse and evaluate a program using the default
// functions and constants.
func EvalString(src string, opts ...ParseOption) (Value, error) {
	return defaultEnv.EvalString(src, opts...)
}
