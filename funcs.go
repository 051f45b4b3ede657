package pnc

import "strconv"

// Variadic is the arity of a builtin that accepts any number of arguments,
// including none.
const Variadic = -1

// Builtin describes a function available to programs.
type Builtin struct {
	// Name is the name by which programs call the function, e.g. "+".
	Name string
	// Arity is the number of parameters, or Variadic.
	Arity int
	// Params is the type of each parameter. For a variadic function, Params
	// has one element, which is the type of every argument.
	Params []Type
	// Returns is the type of the function's result.
	Returns Type
	// Fn computes the function's result. It receives the evaluated arguments
	// after they have been checked against Arity and Params. Fn must not
	// modify args or the Env.
	Fn func(env *Env, args []Value) (Value, error)
}

// param returns the declared type of the i'th parameter.
func (b *Builtin) param(i int) Type {
	if b.Arity == Variadic {
		return b.Params[0]
	}
	return b.Params[i]
}

// check panics if b is not a usable descriptor.
func (b *Builtin) check() {
	switch {
	case b == nil:
		panic("pnc: nil builtin")
	case b.Name == "":
		panic("pnc: builtin with no name")
	case b.Fn == nil:
		panic("pnc: builtin " + b.Name + " has no implementation")
	case b.Arity == Variadic && len(b.Params) != 1:
		panic("pnc: variadic builtin " + b.Name + " must declare exactly one parameter type")
	case b.Arity != Variadic && (b.Arity < 0 || len(b.Params) != b.Arity):
		panic("pnc: builtin " + b.Name + " declares " + strconv.Itoa(len(b.Params)) + " parameters for arity " + strconv.Itoa(b.Arity))
	}
}

// Unary wraps a function of one Number into a Builtin.
func Unary(name string, f func(x Number) (Number, error)) *Builtin {
	return &Builtin{
		Name:    name,
		Arity:   1,
		Params:  []Type{TypeNumber},
		Returns: TypeNumber,
		Fn: func(env *Env, args []Value) (Value, error) {
			r, err := f(args[0].num)
			if err != nil {
				return Value{}, err
			}
			return NumberValue(r), nil
		},
	}
}

// Binary wraps a function of two Numbers into a Builtin.
func Binary(name string, f func(x, y Number) (Number, error)) *Builtin {
	return &Builtin{
		Name:    name,
		Arity:   2,
		Params:  []Type{TypeNumber, TypeNumber},
		Returns: TypeNumber,
		Fn: func(env *Env, args []Value) (Value, error) {
			r, err := f(args[0].num, args[1].num)
			if err != nil {
				return Value{}, err
			}
			return NumberValue(r), nil
		},
	}
}

// total adapts an infallible binary operation.
func total(f func(x, y Number) Number) func(x, y Number) (Number, error) {
	return func(x, y Number) (Number, error) {
		return f(x, y), nil
	}
}

// compare adapts a test on the result of Number.Cmp.
func compare(ok func(c int) bool) func(x, y Number) (Number, error) {
	return func(x, y Number) (Number, error) {
		return boolnum(ok(x.Cmp(y))), nil
	}
}
