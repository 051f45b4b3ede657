package pnc

import (
	"errors"
	"strconv"
)

// FaultKind classifies the errors that abort an evaluation.
type FaultKind int8

const (
	// NoFault is the kind of nil and of errors that are not faults.
	NoFault FaultKind = iota
	// ParseFault is a malformed literal, unbalanced parentheses, or an
	// expression with no meaning.
	ParseFault
	// NameFault is an unresolvable identifier, constant, or function name.
	NameFault
	// ValueFault is a bad argument count, argument type, or argument value.
	ValueFault
	// DivideByZeroFault is a zero divisor.
	DivideByZeroFault
	// InternalFault is resource exhaustion or a broken invariant.
	InternalFault
)

//go:generate stringer -type=FaultKind

// Fault is an error that aborts an evaluation. Every error returned by Parse,
// Compile, and Eval is a Fault.
type Fault interface {
	error
	// Kind returns the class of the fault.
	Kind() FaultKind
}

// KindOf returns the kind of the first Fault in err's chain, or NoFault.
func KindOf(err error) FaultKind {
	var f Fault
	if errors.As(err, &f) {
		return f.Kind()
	}
	return NoFault
}

// InputError is a fault with position information.
type InputError interface {
	Fault
	// Pos returns the byte offset in the source of the token that caused the
	// error.
	Pos() int
}

// funcNamer is a fault raised by arithmetic that the evaluator attributes
// to the builtin that was running.
type funcNamer interface {
	nameFunc(name string)
}

// LiteralError is a malformed number literal.
type LiteralError struct {
	// Text is the literal.
	Text string
	// Reason describes what is wrong with it.
	Reason string
}

func (err *LiteralError) Error() string {
	return "malformed literal " + strconv.Quote(err.Text) + ": " + err.Reason
}

func (err *LiteralError) Kind() FaultKind {
	return ParseFault
}

// BracketError is an open parenthesis with no matching close parenthesis.
type BracketError struct {
	// Col is the byte offset of the unmatched parenthesis.
	Col int
}

func (err *BracketError) Error() string {
	return "unbalanced parentheses"
}

func (err *BracketError) Kind() FaultKind {
	return ParseFault
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ShapeError is a token sequence or list that does not form an expression,
// including one with a close parenthesis that has no opener.
type ShapeError struct {
	// Col is the byte offset of the start of the expression.
	Col int
}

func (err *ShapeError) Error() string {
	return "unrecognized expression"
}

func (err *ShapeError) Kind() FaultKind {
	return ParseFault
}

func (err *ShapeError) Pos() int {
	return err.Col
}

// NameSpace identifies what a NameError failed to find.
type NameSpace int8

const (
	// Identifier is a bare name that is neither a literal nor a constant.
	Identifier NameSpace = iota
	// Constant is a name beginning with # that is not in the constant table.
	Constant
	// Function is a list head that names no builtin.
	Function
)

// NameError is a name that cannot be resolved.
type NameError struct {
	// Name is the name as written.
	Name string
	// Space is what kind of name was expected.
	Space NameSpace
}

func (err *NameError) Error() string {
	switch err.Space {
	case Constant:
		return "undefined constant '" + err.Name + "'"
	case Function:
		return "undefined function '" + err.Name + "'"
	default:
		return "'" + err.Name + "' is unknown"
	}
}

func (err *NameError) Kind() FaultKind {
	return NameFault
}

// CallError is a call with the wrong number of arguments.
type CallError struct {
	// Func is the name of the function.
	Func string
	// Got is the number of arguments supplied.
	Got int
	// Want is the function's arity.
	Want int
}

func (err *CallError) Error() string {
	return "function '" + err.Func + "' got " + strconv.Itoa(err.Got) + " arguments, expected " + strconv.Itoa(err.Want)
}

func (err *CallError) Kind() FaultKind {
	return ValueFault
}

// ArgTypeError is an argument whose value has the wrong type.
type ArgTypeError struct {
	// Func is the name of the function.
	Func string
	// Arg is the 1-based index of the argument.
	Arg int
	// Got is the type of the argument's value.
	Got Type
	// Want is the declared parameter type.
	Want Type
}

func (err *ArgTypeError) Error() string {
	return "argument #" + strconv.Itoa(err.Arg) + " of function '" + err.Func + "' is type " + err.Got.String() + ", expected " + err.Want.String()
}

func (err *ArgTypeError) Kind() FaultKind {
	return ValueFault
}

// ListError is an attempt to put a list inside a list.
type ListError struct {
	Func string
}

func (err *ListError) Error() string {
	return "a list cannot contain another list"
}

func (err *ListError) Kind() FaultKind {
	return ValueFault
}

func (err *ListError) nameFunc(name string) {
	if err.Func == "" {
		err.Func = name
	}
}

// DomainError is an argument outside the domain of a function.
type DomainError struct {
	// Func is the name of the function, if known.
	Func string
	// Arg is the 1-based index of the argument.
	Arg int
	// X is the argument.
	X Number
	// Want describes the domain, e.g. "an integer".
	Want string
}

func (err *DomainError) Error() string {
	return argname(err.Arg, err.Func) + " is " + err.X.String() + ", expected " + err.Want
}

func (err *DomainError) Kind() FaultKind {
	return ValueFault
}

func (err *DomainError) nameFunc(name string) {
	if err.Func == "" {
		err.Func = name
	}
}

// DivideByZeroError is a zero divisor.
type DivideByZeroError struct {
	// Func is the name of the function, if known.
	Func string
	// Arg is the 1-based index of the zero argument.
	Arg int
}

func (err *DivideByZeroError) Error() string {
	return argname(err.Arg, err.Func) + " cannot be 0"
}

func (err *DivideByZeroError) Kind() FaultKind {
	return DivideByZeroFault
}

func (err *DivideByZeroError) nameFunc(name string) {
	if err.Func == "" {
		err.Func = name
	}
}

// InternalError is resource exhaustion or a violated invariant.
type InternalError struct {
	Reason string
}

func (err *InternalError) Error() string {
	return err.Reason
}

func (err *InternalError) Kind() FaultKind {
	return InternalFault
}

// argname is a shortcut to describe an argument of a possibly unknown
// function.
func argname(arg int, fn string) string {
	s := "argument #" + strconv.Itoa(arg)
	if fn != "" {
		s += " of function '" + fn + "'"
	}
	return s
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ShapeError)(nil)
	_ Fault      = (*LiteralError)(nil)
	_ Fault      = (*NameError)(nil)
	_ Fault      = (*CallError)(nil)
	_ Fault      = (*ArgTypeError)(nil)
	_ Fault      = (*ListError)(nil)
	_ Fault      = (*DomainError)(nil)
	_ Fault      = (*DivideByZeroError)(nil)
	_ Fault      = (*InternalError)(nil)
)
