package pnc

import "strconv"

// Type is the type of a Value, or of a builtin parameter or result.
type Type int8

const (
	// TypeNone is the type of the result of an empty program.
	TypeNone Type = iota
	// TypeNumber is a single Number.
	TypeNumber
	// TypeList is a flat list of Numbers.
	TypeList
	// TypeAny is a parameter type that accepts any value. It is never the
	// type of a value.
	TypeAny
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeNumber:
		return "num"
	case TypeList:
		return "list of num"
	case TypeAny:
		return "any"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// accepts reports whether a parameter of type t accepts a value of type v.
func (t Type) accepts(v Type) bool {
	return t == TypeAny || t == v
}

// Value is the result of evaluating an expression: nothing, a Number, or a
// list of Numbers. Lists cannot contain lists.
type Value struct {
	typ  Type
	num  Number
	list []Number
}

// NumberValue wraps a Number.
func NumberValue(n Number) Value {
	return Value{typ: TypeNumber, num: n}
}

// ListValue wraps a list of Numbers. The list is not copied; Numbers are
// immutable, and the Value never modifies it.
func ListValue(l []Number) Value {
	return Value{typ: TypeList, list: l}
}

// Type returns the type of v.
func (v Value) Type() Type {
	return v.typ
}

// Number returns the Number in v. The second result is false if v is not a
// Number.
func (v Value) Number() (Number, bool) {
	return v.num, v.typ == TypeNumber
}

// List returns a copy of the list in v. The second result is false if v is
// not a list.
func (v Value) List() ([]Number, bool) {
	if v.typ != TypeList {
		return nil, false
	}
	return append([]Number(nil), v.list...), true
}

// Len returns the length of a list value, or 0 for other values.
func (v Value) Len() int {
	return len(v.list)
}

// String renders v. Numbers render as by Number.String, lists as an opaque
// placeholder, and nothing as the empty string.
func (v Value) String() string {
	switch v.typ {
	case TypeNone:
		return ""
	case TypeNumber:
		return v.num.String()
	case TypeList:
		return "(...)"
	default:
		panic("pnc: invalid value type " + v.typ.String())
	}
}
