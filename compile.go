package pnc

import "strings"

// Expr is a compiled expression: a number literal, an identifier, or a call
// of a registered function. Exprs are immutable and may be evaluated any
// number of times, concurrently, by the Env that compiled them.
type Expr struct {
	kind exprKind
	pos  int
	// num is the value of a number literal.
	num Number
	// name is the text of an identifier or the name of a called function.
	name string
	fn   *Builtin
	args []*Expr
}

type exprKind int8

const (
	exprNone exprKind = iota

	exprNum   // num is the value
	exprIdent // name is the identifier, resolved at evaluation
	exprCall  // fn is the function, args are the arguments
)

// Compile converts a parenthesis tree into an expression. Function names are
// resolved against env's registry, but identifiers are not looked up until
// evaluation. A nil node compiles to a nil Expr, which evaluates to nothing.
func (env *Env) Compile(n *Node) (*Expr, error) {
	if n == nil {
		return nil, nil
	}
	switch n.kind {
	case nodeAtom:
		num, err := ParseNumber(n.text, env.prec)
		if err != nil {
			return &Expr{kind: exprIdent, pos: n.pos, name: n.text}, nil
		}
		return &Expr{kind: exprNum, pos: n.pos, num: num}, nil
	case nodeList:
		if len(n.kids) == 0 {
			return nil, &ShapeError{Col: n.pos}
		}
		head := n.kids[0]
		var fn *Builtin
		if head.kind == nodeAtom {
			fn = env.Func(head.text)
		}
		if fn == nil {
			return nil, &NameError{Name: head.String(), Space: Function}
		}
		e := &Expr{kind: exprCall, pos: n.pos, name: fn.Name, fn: fn, args: make([]*Expr, 0, len(n.kids)-1)}
		for _, k := range n.kids[1:] {
			a, err := env.Compile(k)
			if err != nil {
				return nil, err
			}
			e.args = append(e.args, a)
		}
		return e, nil
	default:
		panic("pnc: invalid node kind " + n.kind.String())
	}
}

// String renders e in source form. Number literals render canonically, so the
// result may differ from the text that was compiled.
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	switch e.kind {
	case exprNum:
		b.WriteString(e.num.String())
	case exprIdent:
		b.WriteString(e.name)
	case exprCall:
		b.WriteByte('(')
		b.WriteString(e.name)
		for _, a := range e.args {
			b.WriteByte(' ')
			a.fmt(b)
		}
		b.WriteByte(')')
	default:
		panic("pnc: invalid expression kind")
	}
}
