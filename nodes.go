package pnc

import (
	"strings"
)

// Node is a node in the parenthesis tree of a program: either an atom or a
// list of nodes. A list owns its children.
type Node struct {
	kind nodeKind
	text string
	pos  int
	kids []*Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeAtom // text is the atom
	nodeList // kids are the elements
)

//go:generate stringer -type=nodeKind -trimprefix=node

// IsAtom reports whether n is an atom.
func (n *Node) IsAtom() bool {
	return n.kind == nodeAtom
}

// Text returns the text of an atom, or the empty string for a list.
func (n *Node) Text() string {
	return n.text
}

// Pos returns the byte offset of the node in its source.
func (n *Node) Pos() int {
	return n.pos
}

// Len returns the number of elements of a list.
func (n *Node) Len() int {
	return len(n.kids)
}

// Child returns the i'th element of a list.
func (n *Node) Child(i int) *Node {
	return n.kids[i]
}

// String renders the node in source form, with single spaces between list
// elements.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeAtom:
		b.WriteString(n.text)
	case nodeList:
		b.WriteByte('(')
		for i, k := range n.kids {
			if i > 0 {
				b.WriteByte(' ')
			}
			k.fmt(b)
		}
		b.WriteByte(')')
	default:
		panic("pnc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
