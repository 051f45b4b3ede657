package pnc

// MaxDepth is the deepest nesting of parentheses that the parser accepts.
const MaxDepth = 10000

// Parse parses a program into its parenthesis tree. The given options are
// applied in order. An empty program produces a nil node with no error.
func Parse(src string, opts ...ParseOption) (*Node, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	toks := Tokenize(src)
	if p.wrap {
		toks = Wrap(toks)
	}
	return ParseTokens(toks)
}

// ParseTokens parses a token sequence. The sequence must be empty, a single
// atom, or one parenthesized list.
func ParseTokens(toks []Token) (*Node, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	if err := balance(toks); err != nil {
		return nil, err
	}
	if len(toks) == 1 && toks[0].Kind == TokenAtom {
		return atom(toks[0]), nil
	}
	if toks[0].Kind == TokenOpen && matchClose(toks, 0) == len(toks)-1 {
		return parselist(toks), nil
	}
	return nil, &ShapeError{Col: toks[0].Pos}
}

// balance checks that every parenthesis in toks is matched. An open
// parenthesis with no closer is a *BracketError naming the outermost such
// parenthesis. A close parenthesis with no opener cannot end any expression,
// so it is a *ShapeError instead.
func balance(toks []Token) error {
	var opens []int
	for _, tok := range toks {
		switch tok.Kind {
		case TokenOpen:
			opens = append(opens, tok.Pos)
			if len(opens) > MaxDepth {
				return &InternalError{Reason: "nesting too deep"}
			}
		case TokenClose:
			if len(opens) == 0 {
				return &ShapeError{Col: tok.Pos}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return &BracketError{Col: opens[0]}
	}
	return nil
}

func atom(tok Token) *Node {
	return &Node{kind: nodeAtom, text: tok.Text, pos: tok.Pos}
}

// parselist builds a list node from a balanced span that begins with an open
// parenthesis and ends with its matching close parenthesis.
func parselist(toks []Token) *Node {
	n := &Node{kind: nodeList, pos: toks[0].Pos}
	for i := 1; i < len(toks)-1; i++ {
		switch tok := toks[i]; tok.Kind {
		case TokenAtom:
			n.kids = append(n.kids, atom(tok))
		case TokenOpen:
			j := matchClose(toks, i)
			n.kids = append(n.kids, parselist(toks[i:j+1]))
			i = j
		default:
			panic("pnc: unexpected token in balanced list: " + tok.String())
		}
	}
	return n
}
