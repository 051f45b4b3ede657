package pnc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Token is a lexical token: an open parenthesis, a close parenthesis, or an
// atom. The text of an atom is a substring of the source.
type Token struct {
	Text string
	Kind TokenKind
	// Pos is the byte offset of the token in the source.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenAtom is any maximal run of characters other than parentheses and
	// whitespace.
	TokenAtom
)

//go:generate stringer -type=TokenKind -trimprefix=Token

// Tokenize splits src into tokens. It never fails; malformed programs are
// detected by the parser and compiler.
func Tokenize(src string) []Token {
	var toks []Token
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		switch {
		case r == '(':
			toks = append(toks, Token{Text: "(", Kind: TokenOpen, Pos: i})
			i += sz
		case r == ')':
			toks = append(toks, Token{Text: ")", Kind: TokenClose, Pos: i})
			i += sz
		case unicode.IsSpace(r):
			i += sz
		default:
			j := atomEnd(src, i)
			toks = append(toks, Token{Text: src[i:j], Kind: TokenAtom, Pos: i})
			i = j
		}
	}
	return toks
}

// atomEnd returns the offset of the first parenthesis or whitespace at or
// after i, or len(src).
func atomEnd(src string, i int) int {
	for i < len(src) {
		r, sz := utf8.DecodeRuneInString(src[i:])
		if r == '(' || r == ')' || unicode.IsSpace(r) {
			return i
		}
		i += sz
	}
	return i
}

// Wrap surrounds a token sequence with an implicit pair of parentheses, so
// that "+ 1 2" reads as "(+ 1 2)". Sequences which are empty, have a single
// token, or are already one parenthesized list are returned unchanged.
func Wrap(toks []Token) []Token {
	if len(toks) < 2 {
		return toks
	}
	if toks[0].Kind == TokenOpen && matchClose(toks, 0) == len(toks)-1 {
		return toks
	}
	last := toks[len(toks)-1]
	r := make([]Token, 0, len(toks)+2)
	r = append(r, Token{Text: "(", Kind: TokenOpen, Pos: toks[0].Pos})
	r = append(r, toks...)
	r = append(r, Token{Text: ")", Kind: TokenClose, Pos: last.Pos + len(last.Text)})
	return r
}

// matchClose finds the index of the close parenthesis matching the open
// parenthesis at toks[open] by counting depth. The result is -1 if there is
// no match.
func matchClose(toks []Token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case TokenOpen:
			depth++
		case TokenClose:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
