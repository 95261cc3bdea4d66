package regex

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tLParen           // (
	tRParen           // )
	tStar             // *
	tPlus             // +
	tUnion            // |
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "end of pattern"
	case tChar:
		return "symbol"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tPlus:
		return "'+'"
	case tUnion:
		return "'|'"
	}
	return "unknown"
}

type token struct {
	typ tokenType
	ch  rune // for tChar
	pos int  // rune offset in the pattern
}

// lexer walks a pattern one rune at a time. Every rune that is not an
// operator is a literal symbol.
type lexer struct {
	input []rune
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: []rune(s)} }

func (l *lexer) peek() token {
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: l.pos}
	}
	r := l.input[l.pos]
	tok := token{pos: l.pos}
	switch r {
	case '(':
		tok.typ = tLParen
	case ')':
		tok.typ = tRParen
	case '*':
		tok.typ = tStar
	case '+':
		tok.typ = tPlus
	case '|':
		tok.typ = tUnion
	default:
		tok.typ = tChar
		tok.ch = r
	}
	return tok
}

func (l *lexer) next() token {
	tok := l.peek()
	if tok.typ != tEOF {
		l.pos++
	}
	return tok
}
