// Package regex parses the pattern language accepted by langlab: literal
// symbols, grouping with (), postfix * and +, implicit concatenation and
// union with |. Nothing can be escaped, so the five operator runes are never
// literals.
//
// Precedence from tightest to loosest:
//
//	primary  := symbol | '(' union ')'
//	closure  := primary ('*' | '+')*
//	concat   := closure closure*
//	union    := concat ('|' concat)*
//
// Concatenation and union are folded to the right, so "abc" becomes
// Concat(a, Concat(b, c)). Chained closures fold into a single node, so
// "a**" and "(a+)*" both parse to KleeneClosure(Character('a')).
package regex

import "fmt"

// DefaultMaxNesting bounds how deep parentheses may nest.
const DefaultMaxNesting = 256

// Options tunes the parser.
type Options struct {
	// MaxNesting limits parenthesis depth. Zero means DefaultMaxNesting.
	MaxNesting int
}

type parser struct {
	pattern  string
	lex      *lexer
	depth    int
	maxDepth int
}

// Parse builds the grammar tree for pattern using default options.
func Parse(pattern string) (*Node, error) {
	return ParseWithOptions(pattern, Options{})
}

// ParseWithOptions builds the grammar tree for pattern. It returns a
// *MalformedPatternError if the pattern is empty, has unbalanced
// parentheses, or an operator is missing an operand.
func ParseWithOptions(pattern string, opts Options) (*Node, error) {
	p := &parser{pattern: pattern, lex: newLexer(pattern), maxDepth: opts.MaxNesting}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxNesting
	}
	if p.lex.peek().typ == tEOF {
		return nil, p.errorf(0, "empty pattern")
	}
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if tok := p.lex.peek(); tok.typ != tEOF {
		return nil, p.errorf(tok.pos, "unexpected %v", tok.typ)
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) *Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) errorf(pos int, format string, args ...interface{}) error {
	return &MalformedPatternError{Pattern: p.pattern, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) parseUnion() (*Node, error) {
	var alts []*Node
	for {
		n, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		alts = append(alts, n)
		if p.lex.peek().typ != tUnion {
			break
		}
		p.lex.next()
	}
	return foldRight(alts, Union), nil
}

func (p *parser) parseConcat() (*Node, error) {
	var terms []*Node
	for {
		n, err := p.parseClosure()
		if err != nil {
			return nil, err
		}
		terms = append(terms, n)
		switch p.lex.peek().typ {
		case tRParen, tUnion, tEOF:
			return foldRight(terms, Concat), nil
		}
	}
}

func (p *parser) parseClosure() (*Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.lex.peek().typ {
		case tStar:
			n = closure(n, KindStar)
		case tPlus:
			n = closure(n, KindPlus)
		default:
			return n, nil
		}
		p.lex.next()
	}
}

// closure wraps n in a closure of kind k. A closure of a closure collapses
// into one node: (x*)* and (x+)+ keep their kind, any mix of * and + is x*.
// Trees therefore never stack closures, however long the operator chain.
func closure(n *Node, k Kind) *Node {
	switch {
	case n.Kind == k:
		return n
	case n.Kind == KindStar || n.Kind == KindPlus:
		return Star(n.Left)
	case k == KindStar:
		return Star(n)
	}
	return Plus(n)
}

func (p *parser) parsePrimary() (*Node, error) {
	tok := p.lex.next()
	switch tok.typ {
	case tChar:
		return Char(tok.ch), nil
	case tLParen:
		if p.depth >= p.maxDepth {
			return nil, p.errorf(tok.pos, "groups nested deeper than %d", p.maxDepth)
		}
		p.depth++
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		p.depth--
		if closing := p.lex.next(); closing.typ != tRParen {
			return nil, p.errorf(tok.pos, "unmatched '('")
		}
		return inner, nil
	case tEOF:
		return nil, p.errorf(tok.pos, "missing operand at end of pattern")
	default:
		return nil, p.errorf(tok.pos, "missing operand before %v", tok.typ)
	}
}

func foldRight(nodes []*Node, join func(l, r *Node) *Node) *Node {
	n := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		n = join(nodes[i], n)
	}
	return n
}
