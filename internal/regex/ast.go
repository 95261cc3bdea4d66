package regex

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags the variant of a grammar node.
type Kind int

const (
	KindChar   Kind = iota // single symbol
	KindConcat             // Left then Right
	KindUnion              // Left or Right
	KindStar               // zero or more Left
	KindPlus               // one or more Left
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Character"
	case KindConcat:
		return "Concat"
	case KindUnion:
		return "Union"
	case KindStar:
		return "KleeneClosure"
	case KindPlus:
		return "PositiveClosure"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one element of a parsed pattern. Trees are built once by the
// parser and never mutated afterwards; leaves are always KindChar.
// Closures keep their operand in Left.
type Node struct {
	Kind  Kind
	Char  rune
	Left  *Node
	Right *Node
}

// Char matches exactly the symbol r.
func Char(r rune) *Node { return &Node{Kind: KindChar, Char: r} }

// Concat matches left followed by right.
func Concat(left, right *Node) *Node { return &Node{Kind: KindConcat, Left: left, Right: right} }

// Union matches left or right.
func Union(left, right *Node) *Node { return &Node{Kind: KindUnion, Left: left, Right: right} }

// Star matches zero or more repetitions of inner.
func Star(inner *Node) *Node { return &Node{Kind: KindStar, Left: inner} }

// Plus matches one or more repetitions of inner.
func Plus(inner *Node) *Node { return &Node{Kind: KindPlus, Left: inner} }

// String renders the tree in constructor form, e.g.
// Concat(Character('a'), KleeneClosure(Character('b'))).
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

// write prints the tree with an explicit stack; each item is either a node
// still to print or literal text that closes one.
func (n *Node) write(b *strings.Builder) {
	type item struct {
		n    *Node
		text string
	}
	stack := []item{{n: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n == nil {
			if it.text != "" {
				b.WriteString(it.text)
			} else {
				b.WriteString("<nil>")
			}
			continue
		}
		c := it.n
		b.WriteString(c.Kind.String())
		b.WriteByte('(')
		switch c.Kind {
		case KindChar:
			fmt.Fprintf(b, "%q)", c.Char)
		case KindStar, KindPlus:
			stack = append(stack, item{text: ")"}, item{n: c.Left})
		default:
			stack = append(stack, item{text: ")"}, item{n: c.Right}, item{text: ", "}, item{n: c.Left})
		}
	}
}

// Alphabet returns the distinct symbols used by the tree in ascending order.
func (n *Node) Alphabet() []rune {
	seen := map[rune]struct{}{}
	n.walk(func(c *Node) {
		if c.Kind == KindChar {
			seen[c.Char] = struct{}{}
		}
	})
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Depth returns the height of the tree; a single Character has depth 1.
func (n *Node) Depth() int {
	type item struct {
		n *Node
		d int
	}
	max := 0
	stack := []item{{n, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n == nil {
			continue
		}
		if it.d > max {
			max = it.d
		}
		stack = append(stack, item{it.n.Left, it.d + 1}, item{it.n.Right, it.d + 1})
	}
	return max
}

// walk visits every node in pre-order without recursing on the Go stack.
func (n *Node) walk(fn func(*Node)) {
	stack := []*Node{n}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c == nil {
			continue
		}
		fn(c)
		stack = append(stack, c.Right, c.Left)
	}
}
