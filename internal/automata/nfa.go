package automata

import (
	"fmt"

	"langlab/internal/regex"
)

// fragment is a compiled sub-automaton with one way in and one way out.
type fragment struct {
	entry, exit int
}

type nfaBuilder struct {
	a *Automaton
}

// FromGrammar compiles a grammar tree into an NFA with Thompson's
// construction. State 0 is the start state and the single accepting state
// is the exit of the whole tree.
func FromGrammar(root *regex.Node) *Automaton {
	b := &nfaBuilder{a: New()}
	start := b.a.AddState()
	frag := b.compile(root, start)
	b.a.SetAccepting(frag.exit)
	log.WithField("states", b.a.NumStates()).Debug("built NFA")
	return b.a
}

// compile appends the states for n, entering at from, and returns the
// fragment it built. Concatenation and union chains are walked in a loop
// and the parser never stacks closures, so recursion depth follows group
// nesting, which the parser bounds.
func (b *nfaBuilder) compile(n *regex.Node, from int) fragment {
	switch n.Kind {
	case regex.KindChar:
		to := b.a.AddState()
		b.a.AddTransition(from, to, n.Char)
		return fragment{entry: from, exit: to}
	case regex.KindConcat:
		cur := from
		for n.Kind == regex.KindConcat {
			cur = b.compile(n.Left, cur).exit
			n = n.Right
		}
		return fragment{entry: from, exit: b.compile(n, cur).exit}
	case regex.KindUnion:
		return b.union(n, from)
	case regex.KindStar:
		return b.star(n.Left, from)
	case regex.KindPlus:
		once := b.compile(n.Left, from)
		return fragment{entry: from, exit: b.star(n.Left, once.exit).exit}
	default:
		panic(fmt.Sprintf("automata: unknown grammar node %v", n.Kind))
	}
}

// union gives every alternative of a right-leaning Union chain its own
// entry state, fans out to them from from and joins their exits in one
// shared exit state.
func (b *nfaBuilder) union(n *regex.Node, from int) fragment {
	var alts []fragment
	for {
		entry := b.a.AddState()
		alts = append(alts, b.compile(n.Left, entry))
		n = n.Right
		if n.Kind != regex.KindUnion {
			break
		}
	}
	entry := b.a.AddState()
	alts = append(alts, b.compile(n, entry))

	exit := b.a.AddState()
	for _, f := range alts {
		b.a.AddEpsilon(from, f.entry)
	}
	for _, f := range alts {
		b.a.AddEpsilon(f.exit, exit)
	}
	return fragment{entry: from, exit: exit}
}

// star builds zero-or-more repetitions of inner after from.
func (b *nfaBuilder) star(inner *regex.Node, from int) fragment {
	loopEntry := b.a.AddState()
	body := b.compile(inner, loopEntry)
	loopExit := b.a.AddState()

	b.a.AddEpsilon(from, loopEntry)
	b.a.AddEpsilon(from, loopExit)
	b.a.AddEpsilon(body.exit, loopEntry)
	b.a.AddEpsilon(body.exit, loopExit)
	return fragment{entry: from, exit: loopExit}
}
