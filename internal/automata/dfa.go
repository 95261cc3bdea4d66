package automata

// subset is one DFA state under construction: the NFA states it stands for
// and the DFA index reserved for it.
type subset struct {
	states []int
	index  int
}

type subsetBuilder struct {
	nfa *Automaton
	dfa *Automaton
	// finalized subsets have had their transitions wired; reserved ones
	// own an (empty) DFA state but are still waiting in the work list.
	finalized map[string]int
	reserved  map[string]int
	work      []subset
}

// ToDFA converts nfa into an equivalent DFA by subset construction. Each
// DFA state stands for the epsilon closure of a set of NFA states; the
// start state is the closure of NFA state 0.
//
// Subsets are expanded from a LIFO work list. A newly discovered subset
// gets its DFA state appended at once, so its index is final before any
// transition points at it. Symbols are visited in ascending order, which
// makes the numbering reproducible.
//
// ToDFA panics with an *InvalidStateReferenceError if nfa fails Validate.
func ToDFA(nfa *Automaton) *Automaton {
	if err := nfa.Validate(); err != nil {
		panic(err)
	}
	b := &subsetBuilder{
		nfa:       nfa,
		dfa:       New(),
		finalized: map[string]int{},
		reserved:  map[string]int{},
	}
	b.reserve(nfa.EpsilonClosure([]int{0}))
	for len(b.work) > 0 {
		next := b.work[len(b.work)-1]
		b.work = b.work[:len(b.work)-1]
		b.expand(next)
	}
	log.WithField("nfaStates", nfa.NumStates()).
		WithField("dfaStates", b.dfa.NumStates()).
		Debug("subset construction finished")
	return b.dfa
}

// reserve returns the DFA index of set, allocating a state and queueing the
// set for expansion the first time it is seen.
func (b *subsetBuilder) reserve(set []int) int {
	key := setKey(set)
	if idx, ok := b.finalized[key]; ok {
		return idx
	}
	if idx, ok := b.reserved[key]; ok {
		return idx
	}
	idx := b.dfa.AddState()
	b.reserved[key] = idx
	b.work = append(b.work, subset{states: set, index: idx})
	return idx
}

func (b *subsetBuilder) expand(s subset) {
	key := setKey(s.states)
	if _, done := b.finalized[key]; done {
		return
	}
	b.finalized[key] = s.index
	delete(b.reserved, key)

	if b.nfa.anyAccepting(s.states) {
		b.dfa.SetAccepting(s.index)
	}
	for _, c := range b.nfa.AlphabetOf(s.states) {
		target := b.nfa.EpsilonClosure(b.nfa.Move(s.states, c))
		b.dfa.AddTransition(s.index, b.reserve(target), c)
	}
}
