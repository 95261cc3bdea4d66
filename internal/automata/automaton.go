// Package automata holds the finite automaton model shared by NFAs and DFAs,
// Thompson's construction from a grammar tree, and the subset construction
// that turns an NFA into an equivalent DFA.
//
// States are dense indices into Automaton.States. State 0 is always the
// start state. States and transitions are only ever appended.
package automata

import (
	"fmt"
	"sort"

	"langlab/internal/logging"
)

var log = logging.DefaultLogger.WithField(logging.Subsys, "automata")

// Epsilon labels a transition that consumes no input. It is not a valid
// rune, so it never collides with a pattern symbol.
const Epsilon rune = -1

// Transition is an outgoing edge of a state.
type Transition struct {
	Symbol rune
	Target int
}

func (t Transition) IsEpsilon() bool { return t.Symbol == Epsilon }

type State struct {
	Transitions []Transition
}

// Automaton is either an NFA or a DFA; a DFA has no epsilon transitions and
// at most one transition per (state, symbol).
type Automaton struct {
	States []State
	// Accepting is kept sorted and free of duplicates.
	Accepting []int
}

// New returns an automaton with no states; callers add state 0 first.
func New() *Automaton { return &Automaton{} }

// NumStates returns how many states have been added.
func (a *Automaton) NumStates() int { return len(a.States) }

// AddState appends an empty state and returns its index.
func (a *Automaton) AddState() int {
	a.States = append(a.States, State{})
	return len(a.States) - 1
}

// AddTransition adds an edge labeled symbol. Passing Epsilon adds an
// epsilon edge. It panics if either end is not a state of a.
func (a *Automaton) AddTransition(from, to int, symbol rune) {
	if !a.valid(from) || !a.valid(to) {
		panic(&InvalidStateReferenceError{State: from, Target: to, Len: len(a.States)})
	}
	a.States[from].Transitions = append(a.States[from].Transitions, Transition{Symbol: symbol, Target: to})
}

func (a *Automaton) AddEpsilon(from, to int) { a.AddTransition(from, to, Epsilon) }

func (a *Automaton) Transitions(state int) []Transition { return a.States[state].Transitions }

func (a *Automaton) SetAccepting(state int) {
	if !a.valid(state) {
		panic(&InvalidStateReferenceError{State: state, Target: state, Len: len(a.States)})
	}
	i := sort.SearchInts(a.Accepting, state)
	if i < len(a.Accepting) && a.Accepting[i] == state {
		return
	}
	a.Accepting = append(a.Accepting, 0)
	copy(a.Accepting[i+1:], a.Accepting[i:])
	a.Accepting[i] = state
}

func (a *Automaton) IsAccepting(state int) bool {
	i := sort.SearchInts(a.Accepting, state)
	return i < len(a.Accepting) && a.Accepting[i] == state
}

// anyAccepting reports whether a sorted set shares a state with Accepting.
func (a *Automaton) anyAccepting(set []int) bool {
	i, j := 0, 0
	for i < len(set) && j < len(a.Accepting) {
		switch {
		case set[i] == a.Accepting[j]:
			return true
		case set[i] < a.Accepting[j]:
			i++
		default:
			j++
		}
	}
	return false
}

func (a *Automaton) valid(state int) bool { return state >= 0 && state < len(a.States) }

// InvalidStateReferenceError means a transition or accepting mark points
// outside the state slice. Construction never produces one; seeing it is a
// bug.
type InvalidStateReferenceError struct {
	State  int
	Target int
	Len    int
}

func (e *InvalidStateReferenceError) Error() string {
	return fmt.Sprintf("invalid state reference: state %d -> %d with %d states", e.State, e.Target, e.Len)
}

// Validate checks that every transition target and accepting state is in
// range and that the start state exists.
func (a *Automaton) Validate() error {
	if len(a.States) == 0 {
		return &InvalidStateReferenceError{State: 0, Target: 0, Len: 0}
	}
	for i, s := range a.States {
		for _, t := range s.Transitions {
			if !a.valid(t.Target) {
				return &InvalidStateReferenceError{State: i, Target: t.Target, Len: len(a.States)}
			}
		}
	}
	for _, s := range a.Accepting {
		if !a.valid(s) {
			return &InvalidStateReferenceError{State: s, Target: s, Len: len(a.States)}
		}
	}
	return nil
}

func (a *Automaton) HasEpsilon() bool {
	for _, s := range a.States {
		for _, t := range s.Transitions {
			if t.IsEpsilon() {
				return true
			}
		}
	}
	return false
}

// IsDeterministic reports whether a has no epsilon transitions and no two
// transitions leaving the same state on the same symbol.
func (a *Automaton) IsDeterministic() bool {
	for _, s := range a.States {
		seen := make(map[rune]struct{}, len(s.Transitions))
		for _, t := range s.Transitions {
			if t.IsEpsilon() {
				return false
			}
			if _, dup := seen[t.Symbol]; dup {
				return false
			}
			seen[t.Symbol] = struct{}{}
		}
	}
	return true
}
