package automata

import (
	"container/list"
	"sort"
	"strconv"
	"strings"
)

// Move returns the states reachable from any state in set by one
// transition labeled symbol, sorted and deduplicated.
func (a *Automaton) Move(set []int, symbol rune) []int {
	seen := map[int]struct{}{}
	for _, s := range set {
		for _, t := range a.States[s].Transitions {
			if t.Symbol == symbol && !t.IsEpsilon() {
				seen[t.Target] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

// EpsilonClosure returns every state reachable from set using zero or more
// epsilon transitions, set included, sorted and deduplicated. It walks an
// explicit stack, so epsilon cycles and long epsilon chains are safe.
func (a *Automaton) EpsilonClosure(set []int) []int {
	seen := make(map[int]struct{}, len(set))
	stack := list.New()
	for _, s := range set {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			stack.PushBack(s)
		}
	}
	for stack.Len() > 0 {
		s := stack.Remove(stack.Back()).(int)
		for _, t := range a.States[s].Transitions {
			if !t.IsEpsilon() {
				continue
			}
			if _, ok := seen[t.Target]; !ok {
				seen[t.Target] = struct{}{}
				stack.PushBack(t.Target)
			}
		}
	}
	return sortedKeys(seen)
}

// Alphabet returns the distinct non-epsilon symbols leaving state, ascending.
func (a *Automaton) Alphabet(state int) []rune {
	return a.AlphabetOf([]int{state})
}

// AlphabetOf is Alphabet over the union of a set of states.
func (a *Automaton) AlphabetOf(set []int) []rune {
	seen := map[rune]struct{}{}
	for _, s := range set {
		for _, t := range a.States[s].Transitions {
			if !t.IsEpsilon() {
				seen[t.Symbol] = struct{}{}
			}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// setKey is the canonical map key of a sorted state set.
func setKey(set []int) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}
