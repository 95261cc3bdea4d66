package automata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT prints a Graphviz digraph of a to w. Accepting states are drawn
// as double circles and epsilon edges are labeled ε.
func WriteDOT(w io.Writer, a *Automaton, name string) error {
	if name == "" {
		name = "G"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i, s := range a.States {
		shape := "circle"
		if a.IsAccepting(i) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", i, shape)
		for _, t := range s.Transitions {
			label := "ε"
			if !t.IsEpsilon() {
				label = string(t.Symbol)
			}
			fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", i, t.Target, strconv.Quote(label))
		}
	}
	if len(a.States) > 0 {
		fmt.Fprintln(bw, "    _start [shape=point]; _start -> q0;")
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
