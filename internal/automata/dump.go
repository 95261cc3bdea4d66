package automata

import (
	"fmt"
	"io"
	"strings"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatYAML = "yaml"
)

// Render writes a in the named format. name is only used by the DOT output.
func Render(w io.Writer, a *Automaton, format, name string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return WriteDump(w, a)
	case FormatDOT:
		return WriteDOT(w, a, name)
	case FormatYAML:
		return WriteYAML(w, a)
	}
	return fmt.Errorf("unknown format %q: must be %s, %s or %s", format, FormatText, FormatDOT, FormatYAML)
}

// Dump returns the per-state listing written by WriteDump.
func Dump(a *Automaton) string {
	var b strings.Builder
	_ = WriteDump(&b, a)
	return b.String()
}

// WriteDump lists every state with its outgoing transitions and marks
// accepting states and states without transitions:
//
//	0:
//	    'a' -> 1
//	1:
//	    epsilon -> 2
//	    (accepting)
func WriteDump(w io.Writer, a *Automaton) error {
	for i, s := range a.States {
		if _, err := fmt.Fprintf(w, "%d:\n", i); err != nil {
			return err
		}
		for _, t := range s.Transitions {
			if _, err := fmt.Fprintf(w, "    %s -> %d\n", symbolLabel(t.Symbol), t.Target); err != nil {
				return err
			}
		}
		if a.IsAccepting(i) {
			if _, err := fmt.Fprintln(w, "    (accepting)"); err != nil {
				return err
			}
		}
		if len(s.Transitions) == 0 {
			if _, err := fmt.Fprintln(w, "    (no transitions)"); err != nil {
				return err
			}
		}
	}
	return nil
}

func symbolLabel(r rune) string {
	if r == Epsilon {
		return "epsilon"
	}
	return fmt.Sprintf("%q", r)
}
