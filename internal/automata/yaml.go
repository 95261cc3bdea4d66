package automata

import (
	"io"

	"gopkg.in/yaml.v2"
)

type yamlTransition struct {
	Symbol  string `yaml:"symbol,omitempty"`
	Epsilon bool   `yaml:"epsilon,omitempty"`
	Target  int    `yaml:"target"`
}

type yamlState struct {
	ID          int              `yaml:"id"`
	Accepting   bool             `yaml:"accepting,omitempty"`
	Transitions []yamlTransition `yaml:"transitions,omitempty"`
}

type yamlAutomaton struct {
	Start  int         `yaml:"start"`
	States []yamlState `yaml:"states"`
}

// WriteYAML encodes a as a YAML document with one entry per state.
func WriteYAML(w io.Writer, a *Automaton) error {
	doc := yamlAutomaton{States: make([]yamlState, 0, len(a.States))}
	for i, s := range a.States {
		ys := yamlState{ID: i, Accepting: a.IsAccepting(i)}
		for _, t := range s.Transitions {
			yt := yamlTransition{Target: t.Target, Epsilon: t.IsEpsilon()}
			if !t.IsEpsilon() {
				yt.Symbol = string(t.Symbol)
			}
			ys.Transitions = append(ys.Transitions, yt)
		}
		doc.States = append(doc.States, ys)
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
