// Package rules reads a file of named patterns and runs each one through the
// pipeline on its own. Rules are not merged into a single lexer.
//
//	// comments use Go syntax
//	ident  = "a(a|b)*";
//	number = "(0|1)+"
package rules

import (
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"langlab/internal/automata"
	"langlab/internal/logging"
	"langlab/internal/regex"
)

var log = logging.DefaultLogger.WithField(logging.Subsys, "rules")

// File is a parsed rules file, rules in source order.
type File struct {
	Rules []*Rule `parser:"@@*"`
}

// Rule names one pattern; Pos is where its name starts.
type Rule struct {
	Pos     lexer.Position
	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@String ';'?"`
}

var parser = participle.MustBuild[File](participle.Unquote("String"))

// Parse reads rules from src; filename is only used in positions.
func Parse(filename string, src []byte) (*File, error) {
	f, err := parser.ParseBytes(filename, src)
	if err != nil {
		return nil, errors.Wrap(err, "parsing rules")
	}
	seen := map[string]lexer.Position{}
	for _, r := range f.Rules {
		if prev, dup := seen[r.Name]; dup {
			return nil, errors.Errorf("%s: rule %q already defined at %s", r.Pos, r.Name, prev)
		}
		seen[r.Name] = r.Pos
	}
	return f, nil
}

// Load reads and parses the rules file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rules")
	}
	return Parse(path, src)
}

// Compiled is one rule after every pipeline stage.
type Compiled struct {
	Name    string
	Pattern string
	Grammar *regex.Node
	NFA     *automata.Automaton
	DFA     *automata.Automaton
}

// Compile runs each rule through parse, Thompson construction and subset
// construction, stopping at the first malformed pattern.
func (f *File) Compile(opts regex.Options) ([]Compiled, error) {
	out := make([]Compiled, 0, len(f.Rules))
	for _, r := range f.Rules {
		g, err := regex.ParseWithOptions(r.Pattern, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: rule %q", r.Pos, r.Name)
		}
		nfa := automata.FromGrammar(g)
		dfa := automata.ToDFA(nfa)
		log.WithField("rule", r.Name).
			WithField("nfaStates", nfa.NumStates()).
			WithField("dfaStates", dfa.NumStates()).
			Debug("compiled rule")
		out = append(out, Compiled{Name: r.Name, Pattern: r.Pattern, Grammar: g, NFA: nfa, DFA: dfa})
	}
	return out, nil
}
