package automata

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"langlab/internal/regex"
)

// oracle answers full-match questions with lexmachine's own DFA so our
// construction is checked against an independent engine.
type oracle struct {
	lexer *lexmachine.Lexer
}

func newOracle(t *testing.T, pattern string) *oracle {
	t.Helper()
	lx := lexmachine.NewLexer()
	lx.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return m, nil
	})
	require.NoError(t, lx.Compile(), "lexmachine compile %q", pattern)
	return &oracle{lexer: lx}
}

func (o *oracle) accepts(t *testing.T, s string) bool {
	scanner, err := o.lexer.Scanner([]byte(s))
	require.NoError(t, err)
	tok, err, eos := scanner.Next()
	if eos || err != nil {
		return false
	}
	return len(tok.(*machines.Match).Bytes) == len(s)
}

// Patterns here never match the empty string; lexmachine rejects those.
func TestDFAAgreesWithLexmachine(t *testing.T) {
	patterns := []string{
		"ab*c",
		"(a|b)*abb",
		"(ab|a)+",
		"x(y+|z)*",
		"a(b|c)*d",
		"((a|b)(c|d))+",
	}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			_, dfa := compile(t, p)
			o := newOracle(t, p)
			alpha := append(regex.MustParse(p).Alphabet(), 'q')
			for _, s := range words(alpha, 4)[1:] {
				require.Equal(t, o.accepts(t, s), dfaAccepts(dfa, s), "string %q", s)
			}
		})
	}
}
