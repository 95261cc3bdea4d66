package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langlab/internal/regex"
)

func TestParseRules(t *testing.T) {
	src := `
// keywords and friends
ident  = "a(a|b)*";
number = "(0|1)+"
space  = " +";
`
	f, err := Parse("lang.rules", []byte(src))
	require.NoError(t, err)
	require.Len(t, f.Rules, 3)

	assert.Equal(t, "ident", f.Rules[0].Name)
	assert.Equal(t, "a(a|b)*", f.Rules[0].Pattern)
	assert.Equal(t, "number", f.Rules[1].Name)
	assert.Equal(t, "(0|1)+", f.Rules[1].Pattern)
	assert.Equal(t, " +", f.Rules[2].Pattern)

	assert.Equal(t, "lang.rules", f.Rules[0].Pos.Filename)
	assert.Equal(t, 3, f.Rules[0].Pos.Line)
}

func TestParseRulesErrors(t *testing.T) {
	_, err := Parse("bad.rules", []byte(`ident = ;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing rules")

	_, err = Parse("dup.rules", []byte("a = \"x\";\nb = \"y\";\na = \"z\";"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "a" already defined at dup.rules:1:1`)
}

func TestCompile(t *testing.T) {
	f, err := Parse("lang.rules", []byte(`demo = "ab*c"; bits = "(0|1)+";`))
	require.NoError(t, err)

	out, err := f.Compile(regex.Options{})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "demo", out[0].Name)
	assert.Equal(t, "Concat(Character('a'), Concat(KleeneClosure(Character('b')), Character('c')))", out[0].Grammar.String())
	assert.Equal(t, 6, out[0].NFA.NumStates())
	assert.Equal(t, 4, out[0].DFA.NumStates())
	assert.True(t, out[1].DFA.IsDeterministic())
}

func TestCompileMalformed(t *testing.T) {
	f, err := Parse("lang.rules", []byte("ok = \"a\";\nbroken = \"(a\";"))
	require.NoError(t, err)

	_, err = f.Compile(regex.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, errors.Cause(err), regex.ErrMalformedPattern)
	assert.ErrorIs(t, err, regex.ErrMalformedPattern)
	assert.Contains(t, err.Error(), `lang.rules:2:1: rule "broken"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lang.rules")
	require.NoError(t, os.WriteFile(path, []byte(`x = "x+";`), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Rules, 1)
	assert.Equal(t, path, f.Rules[0].Pos.Filename)

	_, err = Load(filepath.Join(t.TempDir(), "missing.rules"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
