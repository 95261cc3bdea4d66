package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"langlab/internal/automata"
	"langlab/internal/logging"
	"langlab/internal/regex"
)

const defaultPattern = "ab*c"

var rootCmd = &cobra.Command{
	Use:   "langlab",
	Short: "Compile a pattern to an NFA and a DFA",
	Long: "langlab parses a pattern, builds its Thompson NFA, converts it to a DFA by subset " +
		"construction and prints every stage.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dumpPattern(cmd.OutOrStdout(), viper.GetString("pattern"), viper.GetString("format"), parseOptions())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.StringP("format", "f", automata.FormatText, "Automaton output format: text, dot or yaml")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Int("max-nesting", regex.DefaultMaxNesting, "Deepest allowed group nesting")
	rootCmd.Flags().StringP("pattern", "p", defaultPattern, "Pattern to compile")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("max_nesting", flags.Lookup("max-nesting"))
	_ = viper.BindPFlag("pattern", rootCmd.Flags().Lookup("pattern"))
}

func loadConfig() error {
	viper.SetEnvPrefix("LANGLAB")
	viper.AutomaticEnv()
	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "reading config")
		}
	}
	return logging.SetLogLevel(viper.GetString("log_level"))
}

func parseOptions() regex.Options {
	return regex.Options{MaxNesting: viper.GetInt("max_nesting")}
}

// dumpPattern prints the pattern, its grammar tree, the NFA and the DFA in
// that order. Only the text format carries section headers; dot and yaml
// output is the two automata alone so it can be piped to other tools.
func dumpPattern(w io.Writer, pattern, format string, opts regex.Options) error {
	g, err := regex.ParseWithOptions(pattern, opts)
	if err != nil {
		return err
	}
	nfa := automata.FromGrammar(g)
	dfa := automata.ToDFA(nfa)

	if isText(format) {
		fmt.Fprintf(w, "INPUT DUMP\n%s\n", pattern)
		fmt.Fprintf(w, "\n\nREGEX DUMP\n%s\n", g)
	}
	return writeAutomata(w, format, "", nfa, dfa)
}

func isText(format string) bool {
	return format == "" || strings.EqualFold(format, automata.FormatText)
}

// writeAutomata renders an NFA and its DFA. Text output gets the NFA DUMP
// and DFA DUMP headers, YAML output gets one document per automaton.
func writeAutomata(w io.Writer, format, prefix string, nfa, dfa *automata.Automaton) error {
	for _, stage := range []struct {
		header, name string
		a            *automata.Automaton
	}{
		{"NFA DUMP", prefix + "nfa", nfa},
		{"DFA DUMP", prefix + "dfa", dfa},
	} {
		switch {
		case isText(format):
			fmt.Fprintf(w, "\n\n%s\n", stage.header)
		case strings.EqualFold(format, automata.FormatYAML):
			fmt.Fprintln(w, "---")
		}
		if err := automata.Render(w, stage.a, format, stage.name); err != nil {
			return err
		}
	}
	return nil
}
