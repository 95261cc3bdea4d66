package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"langlab/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <file>",
	Short: "Compile every rule of a rules file",
	Long:  "Read named patterns from a rules file and print the grammar, NFA and DFA of each one.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	f, err := rules.Load(args[0])
	if err != nil {
		return err
	}
	compiled, err := f.Compile(parseOptions())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	format := viper.GetString("format")
	for i, c := range compiled {
		if isText(format) {
			if i > 0 {
				fmt.Fprint(w, "\n\n")
			}
			fmt.Fprintf(w, "RULE %s\n%s\n", c.Name, c.Pattern)
			fmt.Fprintf(w, "\n\nREGEX DUMP\n%s\n", c.Grammar)
		}
		if err := writeAutomata(w, format, c.Name+"_", c.NFA, c.DFA); err != nil {
			return err
		}
	}
	return nil
}
