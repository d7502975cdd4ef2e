package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/divtutor/internal/problemgen"
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Print generated division problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		answers, _ := cmd.Flags().GetBool("answers")

		if count < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", count)
		}

		var gen problemgen.Generator
		if seed != 0 {
			gen = problemgen.NewSeeded(problemgen.DefaultConfig(), seed)
		} else {
			gen = problemgen.New(problemgen.DefaultConfig())
		}

		out := cmd.OutOrStdout()
		for i := 0; i < count; i++ {
			p := gen.Generate()
			if answers {
				fmt.Fprintf(out, "%s = %d\n", p, p.Quotient())
				continue
			}
			fmt.Fprintln(out, p)
		}
		return nil
	},
}

func init() {
	problemCmd.Flags().Int("count", 5, "Number of problems to print")
	problemCmd.Flags().Uint64("seed", 0, "Seed for reproducible problems (0 picks a random seed)")
	problemCmd.Flags().Bool("answers", false, "Print each quotient")
}
