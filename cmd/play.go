package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/divtutor/internal/problemgen"
)

var playCmd = &cobra.Command{
	Use:   "play [DIVIDEND DIVISOR]",
	Short: "Start dividing right away, optionally with a chosen problem",
	Example: `  divtutor play
  divtutor play 768 24`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or DIVIDEND DIVISOR, got %d arguments", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			p := problemgen.New(problemgen.DefaultConfig()).Generate()
			return runApp(cmd, &p)
		}
		p, err := parseProblem(args[0], args[1])
		if err != nil {
			return err
		}
		return runApp(cmd, &p)
	},
}

// parseProblem validates a dividend and divisor given on the command line.
func parseProblem(dividendArg, divisorArg string) (problemgen.Problem, error) {
	dividend, err := strconv.Atoi(dividendArg)
	if err != nil {
		return problemgen.Problem{}, fmt.Errorf("invalid dividend %q: %w", dividendArg, err)
	}
	divisor, err := strconv.Atoi(divisorArg)
	if err != nil {
		return problemgen.Problem{}, fmt.Errorf("invalid divisor %q: %w", divisorArg, err)
	}
	return problemgen.NewProblem(dividend, divisor)
}
