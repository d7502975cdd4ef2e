package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/divtutor/internal/feedback"
	"github.com/abhisek/divtutor/internal/grid"
	"github.com/abhisek/divtutor/internal/longdiv"
	"github.com/abhisek/divtutor/internal/score"
)

var solveCmd = &cobra.Command{
	Use:   "solve DIVIDEND DIVISOR",
	Short: "Walk through a division step by step without the TUI",
	Long: `Run the tutor non-interactively, entering the correct digit at every
step. Each spoken line is printed, followed by the finished tableau.

With --trace every cell placement and tag change is printed as it happens.`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().Bool("trace", false, "Print every grid change")
}

// printSpeaker writes each spoken line to w.
type printSpeaker struct {
	w io.Writer
}

func (p printSpeaker) Speak(text string) {
	fmt.Fprintf(p.w, "  » %s\n", text)
}

func runSolve(cmd *cobra.Command, args []string) error {
	trace, _ := cmd.Flags().GetBool("trace")
	out := cmd.OutOrStdout()

	p, err := parseProblem(args[0], args[1])
	if err != nil {
		return err
	}

	// Pacing comes from config, so the printed followup delays match the TUI.
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	board := score.NewBoard()
	opts := longdiv.Options{
		Timing:  cfg.Tutor.Timing(),
		Scorer:  board,
		Speaker: feedback.MultiSpeaker{printSpeaker{w: out}},
	}
	if trace {
		opts.Observer = func(c grid.Cell) {
			fmt.Fprintf(out, "    (%d,%d) %-2q %s\n", c.Row, c.Col, c.Content, c.Tags)
		}
	}

	e := longdiv.New(p, opts)
	q := longdiv.Solve(e, func(f longdiv.Followup) {
		if trace {
			fmt.Fprintf(out, "    … %s after %s\n", f.Kind, f.After)
		}
	})

	fmt.Fprintln(out)
	fmt.Fprint(out, e.Grid().String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s = %d  (%d steps, %d points)\n", p, q, len(e.Steps()), board.Total())
	return nil
}
