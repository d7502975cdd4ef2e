package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/divtutor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "divtutor",
	Short: "Long-division tutor for the terminal",
	Long: `DivTutor walks a learner through long division one quotient digit at a
time: it checks each digit, shows the product and remainder, brings down
the next digit, and nudges with a hint when the learner goes quiet.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/divtutor/divtutor.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(problemCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration from --config (highest priority), then
// the default config file, then DIVTUTOR_* environment variables.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
