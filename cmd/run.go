package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/divtutor/internal/app"
	"github.com/abhisek/divtutor/internal/feedback"
	"github.com/abhisek/divtutor/internal/logger"
	"github.com/abhisek/divtutor/internal/problemgen"
	"github.com/abhisek/divtutor/internal/screens/division"
	"github.com/abhisek/divtutor/internal/session"
)

// runApp loads config, builds the feedback collaborators, and launches the
// TUI. A non-nil first problem skips the menu and is played first.
func runApp(cmd *cobra.Command, first *problemgen.Problem) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := app.Options{
		Division: division.Options{
			Generator: problemgen.New(problemgen.DefaultConfig()),
			Session:   session.New(nil),
			Timing:    cfg.Tutor.Timing(),
			IdleDelay: cfg.Tutor.IdleHintDelay,
			Logger:    log,
			First:     first,
		},
		SkipHome: first != nil,
	}

	// The renderer owns stdout; the bell goes to the same terminal via stderr.
	if cfg.Audio.Bell {
		opts.Division.Player = feedback.NewBell(os.Stderr, log)
	}

	speaker := feedback.NewCommandSpeaker(cfg.Speech.Command, cfg.Speech.Args, log)
	defer speaker.Close()
	if speaker.Enabled() {
		opts.Division.Speaker = speaker
	}

	log.Info("starting tutor",
		"speech", speaker.Enabled(),
		"bell", cfg.Audio.Bell,
		"idle_hint_delay", cfg.Tutor.IdleHintDelay)

	return app.Run(opts)
}
