package feedback

import (
	"context"
	"log/slog"
	"os/exec"
	"sync"
)

// CommandSpeaker speaks text through an external text-to-speech program
// such as "say" or "espeak". The text is passed as the final argument.
// Starting a new utterance cancels the one still playing, so prompts never
// queue up behind each other.
type CommandSpeaker struct {
	command string
	args    []string
	logger  *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Speaker = (*CommandSpeaker)(nil)

// NewCommandSpeaker creates a speaker for command. An empty command yields
// a speaker that does nothing.
func NewCommandSpeaker(command string, args []string, logger *slog.Logger) *CommandSpeaker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CommandSpeaker{command: command, args: args, logger: logger}
}

// Enabled reports whether a command is configured.
func (s *CommandSpeaker) Enabled() bool {
	return s.command != ""
}

func (s *CommandSpeaker) Speak(text string) {
	if !s.Enabled() || text == "" {
		return
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	args := append(append([]string{}, s.args...), text)
	cmd := exec.CommandContext(ctx, s.command, args...)
	if err := cmd.Start(); err != nil {
		s.logger.Debug("speech command failed to start", "command", s.command, "error", err)
		cancel()
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			s.logger.Debug("speech command exited", "command", s.command, "error", err)
		}
	}()
}

// Close stops any utterance in progress and waits for it to exit.
func (s *CommandSpeaker) Close() error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
	return nil
}
