package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shelp/internal/config"
	"shelp/internal/llm"
	"shelp/internal/logging"
	"shelp/internal/session"
)

// Application ties the resolved configuration, the chat client and the
// session model together for one run.
type Application struct {
	cfg    *config.Config
	logger *zap.Logger
	model  *session.Model
}

// New validates the configuration and the credential before any terminal
// state is touched, so auth failures abort without entering the alternate
// screen.
func New(cfg *config.Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	client, err := llm.NewClient(cfg.Model, logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		cfg:    cfg,
		logger: logger,
		model:  session.New(cfg, client, logger),
	}, nil
}

// Run drives the session to completion and applies its final disposition.
// bubbletea restores the terminal on every exit path, including errors and
// panics inside Update.
func (a *Application) Run() error {
	defer a.logger.Sync() //nolint:errcheck

	p := tea.NewProgram(a.model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := final.(*session.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	return m.Finish(os.Stdout)
}
