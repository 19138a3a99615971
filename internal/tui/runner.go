package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cintel/penguins/internal/config"
	"github.com/cintel/penguins/internal/dashboard"
	"github.com/cintel/penguins/internal/dataset"
	"github.com/cintel/penguins/internal/logging"
)

// Sender is the part of tea.Program that outside goroutines use.
type Sender interface {
	Send(msg tea.Msg)
}

// ConfigHandler turns config reloads into program messages. It runs on
// the watcher goroutine and never touches the model directly. The watcher
// has already logged the outcome.
func ConfigHandler(s Sender, source string) func(*config.Config, error) {
	return func(cfg *config.Config, err error) {
		if err != nil {
			s.Send(ErrorMsg{Err: err})
			return
		}
		s.Send(SelectionMsg{Selection: cfg.Selection(), Source: source})
	}
}

// Run starts the dashboard TUI and blocks until the user quits or ctx is
// done.
func Run(ctx context.Context, data *dataset.Dataset, sel dashboard.Selection, opts Options) error {
	m, err := New(data, sel, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.WatchPath != "" {
		w, err := config.Watch(opts.WatchPath, ConfigHandler(p, opts.WatchPath))
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	logging.Info("dashboard started", "rows", data.Len(), "source", data.Source())
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
