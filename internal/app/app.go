// Package app wires the store, the watcher and the UI model together and
// runs the terminal session.
package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bibtui/internal/backend"
	"bibtui/internal/logging/events"
	"bibtui/internal/store"
	"bibtui/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DBPath     string
	Tick       time.Duration
	EditKey    string
	SaveKey    string
	DiscardKey string
}

// Run bootstraps and executes the Bubble Tea program. Failing to open the
// store aborts startup; every later store failure surfaces inline in the
// session instead.
func Run(cfg Config) error {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	watcher := backend.NewWatcher(st, cfg.Tick)
	defer watcher.Stop()
	defer events.App.Stop()

	keys := ui.Keymap{EnterEdit: cfg.EditKey, ExitEdit: cfg.DiscardKey, Save: cfg.SaveKey}
	model := ui.NewModel(st, watcher, keys)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
