// Package tui is the full-screen profile editor: a single bubbletea model
// over the store, with vim-style movement, a command palette, live view
// filters, and modal dialogs for every mutation. The editor holds no state
// the store cannot reconstruct; every change is written through and the
// caches reloaded.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"benv/pkg/config"
	"benv/pkg/logging"
	"benv/pkg/store"
)

var log = logging.GetLogger("tui")

// Run opens the editor over the given store and blocks until the user
// quits. The store must already be open; the caller keeps ownership.
func Run(st *store.Store, cfg *config.Config) error {
	m := newModel(st, cfg)
	if err := m.reload(); err != nil {
		return err
	}
	m.syncSelectedVar()

	log.Info().Str("profile", m.activeName).Msg("Starting TUI")
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if err == nil {
		log.Info().Msg("TUI closed")
	}
	return err
}
