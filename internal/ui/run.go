package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/svandijk/watershed/internal/store"
	"github.com/svandijk/watershed/internal/util"
)

// Run boots the TUI program and blocks until it exits. db may be nil when
// persistence is disabled.
func Run(ctx context.Context, db *store.DB, cfg util.Config) error {
	m := initialModel(ctx, db, cfg)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
