package tui

import (
	"chainplan/internal/chain"
	"chainplan/internal/model"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Chain    model.Chain
	Contents []string // Rendered output content, one per link
	Loading  bool
	Err      error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Write State
	Writing  bool
	Written  bool
	Result   chain.Result
	WriteErr error

	// Components
	DetailsViewport viewport.Model

	builder        *chain.Builder
	cache          *chain.PlanCache
	quitAfterWrite bool
}

// InitialModel returns the initial state for previewing c.
func InitialModel(c model.Chain, builder *chain.Builder) AppModel {
	return AppModel{
		Chain:           c,
		Loading:         true,
		SelectedIdx:     0,
		DetailsViewport: viewport.New(0, 0),
		builder:         builder,
	}
}

// Init loads the preview of every output.
func (m AppModel) Init() tea.Cmd {
	return LoadPreviewCmd(m.builder, m.Chain)
}

// Failed reports whether the session ended with an error the caller must
// surface.
func (m AppModel) Failed() error {
	if m.Err != nil {
		return m.Err
	}
	return m.WriteErr
}
