package tui

import (
	"chainplan/internal/chain"
	"chainplan/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgPreviewReady carries the rendered content of every output and the
// cache holding the plans it was rendered from.
type MsgPreviewReady struct {
	Contents []string
	Cache    *chain.PlanCache
}

// MsgError indicates the preview could not be built.
type MsgError error

// MsgWritten indicates the chain was written.
type MsgWritten chain.Result

// MsgWriteFailed indicates writing stopped part way.
type MsgWriteFailed struct {
	Result chain.Result
	Err    error
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 8 // minus title, footer, borders
		if m.DetailsViewport.Height < 1 {
			m.DetailsViewport.Height = 1
		}
		return m, nil

	case MsgPreviewReady:
		m.Loading = false
		m.Contents = msg.Contents
		m.cache = msg.Cache
		m.showSelected()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case MsgWritten:
		m.Writing = false
		m.Written = true
		m.Result = chain.Result(msg)
		if m.quitAfterWrite {
			return m, tea.Quit
		}
		return m, nil

	case MsgWriteFailed:
		m.Writing = false
		m.Result = msg.Result
		m.WriteErr = msg.Err
		if m.quitAfterWrite {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.Writing {
				// Quit once the write result arrives.
				m.quitAfterWrite = true
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.showSelected()
			}
			return m, nil
		case "down", "j":
			if m.SelectedIdx < len(m.Chain.Links)-1 {
				m.SelectedIdx++
				m.showSelected()
			}
			return m, nil
		case "home", "g":
			m.SelectedIdx = 0
			m.showSelected()
			return m, nil
		case "end", "G":
			if len(m.Chain.Links) > 0 {
				m.SelectedIdx = len(m.Chain.Links) - 1
				m.showSelected()
			}
			return m, nil
		case "w":
			// One write per session.
			if m.Loading || m.Err != nil || m.Writing || m.Written || m.WriteErr != nil {
				return m, nil
			}
			m.Writing = true
			return m, WriteChainCmd(m.builder, m.Chain, m.cache)
		}
	}

	m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
	return m, cmd
}

func (m *AppModel) showSelected() {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Contents) {
		m.DetailsViewport.SetContent("")
		return
	}
	m.DetailsViewport.SetContent(m.Contents[m.SelectedIdx])
	m.DetailsViewport.GotoTop()
}

// LoadPreviewCmd renders every output in the background.
func LoadPreviewCmd(builder *chain.Builder, c model.Chain) tea.Cmd {
	return func() tea.Msg {
		contents, cache, err := builder.Preview(c)
		if err != nil {
			return MsgError(err)
		}
		return MsgPreviewReady{Contents: contents, Cache: cache}
	}
}

// WriteChainCmd writes the chain to disk from the plans cached by the preview.
func WriteChainCmd(builder *chain.Builder, c model.Chain, cache *chain.PlanCache) tea.Cmd {
	return func() tea.Msg {
		result, err := builder.WriteWith(c, cache)
		if err != nil {
			return MsgWriteFailed{Result: result, Err: err}
		}
		return MsgWritten(result)
	}
}
