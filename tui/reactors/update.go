package reactors

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg, PageErrorMsg:
		return m.handlePageMsg(msg)

	case closeAnimatedMsg:
		return m.handleCloseAnimated(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.phase != phaseOpen {
		// Ignore input while the close animation runs.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if ids := m.ViewportIDs(); m.cursor < len(ids)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, m.maybeFetchMore()

	case key.Matches(msg, m.keys.NextFilter):
		m.cycleFilter(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevFilter):
		m.cycleFilter(-1)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		ids := m.ViewportIDs()
		if m.cursor < 0 || m.cursor >= len(ids) {
			return m, nil
		}
		return m.selectEntry(ids[m.cursor])

	case key.Matches(msg, m.keys.Close):
		return m.requestClose()
	}

	return m, nil
}

func (m *Model) ensureCursorVisible() {
	ids := m.ViewportIDs()
	if len(ids) == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(ids) {
		m.cursor = len(ids) - 1
	}
	rows := m.listHeight()
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	} else if m.cursor >= m.startIndex+rows {
		m.startIndex = m.cursor - rows + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}
