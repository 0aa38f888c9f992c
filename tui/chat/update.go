package chat

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

	case MessagesLoadedMsg, MessagesErrorMsg, MessagesPageLoadedMsg, MessagesPageErrorMsg:
		return m.handleLoadingMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.reqSeq++
		return m, m.fetchMessages(m.reqSeq)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.messages)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, m.maybeFetchOlder()

	case key.Matches(msg, m.keys.Reactors), key.Matches(msg, m.keys.Enter):
		sel, ok := m.SelectedMessage()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return ShowReactorsMsg{Message: sel} }
	}

	return m, nil
}

func (m Model) handleLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MessagesLoadedMsg:
		if msg.ReqSeq != m.reqSeq || msg.ChatKey != m.chatID {
			return m, nil
		}
		m.messages = msg.Messages
		m.loading = false
		m.loadingMore = false
		m.err = nil
		m.cursor = 0
		m.startIndex = 0
		m.oldestID = m.lastMessageID()
		m.hasMore = len(msg.Messages) == defaultLimit
		return m, nil

	case MessagesErrorMsg:
		if msg.ReqSeq != m.reqSeq || msg.ChatKey != m.chatID {
			return m, nil
		}
		m.loading = false
		m.loadingMore = false
		m.err = msg.Err
		return m, nil

	case MessagesPageLoadedMsg:
		if msg.ReqSeq != m.reqSeq || msg.ChatKey != m.chatID {
			return m, nil
		}
		m.loadingMore = false
		m.err = nil
		existing := make(map[string]struct{}, len(m.messages))
		for _, mm := range m.messages {
			existing[mm.ID] = struct{}{}
		}
		added := 0
		for _, mm := range msg.Messages {
			if _, ok := existing[mm.ID]; ok {
				continue
			}
			m.messages = append(m.messages, mm)
			added++
		}
		m.oldestID = m.lastMessageID()
		m.hasMore = len(msg.Messages) == defaultLimit && added > 0
		m.ensureCursorVisible()
		return m, nil

	case MessagesPageErrorMsg:
		if msg.ReqSeq != m.reqSeq || msg.ChatKey != m.chatID {
			return m, nil
		}
		m.loadingMore = false
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) lastMessageID() string {
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1].ID
}

func (m *Model) ensureCursorVisible() {
	if len(m.messages) == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.messages) {
		m.cursor = len(m.messages) - 1
	}
	rows := m.visibleRows()
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	} else if m.cursor >= m.startIndex+rows {
		m.startIndex = m.cursor - rows + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}
