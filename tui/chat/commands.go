package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchMessages(reqSeq int) tea.Cmd {
	svc := m.svc
	chatID := m.chatID
	return func() tea.Msg {
		msgs, err := svc.FetchRecent(context.Background(), chatID, defaultLimit)
		if err != nil {
			return MessagesErrorMsg{Err: err, ChatKey: chatID, ReqSeq: reqSeq}
		}
		return MessagesLoadedMsg{Messages: msgs, ChatKey: chatID, ReqSeq: reqSeq}
	}
}

func (m Model) fetchOlderMessages(reqSeq int) tea.Cmd {
	if m.loading || !m.hasMore || m.oldestID == "" {
		return nil
	}
	svc := m.svc
	chatID := m.chatID
	beforeID := m.oldestID
	return func() tea.Msg {
		msgs, err := svc.FetchPage(context.Background(), chatID, defaultLimit, beforeID)
		if err != nil {
			return MessagesPageErrorMsg{Err: err, ChatKey: chatID, ReqSeq: reqSeq}
		}
		return MessagesPageLoadedMsg{Messages: msgs, ChatKey: chatID, ReqSeq: reqSeq}
	}
}

// maybeFetchOlder starts a backward page fetch once the selection moves
// near the bottom of the loaded timeline.
func (m *Model) maybeFetchOlder() tea.Cmd {
	if m.loading || m.loadingMore || len(m.messages) == 0 {
		return nil
	}
	if !m.hasMore || m.oldestID == "" {
		return nil
	}
	if m.cursor < len(m.messages)-prefetchTrigger {
		return nil
	}
	m.loadingMore = true
	m.reqSeq++
	return m.fetchOlderMessages(m.reqSeq)
}
