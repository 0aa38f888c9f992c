package reactors

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchPage(reqSeq int) tea.Cmd {
	svc := m.reactors
	chatID := m.chatID
	messageID := m.messageID
	cursor := m.nextCursor
	return func() tea.Msg {
		page, err := svc.LoadReactorsPage(context.Background(), chatID, messageID, cursor, pageLimit)
		if err != nil {
			return PageErrorMsg{Err: err, ReqSeq: reqSeq}
		}
		return PageLoadedMsg{Page: page, ReqSeq: reqSeq}
	}
}

// maybeFetchMore issues a backward-load request when the selection is
// near the trailing edge of the materialized list, more server-side data
// exists, and no fetch is already in flight.
func (m *Model) maybeFetchMore() tea.Cmd {
	if m.phase != phaseOpen || m.fetching || !m.hasMore {
		return nil
	}
	ids := m.ViewportIDs()
	if len(ids) > 0 && m.cursor < len(ids)-nearEndTrigger {
		return nil
	}
	m.fetching = true
	m.reqSeq++
	return m.fetchPage(m.reqSeq)
}

func closeAnimCmd(seq int) tea.Cmd {
	return tea.Tick(closeAnimTime, func(time.Time) tea.Msg {
		return closeAnimatedMsg{CloseSeq: seq}
	})
}
