package reactors

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handlePageMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.fetching = false
		m.loadErr = nil
		m.mergePage(msg.Page)
		m.nextCursor = msg.Page.NextCursor
		m.hasMore = msg.Page.NextCursor != ""
		m.ensureCursorVisible()
		// A page full of already-known records can leave the selection
		// at the trailing edge; keep the chain going until it moves.
		return m, m.maybeFetchMore()

	case PageErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		// Leave hasMore and the materialized data untouched so the next
		// scroll-near-end event retries the same cursor.
		m.fetching = false
		m.loadErr = msg.Err
		return m, nil
	}

	return m, nil
}
