package reactors

import tea "github.com/charmbracelet/bubbletea"

// selectEntry captures the clicked user as the navigation target and
// starts the closing transition. Navigation itself is deferred until the
// transition finishes, so the visual close is never interrupted.
func (m Model) selectEntry(userID string) (Model, tea.Cmd) {
	if m.phase != phaseOpen {
		return m, nil
	}
	m.pendingNav = userID
	m.phase = phaseClosing
	m.closeSeq++
	return m, closeAnimCmd(m.closeSeq)
}

// requestClose starts the closing transition without a navigation target.
func (m Model) requestClose() (Model, tea.Cmd) {
	if m.phase != phaseOpen {
		return m, nil
	}
	m.phase = phaseClosing
	m.closeSeq++
	return m, closeAnimCmd(m.closeSeq)
}

// handleCloseAnimated completes the closing→closed transition: perform
// the deferred navigation if one was captured, notify the host that the
// overlay is gone, then clear the transient session state. Animation
// messages from an aborted close carry a stale CloseSeq and are dropped.
func (m Model) handleCloseAnimated(msg closeAnimatedMsg) (Model, tea.Cmd) {
	if m.phase != phaseClosing || msg.CloseSeq != m.closeSeq {
		return m, nil
	}
	target := m.pendingNav
	m.phase = phaseClosed
	m.pendingNav = ""
	m.activeKind = ""

	if target != "" {
		return m, tea.Sequence(
			func() tea.Msg { return OpenConversationMsg{UserID: target} },
			func() tea.Msg { return ClosedMsg{} },
		)
	}
	return m, func() tea.Msg { return ClosedMsg{} }
}
