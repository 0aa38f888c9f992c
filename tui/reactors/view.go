package reactors

import (
	"fmt"
	"strings"

	"github.com/mmrchat/murmur/tui/common"
)

// View renders the reactors overlay as a string.
func (m Model) View() string {
	if m.phase == phaseClosed {
		return ""
	}

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Reactions") + "\n")

	if tabs := m.renderTabs(); tabs != "" {
		b.WriteString(tabs + "\n")
	}
	b.WriteString("\n")

	ids := m.ViewportIDs()
	switch {
	case m.fetching && len(ids) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading reactions...\n", m.spinner.View()))
	case m.loadErr != nil && len(ids) == 0:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.loadErr)))
		b.WriteString("\n\n  Scroll to retry.\n")
	case len(ids) == 0:
		b.WriteString("  Nobody here yet.\n")
	default:
		b.WriteString(m.renderRows(ids))
	}

	b.WriteString(m.renderFooter(len(ids)))

	out := b.String()
	if m.phase == phaseClosing {
		// Closing frame: input is ignored and the panel fades out.
		return common.FadedStyle.Render(out)
	}
	return out
}

func (m Model) renderRows(ids []string) string {
	rows := m.listHeight()
	end := m.startIndex + rows
	if end > len(ids) {
		end = len(ids)
	}
	start := m.startIndex
	if start > end {
		start = end
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(ids[i], i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

// listHeight is the number of entry rows that fit between the overlay
// chrome. Kept stable across loading-state changes so the list does not
// jump while pages arrive.
func (m Model) listHeight() int {
	chrome := 7 // title, tabs, blank, footer block
	h := m.height - chrome
	if h < 4 {
		h = 4
	}
	return h
}
