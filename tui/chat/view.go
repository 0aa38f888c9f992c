package chat

import (
	"fmt"
	"strings"

	"github.com/mmrchat/murmur/domain"
	"github.com/mmrchat/murmur/tui/common"
)

// View renders the chat timeline as a string.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("Murmur")
	badge := common.ChatBadgeStyle.Render("#" + m.chatID)
	b.WriteString(title + " " + badge + "\n\n")

	switch {
	case m.loading && len(m.messages) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading messages...\n", m.spinner.View()))
	case m.err != nil && len(m.messages) == 0:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.messages) == 0:
		b.WriteString("  No messages yet.\n")
	default:
		b.WriteString(m.renderList())
	}

	if m.loadingMore {
		b.WriteString("  " + m.spinner.View() + " loading older messages...\n")
	}
	b.WriteString(common.StatusBarStyle.Render("  ↑/↓ move · i who reacted · r refresh · q quit"))
	return b.String()
}

func (m Model) renderList() string {
	rows := m.visibleRows()
	end := m.startIndex + rows
	if end > len(m.messages) {
		end = len(m.messages)
	}
	start := m.startIndex
	if start > end {
		start = end
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderItem(m.messages[i], i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderItem(msg domain.Message, selected bool) string {
	author := common.AuthorStyle.Render("@" + msg.Author)
	if msg.IsOwn {
		author += common.OwnBadgeStyle.Render("(you)")
	}
	timestamp := common.TimestampStyle.Render(msg.CreatedAt.Format("Jan 02 15:04"))

	content := common.TruncateWidth(common.ClipLines(msg.Content, 2), m.contentWidth())

	meta := renderMeta(msg)
	item := fmt.Sprintf("%s  %s\n%s\n%s",
		author, timestamp, common.ContentStyle.Render(content), meta)

	if selected {
		return common.SelectedStyle.Width(m.cardWidth()).Render(item)
	}
	return common.UnselectedStyle.Width(m.cardWidth()).Render(item)
}

func renderMeta(msg domain.Message) string {
	parts := make([]string, 0, len(msg.Reactions)+1)
	for _, rc := range msg.Reactions {
		parts = append(parts, fmt.Sprintf("%s %d", rc.Kind, rc.Count))
	}
	if msg.SeenCount > 0 {
		parts = append(parts, fmt.Sprintf("✓ %d", msg.SeenCount))
	}
	if len(parts) == 0 {
		return common.MetadataStyle.Render("·")
	}
	return common.MetadataStyle.Render(strings.Join(parts, "  "))
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w < 44 {
		w = 44
	}
	return w
}

func (m Model) contentWidth() int {
	w := m.cardWidth() - 6
	if w < 20 {
		w = 20
	}
	return w
}

// visibleRows is the number of message cards that fit in the viewport.
// Each card renders five lines (three content rows plus the border).
func (m Model) visibleRows() int {
	reserved := 6
	h := m.height - reserved
	if h < 5 {
		return 1
	}
	rows := h / 5
	if rows < 1 {
		rows = 1
	}
	return rows
}
