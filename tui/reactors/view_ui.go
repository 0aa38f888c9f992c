package reactors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mmrchat/murmur/tui/common"
)

func (m Model) renderTabs() string {
	tabs := m.Tabs()
	if len(tabs) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(tabs)+1)
	allLabel := "all"
	if m.activeKind == "" {
		rendered = append(rendered, common.TabActiveStyle.Render(allLabel))
	} else {
		rendered = append(rendered, common.TabInactiveStyle.Render(allLabel))
	}
	for _, t := range tabs {
		label := fmt.Sprintf("%s %d", t.Kind, t.Count)
		if m.activeKind == t.Kind {
			rendered = append(rendered, common.TabActiveStyle.Render(label))
		} else {
			rendered = append(rendered, common.TabInactiveStyle.Render(label))
		}
	}
	return "  " + strings.Join(rendered, " ")
}

// renderRow renders one reactor row. A user whose profile is not in the
// directory snapshot still gets a row; only the detail degrades.
func (m Model) renderRow(userID string, selected bool) string {
	name := userID
	username := ""
	if m.directory != nil {
		if p, ok := m.directory.Lookup(userID); ok {
			name = p.Name()
			username = p.Username
		}
	}

	label := common.AuthorStyle.Render(name)
	if username != "" && username != name {
		label += " " + common.TimestampStyle.Render("@"+username)
	}
	if name == userID {
		label = common.TimestampStyle.Render(name) +
			common.MetadataStyle.Render(" (unknown user)")
	}

	marker := common.MetadataStyle.Render("✓ seen")
	if kinds := m.userKinds(userID); kinds != "" {
		marker = kinds
	}

	cursorMark := "  "
	if selected {
		cursorMark = common.AuthorStyle.Render("❯ ")
	}
	row := fmt.Sprintf("%s%s  %s", cursorMark, label, marker)
	return common.TruncateWidth(row, m.width-2)
}

// userKinds lists the reaction kinds a user sent, in a deterministic
// order, or empty for seen-only users.
func (m Model) userKinds(userID string) string {
	byUser := reactedKinds(m.entries)[userID]
	if len(byUser) == 0 {
		return ""
	}
	kinds := make([]string, 0, len(byUser))
	for k := range byUser {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return strings.Join(kinds, " ")
}

func (m Model) renderFooter(shown int) string {
	var b strings.Builder
	b.WriteString("\n")
	switch {
	case m.fetching && shown > 0:
		b.WriteString("  " + m.spinner.View() + " loading more...\n")
	case !m.hasMore && shown > 0:
		b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("  %d people", shown)) + "\n")
	default:
		b.WriteString("\n")
	}
	b.WriteString(common.StatusBarStyle.Render("  ↑/↓ move · tab filter · enter message · esc close"))
	return b.String()
}
