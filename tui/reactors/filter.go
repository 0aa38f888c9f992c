package reactors

import "github.com/mmrchat/murmur/domain"

// FilterTab is one selectable reaction-kind tab.
type FilterTab struct {
	Kind  string
	Count int
}

// filterTabs returns per-kind tabs when the message carries enough
// reactions to justify filtering: at least minFilterTotal reactions in
// total and more than one distinct kind. Below that, the overlay shows
// a single combined list and no tab row.
func filterTabs(counts []domain.ReactionCount) []FilterTab {
	if len(counts) < 2 {
		return nil
	}
	if domain.TotalReactions(counts) < minFilterTotal {
		return nil
	}
	tabs := make([]FilterTab, 0, len(counts))
	for _, c := range counts {
		tabs = append(tabs, FilterTab{Kind: c.Kind, Count: c.Count})
	}
	return tabs
}

// projectIDs narrows candidates to users holding at least one reaction
// of the active kind, preserving candidate order. Seen-only users have
// no kinds and therefore never match.
func projectIDs(candidates []string, kinds map[string]map[string]bool, active string) []string {
	out := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if kinds[id][active] {
			out = append(out, id)
		}
	}
	return out
}

// cycleFilter moves the active kind forward or backward through the tab
// order, with the combined list ("") between the last and first tab.
// Re-projection is local; no fetch is ever issued on a filter change.
func (m *Model) cycleFilter(delta int) {
	tabs := m.Tabs()
	if len(tabs) == 0 {
		return
	}
	order := make([]string, 0, len(tabs)+1)
	order = append(order, "")
	for _, t := range tabs {
		order = append(order, t.Kind)
	}
	pos := 0
	for i, kind := range order {
		if kind == m.activeKind {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(order)) % len(order)
	m.activeKind = order[pos]
	m.cursor = 0
	m.startIndex = 0
}
