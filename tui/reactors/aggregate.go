package reactors

import (
	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/domain"
)

// candidateIDs merges reacting user ids (in entry order) with seen-only
// user ids appended, removing duplicates while preserving each id's
// first occurrence. The output order is a pure function of the inputs.
func candidateIDs(entries []domain.ReactionEntry, seenIDs []string) []string {
	out := make([]string, 0, len(entries)+len(seenIDs))
	seen := make(map[string]struct{}, len(entries)+len(seenIDs))
	for _, e := range entries {
		if _, ok := seen[e.UserID]; ok {
			continue
		}
		seen[e.UserID] = struct{}{}
		out = append(out, e.UserID)
	}
	for _, id := range seenIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// reactedKinds indexes the distinct reaction kinds each user holds.
// Users present only in the seen set have no entry here.
func reactedKinds(entries []domain.ReactionEntry) map[string]map[string]bool {
	kinds := make(map[string]map[string]bool)
	for _, e := range entries {
		byUser := kinds[e.UserID]
		if byUser == nil {
			byUser = make(map[string]bool, 2)
			kinds[e.UserID] = byUser
		}
		byUser[e.Kind] = true
	}
	return kinds
}

// entryKey identifies one (user, kind) pair for merge deduplication.
func entryKey(e domain.ReactionEntry) string {
	return e.UserID + "\x00" + e.Kind
}

// mergePage folds one fetched page into the materialized state. Records
// already present are skipped, so replaying a page is a no-op and a
// superseded fetch can never corrupt the list.
func (m *Model) mergePage(p app.ReactorPage) (added int) {
	for _, e := range p.Entries {
		k := entryKey(e)
		if _, ok := m.entryKeys[k]; ok {
			continue
		}
		m.entryKeys[k] = struct{}{}
		m.entries = append(m.entries, e)
		added++
	}
	for _, id := range p.SeenUserIDs {
		if _, ok := m.seenKeys[id]; ok {
			continue
		}
		m.seenKeys[id] = struct{}{}
		m.seenIDs = append(m.seenIDs, id)
		added++
	}
	return added
}
