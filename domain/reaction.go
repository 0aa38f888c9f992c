package domain

// ReactionEntry records that one user attached one reaction kind to a
// message. A user may hold several entries on the same message, one per
// distinct kind.
type ReactionEntry struct {
	UserID string
	Kind   string // emoji identity, e.g. "❤" or "👍"
}

// ReactionCount is a per-kind tally as reported on the message record.
type ReactionCount struct {
	Kind  string
	Count int
}

// TotalReactions sums the per-kind tallies.
func TotalReactions(counts []ReactionCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
