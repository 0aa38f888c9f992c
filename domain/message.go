package domain

import "time"

// Message is a single chat message from a conversation timeline.
type Message struct {
	ID        string
	ChatID    string
	AuthorID  string
	Author    string
	Content   string // Plain text
	CreatedAt time.Time
	Reactions []ReactionCount
	SeenCount int
	IsOwn     bool // True if the message belongs to the authenticated user
}

// HasReactions reports whether anyone reacted to the message.
func (m Message) HasReactions() bool {
	return len(m.Reactions) > 0
}

// TotalReactionCount returns the message's total reaction tally.
func (m Message) TotalReactionCount() int {
	return TotalReactions(m.Reactions)
}
