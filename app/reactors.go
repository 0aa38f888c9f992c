package app

import (
	"context"

	"github.com/mmrchat/murmur/domain"
)

// ReactorPage is one backward page of reactor data for a message:
// explicit reaction entries plus the ids of users who only viewed it.
type ReactorPage struct {
	Entries     []domain.ReactionEntry
	SeenUserIDs []string
	NextCursor  string // Empty when the source is exhausted.
}

// ReactorService loads who reacted to or viewed a message.
type ReactorService interface {
	// LoadReactorsPage fetches one page of reactors, older entries each
	// call. Pass an empty cursor for the first page.
	LoadReactorsPage(ctx context.Context, chatID, messageID, cursor string, limit int) (ReactorPage, error)
}
