package app

import "context"

// ConversationService opens conversations on the chat backend.
type ConversationService interface {
	// OpenDirect opens (or creates) a direct conversation with the user
	// and returns its chat ID.
	OpenDirect(ctx context.Context, userID string) (string, error)
}
