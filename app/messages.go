package app

import (
	"context"

	"github.com/mmrchat/murmur/domain"
)

// MessageService fetches messages from a chat timeline.
type MessageService interface {
	// FetchRecent returns the newest messages of a chat, newest first.
	FetchRecent(ctx context.Context, chatID string, limit int) ([]domain.Message, error)

	// FetchPage returns messages older than beforeID, newest first.
	FetchPage(ctx context.Context, chatID string, limit int, beforeID string) ([]domain.Message, error)
}
