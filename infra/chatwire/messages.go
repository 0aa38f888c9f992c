package chatwire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/mmrchat/murmur/domain"
)

// messageService implements app.MessageService against the chat API.
type messageService struct {
	client        *Client
	currentUserID string // Set at wiring time to mark own messages.
}

// NewMessageService creates a MessageService backed by the chat API.
// Pass currentUserID to mark the user's own messages in the timeline.
func NewMessageService(client *Client, currentUserID string) *messageService {
	return &messageService{
		client:        client,
		currentUserID: currentUserID,
	}
}

// wireMessage is the subset of the backend's message entity we care about.
type wireMessage struct {
	ID        string              `json:"id"`
	ChatID    string              `json:"chat_id"`
	Content   string              `json:"content"`
	CreatedAt string              `json:"created_at"`
	Author    wireUser            `json:"author"`
	Reactions []wireReactionCount `json:"reactions"`
	SeenCount int                 `json:"seen_count"`
}

type wireUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type wireReactionCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

func (s *messageService) FetchRecent(ctx context.Context, chatID string, limit int) ([]domain.Message, error) {
	return s.fetch(ctx, chatID, limit, "")
}

func (s *messageService) FetchPage(ctx context.Context, chatID string, limit int, beforeID string) ([]domain.Message, error) {
	return s.fetch(ctx, chatID, limit, beforeID)
}

func (s *messageService) fetch(ctx context.Context, chatID string, limit int, beforeID string) ([]domain.Message, error) {
	path := fmt.Sprintf("/api/v1/chats/%s/messages?limit=%d", url.PathEscape(chatID), limit)
	if beforeID != "" {
		path += "&before_id=" + url.QueryEscape(beforeID)
	}

	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}

	var msgs []wireMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("parsing messages: %w", err)
	}

	return s.mapMessages(msgs), nil
}

func (s *messageService) mapMessages(in []wireMessage) []domain.Message {
	out := make([]domain.Message, 0, len(in))
	for _, wm := range in {
		createdAt, _ := time.Parse(time.RFC3339, wm.CreatedAt)

		author := wm.Author.DisplayName
		if author == "" {
			author = wm.Author.Username
		}

		out = append(out, domain.Message{
			ID:        wm.ID,
			ChatID:    wm.ChatID,
			AuthorID:  wm.Author.ID,
			Author:    author,
			Content:   wm.Content,
			CreatedAt: createdAt,
			Reactions: mapReactionCounts(wm.Reactions),
			SeenCount: wm.SeenCount,
			IsOwn:     s.currentUserID != "" && wm.Author.ID == s.currentUserID,
		})
	}
	return out
}

func mapReactionCounts(in []wireReactionCount) []domain.ReactionCount {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.ReactionCount, 0, len(in))
	for _, rc := range in {
		if rc.Kind == "" || rc.Count <= 0 {
			continue
		}
		out = append(out, domain.ReactionCount{Kind: rc.Kind, Count: rc.Count})
	}
	return out
}
