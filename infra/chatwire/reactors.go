package chatwire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/domain"
)

// reactorService implements app.ReactorService against the chat API.
type reactorService struct {
	client *Client
}

// NewReactorService creates a ReactorService backed by the chat API.
func NewReactorService(client *Client) *reactorService {
	return &reactorService{client: client}
}

// wireReactorPage mirrors the backend's reactor-page payload. The
// next_cursor field is omitted entirely on the last page.
type wireReactorPage struct {
	Entries     []wireReactorEntry `json:"entries"`
	SeenUserIDs []string           `json:"seen_user_ids"`
	NextCursor  string             `json:"next_cursor"`
}

type wireReactorEntry struct {
	UserID string `json:"user_id"`
	Kind   string `json:"kind"`
}

func (s *reactorService) LoadReactorsPage(ctx context.Context, chatID, messageID, cursor string, limit int) (app.ReactorPage, error) {
	path := fmt.Sprintf("/api/v1/chats/%s/messages/%s/reactors?limit=%d",
		url.PathEscape(chatID), url.PathEscape(messageID), limit)
	if cursor != "" {
		path += "&cursor=" + url.QueryEscape(cursor)
	}

	data, err := s.client.Get(ctx, path)
	if err != nil {
		return app.ReactorPage{}, fmt.Errorf("fetching reactors: %w", err)
	}

	var page wireReactorPage
	if err := json.Unmarshal(data, &page); err != nil {
		return app.ReactorPage{}, fmt.Errorf("parsing reactors: %w", err)
	}

	return mapReactorPage(page), nil
}

func mapReactorPage(in wireReactorPage) app.ReactorPage {
	entries := make([]domain.ReactionEntry, 0, len(in.Entries))
	for _, e := range in.Entries {
		if e.UserID == "" || e.Kind == "" {
			continue
		}
		entries = append(entries, domain.ReactionEntry{UserID: e.UserID, Kind: e.Kind})
	}
	seen := make([]string, 0, len(in.SeenUserIDs))
	for _, id := range in.SeenUserIDs {
		if id == "" {
			continue
		}
		seen = append(seen, id)
	}
	return app.ReactorPage{
		Entries:     entries,
		SeenUserIDs: seen,
		NextCursor:  in.NextCursor,
	}
}
