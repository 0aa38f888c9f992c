package chatwire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// conversationService implements app.ConversationService.
type conversationService struct {
	client *Client
}

// NewConversationService creates a ConversationService backed by the chat API.
func NewConversationService(client *Client) *conversationService {
	return &conversationService{client: client}
}

type wireConversation struct {
	ChatID string `json:"chat_id"`
}

func (s *conversationService) OpenDirect(ctx context.Context, userID string) (string, error) {
	form := url.Values{"user_id": {userID}}
	data, err := s.client.Post(ctx, "/api/v1/conversations/direct", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("opening direct conversation: %w", err)
	}

	var conv wireConversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return "", fmt.Errorf("parsing conversation: %w", err)
	}
	if conv.ChatID == "" {
		return "", fmt.Errorf("conversation response missing chat_id")
	}
	return conv.ChatID, nil
}
