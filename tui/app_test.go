package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/domain"
	"github.com/mmrchat/murmur/tui/chat"
	"github.com/mmrchat/murmur/tui/reactors"
)

type stubMessages struct{}

func (stubMessages) FetchRecent(context.Context, string, int) ([]domain.Message, error) {
	return nil, nil
}
func (stubMessages) FetchPage(context.Context, string, int, string) ([]domain.Message, error) {
	return nil, nil
}

type stubReactors struct{}

func (stubReactors) LoadReactorsPage(context.Context, string, string, string, int) (app.ReactorPage, error) {
	return app.ReactorPage{}, nil
}

type stubDirectory struct{}

func (stubDirectory) Lookup(string) (domain.UserProfile, bool) { return domain.UserProfile{}, false }

type stubConversations struct {
	chatID string
	err    error
	lastID string
}

func (s *stubConversations) OpenDirect(_ context.Context, userID string) (string, error) {
	s.lastID = userID
	return s.chatID, s.err
}

func newTestApp(conversations *stubConversations) App {
	return NewApp(Deps{
		Messages:      stubMessages{},
		Reactors:      stubReactors{},
		Directory:     stubDirectory{},
		Conversations: conversations,
		ChatID:        "chat-1",
	})
}

func TestApp_ShowReactorsOpensOverlay(t *testing.T) {
	a := newTestApp(&stubConversations{})

	msg := domain.Message{ID: "m1", ChatID: "chat-1"}
	model, cmd := a.Update(chat.ShowReactorsMsg{Message: msg})
	a = model.(App)
	if a.active != reactorsView {
		t.Fatalf("overlay not activated")
	}
	if !a.reactors.IsOpen() {
		t.Fatalf("reactors model not opened")
	}
	if cmd == nil {
		t.Fatalf("expected eager fetch command")
	}
}

func TestApp_OpenConversationSwitchesChat(t *testing.T) {
	conversations := &stubConversations{chatID: "dm-7"}
	a := newTestApp(conversations)

	model, cmd := a.Update(reactors.OpenConversationMsg{UserID: "u1"})
	a = model.(App)
	if cmd == nil {
		t.Fatalf("expected conversation command")
	}

	model, _ = a.Update(cmd())
	a = model.(App)
	if conversations.lastID != "u1" {
		t.Fatalf("conversation opened for wrong user: %q", conversations.lastID)
	}
	if a.chat.ChatID() != "dm-7" {
		t.Fatalf("chat not switched: %q", a.chat.ChatID())
	}
	if a.active != chatView {
		t.Fatalf("chat view not reactivated")
	}
}

func TestApp_OpenConversationErrorKeepsView(t *testing.T) {
	conversations := &stubConversations{err: errors.New("offline")}
	a := newTestApp(conversations)

	model, cmd := a.Update(reactors.OpenConversationMsg{UserID: "u1"})
	a = model.(App)
	model, _ = a.Update(cmd())
	a = model.(App)

	if a.chat.ChatID() != "chat-1" {
		t.Fatalf("failed conversation must not switch chats")
	}
	if a.status == "" {
		t.Fatalf("failure must surface in the status line")
	}
}

func TestApp_ClosedReturnsToChat(t *testing.T) {
	a := newTestApp(&stubConversations{})
	model, _ := a.Update(chat.ShowReactorsMsg{Message: domain.Message{ID: "m1", ChatID: "chat-1"}})
	a = model.(App)

	model, _ = a.Update(reactors.ClosedMsg{})
	a = model.(App)
	if a.active != chatView {
		t.Fatalf("overlay close must return to chat view")
	}
}
