package chatwire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmrchat/murmur/domain"
	"github.com/mmrchat/murmur/infra/auth"
)

func TestMapMessages_MapsFields(t *testing.T) {
	svc := &messageService{currentUserID: "self-id"}
	in := []wireMessage{{
		ID:        "m1",
		ChatID:    "general",
		Content:   "hello",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Author:    wireUser{ID: "self-id", Username: "sam", DisplayName: ""},
		Reactions: []wireReactionCount{
			{Kind: "❤", Count: 3},
			{Kind: "", Count: 2},
			{Kind: "👍", Count: 0},
		},
		SeenCount: 7,
	}}

	got := svc.mapMessages(in)
	if len(got) != 1 {
		t.Fatalf("expected one mapped message")
	}
	m := got[0]
	if !m.IsOwn || m.ID != "m1" || m.Author != "sam" || m.SeenCount != 7 {
		t.Fatalf("unexpected mapping: %+v", m)
	}
	if len(m.Reactions) != 1 || m.Reactions[0].Kind != "❤" {
		t.Fatalf("blank or zero reaction tallies must be dropped: %#v", m.Reactions)
	}
}

func TestMapMessages_MissingOptionalFieldsStillMaps(t *testing.T) {
	svc := &messageService{}
	in := []wireMessage{{
		ID:        "m2",
		CreatedAt: "not-a-time",
		Author:    wireUser{ID: "u9", Username: "", DisplayName: "Dana"},
	}}
	got := svc.mapMessages(in)
	if len(got) != 1 {
		t.Fatalf("expected one mapped message")
	}
	if got[0].Author != "Dana" || got[0].IsOwn {
		t.Fatalf("unexpected mapping: %#v", got[0])
	}
	if len(got[0].Reactions) != 0 {
		t.Fatalf("expected no reactions: %#v", got[0].Reactions)
	}
}

func TestFetchPage_PassesBeforeID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := NewMessageService(NewClient(srv.URL, auth.StaticTokenProvider("tok")), "")
	if _, err := svc.FetchPage(context.Background(), "general", 20, "m40"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotQuery != "limit=20&before_id=m40" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}

func TestClient_MapsAuthAndNotFoundErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, auth.StaticTokenProvider("tok"))
	if _, err := c.Get(context.Background(), "/secret"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := c.Get(context.Background(), "/gone"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
