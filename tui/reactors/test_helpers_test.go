package reactors

import (
	"context"

	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/domain"
)

// scriptedReactors returns its pages in order, one per call, and counts
// calls so tests can assert on fetch behavior.
type scriptedReactors struct {
	pages []app.ReactorPage
	err   error
	calls int
	// Arguments of the most recent call.
	lastCursor string
	lastLimit  int
}

func (s *scriptedReactors) LoadReactorsPage(_ context.Context, _, _ string, cursor string, limit int) (app.ReactorPage, error) {
	s.calls++
	s.lastCursor = cursor
	s.lastLimit = limit
	if s.err != nil {
		return app.ReactorPage{}, s.err
	}
	if len(s.pages) == 0 {
		return app.ReactorPage{}, nil
	}
	page := s.pages[0]
	s.pages = s.pages[1:]
	return page, nil
}

type stubDirectory map[string]domain.UserProfile

func (d stubDirectory) Lookup(userID string) (domain.UserProfile, bool) {
	p, ok := d[userID]
	return p, ok
}

func entry(userID, kind string) domain.ReactionEntry {
	return domain.ReactionEntry{UserID: userID, Kind: kind}
}

func openModel(svc app.ReactorService) Model {
	m := New(svc, stubDirectory{
		"u1": {ID: "u1", Username: "ada", DisplayName: "Ada"},
		"u2": {ID: "u2", Username: "ben"},
	})
	m, _ = m.Open("chat-1", "msg-1", nil)
	return m
}

// loadPage feeds one successful page through the update loop using the
// model's current request sequence.
func loadPage(m Model, page app.ReactorPage) Model {
	updated, _ := m.Update(PageLoadedMsg{Page: page, ReqSeq: m.reqSeq})
	return updated
}
