package reactors

import (
	"reflect"
	"testing"

	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/domain"
)

func TestCandidateIDs_DedupesAndPreservesFirstOccurrence(t *testing.T) {
	entries := []domain.ReactionEntry{
		entry("u1", "❤"),
		entry("u2", "👍"),
		entry("u1", "👍"), // second reaction, same user
	}
	seen := []string{"u3", "u2"} // u2 also reacted, must not duplicate

	got := candidateIDs(entries, seen)
	want := []string{"u1", "u2", "u3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("candidate order: got %v want %v", got, want)
	}
}

func TestCandidateIDs_SeenOnlyUsersAppendAfterReactors(t *testing.T) {
	got := candidateIDs(nil, []string{"u9", "u8"})
	want := []string{"u9", "u8"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("seen-only order: got %v want %v", got, want)
	}
}

func TestCandidateIDs_Deterministic(t *testing.T) {
	entries := []domain.ReactionEntry{
		entry("b", "👍"), entry("a", "❤"), entry("c", "👍"), entry("a", "👍"),
	}
	seen := []string{"d", "b"}

	first := candidateIDs(entries, seen)
	for i := 0; i < 10; i++ {
		if got := candidateIDs(entries, seen); !reflect.DeepEqual(got, first) {
			t.Fatalf("order changed across identical calls: %v vs %v", got, first)
		}
	}
}

func TestMergePage_SkipsKnownRecords(t *testing.T) {
	m := openModel(&scriptedReactors{})
	page := app.ReactorPage{
		Entries:     []domain.ReactionEntry{entry("u1", "❤"), entry("u2", "👍")},
		SeenUserIDs: []string{"u3"},
	}
	if added := m.mergePage(page); added != 3 {
		t.Fatalf("first merge added %d records, want 3", added)
	}
	// Replaying the same page must be a no-op.
	if added := m.mergePage(page); added != 0 {
		t.Fatalf("replayed merge added %d records, want 0", added)
	}
	if got := m.ViewportIDs(); !reflect.DeepEqual(got, []string{"u1", "u2", "u3"}) {
		t.Fatalf("viewport after replay: got %v", got)
	}
}

func TestMergePage_SameUserDifferentKindIsNewRecord(t *testing.T) {
	m := openModel(&scriptedReactors{})
	m.mergePage(app.ReactorPage{Entries: []domain.ReactionEntry{entry("u1", "❤")}})
	if added := m.mergePage(app.ReactorPage{Entries: []domain.ReactionEntry{entry("u1", "👍")}}); added != 1 {
		t.Fatalf("distinct kind for same user added %d, want 1", added)
	}
	if got := m.ViewportIDs(); !reflect.DeepEqual(got, []string{"u1"}) {
		t.Fatalf("user must appear once in viewport: got %v", got)
	}
	if kinds := reactedKinds(m.entries)["u1"]; !kinds["❤"] || !kinds["👍"] {
		t.Fatalf("user kinds incomplete: %v", kinds)
	}
}
