package common

import (
	"strings"
	"testing"
)

func TestTruncateWidth(t *testing.T) {
	got := TruncateWidth("short\naveryveryverylongline", 10)
	lines := strings.Split(got, "\n")
	if lines[0] != "short" {
		t.Fatalf("short line must be untouched: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("long line must be clipped with ellipsis: %q", lines[1])
	}
	if got := TruncateWidth("anything", 0); got != "anything" {
		t.Fatalf("non-positive width must be a no-op: %q", got)
	}
}

func TestClipLines(t *testing.T) {
	in := "a\nb\nc"
	if got := ClipLines(in, 2); got != "a\nb" {
		t.Fatalf("unexpected clip: %q", got)
	}
	if got := ClipLines(in, 5); got != in {
		t.Fatalf("short text must be untouched: %q", got)
	}
	if got := ClipLines(in, 0); got != "" {
		t.Fatalf("zero lines must be empty: %q", got)
	}
}
