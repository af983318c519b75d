package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/stark/internal/notes"
)

func TestMarkdownUsesDisplayTitle(t *testing.T) {
	md := Markdown(notes.Note{Content: "body", Date: time.Date(2024, 5, 4, 10, 0, 0, 0, time.Local)})

	if !strings.HasPrefix(md, "# Untitled Note\n") {
		t.Fatalf("expected untitled heading, got %q", md)
	}
	if !strings.Contains(md, "May 4, 2024") || !strings.Contains(md, "body") {
		t.Fatalf("expected date and content, got %q", md)
	}
}

func TestRenderCachesByContent(t *testing.T) {
	r := New("dark")
	n := notes.Note{ID: "a", Title: "Arc Reactor", Content: "Palladium core"}

	first := r.Render(n, 60)
	if !strings.Contains(first, "Palladium") {
		t.Fatalf("expected content in render, got %q", first)
	}
	if r.Render(n, 60) != first || r.Cached() != 1 {
		t.Fatalf("expected a cache hit, have %d entries", r.Cached())
	}

	n.Content = "Vibranium core"
	r.Render(n, 60)
	if r.Cached() != 2 {
		t.Fatalf("expected edited content to render again, have %d entries", r.Cached())
	}

	r.SetTheme("light")
	r.Render(n, 60)
	if r.Cached() != 3 {
		t.Fatalf("expected theme change to render again, have %d entries", r.Cached())
	}
}
