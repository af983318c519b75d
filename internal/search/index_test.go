package search

import (
	"strings"
	"testing"

	"github.com/Paintersrp/stark/internal/notes"
)

func sample() []notes.Note {
	return []notes.Note{
		{ID: "a", Title: "Shopping", Content: "milk, eggs and a new reactor core", FolderID: "personal"},
		{ID: "b", Title: "Reactor design", Content: "palladium poisoning", FolderID: "work"},
		{ID: "c", Title: "", Content: "Nothing about it", FolderID: "work"},
	}
}

func TestSearchRanksTitlesFirst(t *testing.T) {
	idx := NewIndex(sample())

	results := idx.Search(Query{Term: "REACTOR"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if results[0].NoteID != "b" || results[0].MatchFrom != MatchTitle {
		t.Fatalf("expected title match first, got %+v", results[0])
	}
	if results[1].NoteID != "a" || results[1].MatchFrom != MatchContent {
		t.Fatalf("expected content match second, got %+v", results[1])
	}
	if !strings.Contains(results[1].Snippet, "reactor core") {
		t.Fatalf("expected snippet around the match, got %q", results[1].Snippet)
	}
}

func TestSearchFolderFilter(t *testing.T) {
	idx := NewIndex(sample())

	results := idx.Search(Query{Term: "reactor", Folder: "work"})
	if len(results) != 1 || results[0].NoteID != "b" {
		t.Fatalf("expected only the work note, got %+v", results)
	}

	if got := idx.Search(Query{Term: "reactor", Folder: notes.FolderAll}); len(got) != 2 {
		t.Fatalf("expected the catch-all folder to search everything, got %+v", got)
	}
}

func TestSearchMatchesUntitledPlaceholder(t *testing.T) {
	idx := NewIndex(sample())

	results := idx.Search(Query{Term: "untitled"})
	if len(results) != 1 || results[0].NoteID != "c" {
		t.Fatalf("expected the untitled note, got %+v", results)
	}
}

func TestSearchEmptyTerm(t *testing.T) {
	idx := NewIndex(sample())
	if got := idx.Search(Query{Term: "  "}); got != nil {
		t.Fatalf("expected no results, got %+v", got)
	}
}

func TestBodySnippetWindow(t *testing.T) {
	body := strings.Repeat("x", 60) + "needle" + strings.Repeat("y", 60)

	got := bodySnippet(body, 60, len("needle"))
	if !strings.HasPrefix(got, "…") || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipses on both sides, got %q", got)
	}
	if !strings.Contains(got, "needle") {
		t.Fatalf("expected the match in the snippet, got %q", got)
	}
}
