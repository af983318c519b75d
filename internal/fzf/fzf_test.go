package fzf

import (
	"testing"

	"github.com/Paintersrp/stark/internal/notes"
)

func TestLabelIncludesFolderAndFlattenedContent(t *testing.T) {
	f := NewFuzzyFinder(
		[]notes.Note{{ID: "1", Title: "", Content: "line one\nline   two", FolderID: "work"}},
		func(id string) string { return map[string]string{"work": "Work"}[id] },
		"dark",
		"",
	)

	if got, want := f.Label(0), "Untitled Note [Work] line one line two"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRunWithoutNotesFails(t *testing.T) {
	f := NewFuzzyFinder(nil, nil, "dark", "")
	if _, err := f.Run(""); err == nil {
		t.Fatal("expected an error for an empty list")
	}
}
