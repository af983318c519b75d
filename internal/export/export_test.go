package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/stark/internal/notes"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		note notes.Note
		want string
	}{
		{notes.Note{ID: "0123456789", Title: "Mark II: Flight Test"}, "mark-ii-flight-test-01234567.md"},
		{notes.Note{ID: "abc", Title: ""}, "untitled-note-abc.md"},
		{notes.Note{ID: "abc", Title: "???"}, "note-abc.md"},
	}

	for _, tt := range tests {
		if got := Filename(tt.note, FormatMarkdown); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("pdf"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestWriteAllHTML(t *testing.T) {
	e, err := New(FormatHTML)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	list := []notes.Note{
		{ID: "n1", Title: "Suits <v2>", Content: "- repulsors\n- flight", Color: notes.Red, FolderID: "work"},
	}

	paths, err := e.WriteAll(list, dir)
	if err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected one file, got %v", paths)
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	out := string(data)
	for _, want := range []string{"<title>Suits &lt;v2&gt;</title>", "<li>repulsors</li>", `data-color="red"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in export:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownIsSource(t *testing.T) {
	e, err := New(FormatMarkdown)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	data, err := e.Render(notes.Note{ID: "n", Title: "Plain", Content: "**bold**"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(data) != "# Plain\n\n**bold**\n" {
		t.Fatalf("unexpected markdown %q", data)
	}
}
