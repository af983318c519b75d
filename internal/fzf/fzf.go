package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/preview"
)

var ErrNoSelection = errors.New("no note selected")

// FuzzyFinder picks one note from a list with a rendered preview.
type FuzzyFinder struct {
	Header   string
	notes    []notes.Note
	folders  func(string) string
	renderer *preview.Renderer
}

// NewFuzzyFinder searches list. folderName resolves folder ids for the item
// labels and may be nil.
func NewFuzzyFinder(list []notes.Note, folderName func(string) string, theme, header string) *FuzzyFinder {
	if folderName == nil {
		folderName = func(id string) string { return id }
	}
	return &FuzzyFinder{
		Header:   header,
		notes:    list,
		folders:  folderName,
		renderer: preview.New(theme),
	}
}

// Run opens the finder, seeded with query, and returns the chosen note.
func (f *FuzzyFinder) Run(query string) (notes.Note, error) {
	if len(f.notes) == 0 {
		return notes.Note{}, fmt.Errorf("no notes to search")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return f.Label(i)
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return notes.Note{}, ErrNoSelection
		}
		return notes.Note{}, fmt.Errorf("error selecting note: %w", err)
	}

	return f.notes[idx], nil
}

// Label is the searchable line for the note at i.
func (f *FuzzyFinder) Label(i int) string {
	n := f.notes[i]
	content := strings.Join(strings.Fields(n.Content), " ")
	return fmt.Sprintf("%s [%s] %s", n.DisplayTitle(), f.folders(n.FolderID), content)
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}
	return f.renderer.Render(f.notes[i], w-4)
}
