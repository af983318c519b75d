// Package search answers plain text queries over a snapshot of the notes.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/Paintersrp/stark/internal/notes"
)

const (
	MatchTitle   = "title"
	MatchContent = "content"
)

type document struct {
	note    notes.Note
	title   string
	content string
}

// Index stores lowered copies of the notes in board order.
type Index struct {
	docs []document
}

func NewIndex(list []notes.Note) *Index {
	idx := &Index{}
	idx.Build(list)
	return idx
}

// Build replaces the index contents.
func (idx *Index) Build(list []notes.Note) {
	idx.docs = make([]document, 0, len(list))
	for _, n := range list {
		idx.docs = append(idx.docs, document{
			note:    n,
			title:   strings.ToLower(n.DisplayTitle()),
			content: strings.ToLower(n.Content),
		})
	}
}

func (idx *Index) Len() int {
	return len(idx.docs)
}

// Search returns matches in board order. Title matches rank ahead of content
// matches. An empty term matches nothing.
func (idx *Index) Search(q Query) []Result {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	if term == "" {
		return nil
	}

	var byTitle, byContent []Result
	for _, doc := range idx.docs {
		if !doc.inFolder(q.Folder) {
			continue
		}

		if strings.Contains(doc.title, term) {
			byTitle = append(byTitle, Result{
				NoteID:    doc.note.ID,
				Title:     doc.note.DisplayTitle(),
				Snippet:   firstLine(doc.note.Content),
				MatchFrom: MatchTitle,
			})
			continue
		}

		if at := strings.Index(doc.content, term); at >= 0 {
			start := utf8.RuneCountInString(doc.content[:at])
			byContent = append(byContent, Result{
				NoteID:    doc.note.ID,
				Title:     doc.note.DisplayTitle(),
				Snippet:   bodySnippet(doc.note.Content, start, utf8.RuneCountInString(term)),
				MatchFrom: MatchContent,
			})
		}
	}

	return append(byTitle, byContent...)
}

func (d document) inFolder(folder string) bool {
	switch folder {
	case "", notes.FolderAll:
		return true
	default:
		return d.note.FolderID == folder
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return bodySnippet(line, 0, 0)
}

// bodySnippet cuts a window of runes around the match at index.
func bodySnippet(body string, index, termLen int) string {
	if termLen <= 0 {
		termLen = 1
	}

	runes := []rune(strings.ReplaceAll(body, "\n", " "))
	start := index
	end := index + termLen
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}

	const window = 40
	snippetStart := max(0, start-window)
	snippetEnd := min(len(runes), end+window)

	snippet := strings.TrimSpace(string(runes[snippetStart:snippetEnd]))
	if snippetStart > 0 {
		snippet = "…" + snippet
	}
	if snippetEnd < len(runes) {
		snippet = snippet + "…"
	}
	return snippet
}
