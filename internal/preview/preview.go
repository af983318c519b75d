// Package preview renders note content as styled markdown for the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/stark/internal/cache"
	"github.com/Paintersrp/stark/internal/notes"
)

const defaultCacheMB = 4

// Renderer turns notes into glamour output and remembers recent renders.
type Renderer struct {
	theme string
	cache *cache.LRUCache
}

func New(theme string) *Renderer {
	c, _ := cache.New(defaultCacheMB)
	return &Renderer{theme: theme, cache: c}
}

func (r *Renderer) SetTheme(theme string) {
	r.theme = theme
}

func (r *Renderer) style() string {
	if r.theme == "light" {
		return "light"
	}
	return "dracula"
}

// Markdown builds the document rendered for a note.
func Markdown(n notes.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", n.DisplayTitle())
	if !n.Date.IsZero() {
		fmt.Fprintf(&b, "_%s_\n\n", n.Date.Local().Format("Jan 2, 2006"))
	}
	b.WriteString(n.Content)
	b.WriteString("\n")
	return b.String()
}

// Render returns the styled note wrapped to width.
func (r *Renderer) Render(n notes.Note, width int) string {
	if width < 20 {
		width = 20
	}

	key := cache.PreviewKey(n.ID, n.Title+"\x00"+n.Content+"\x00"+n.Date.String(), width, r.theme)
	if out, ok := r.cache.Get(key); ok {
		return out
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style()),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return n.Content
	}

	out, err := renderer.Render(Markdown(n))
	if err != nil {
		return "Error rendering markdown"
	}

	r.cache.Put(key, out)
	return out
}

// Cached reports how many renders are held.
func (r *Renderer) Cached() int {
	return r.cache.Len()
}
