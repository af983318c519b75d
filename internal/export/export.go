// Package export writes notes out as markdown or HTML files.
package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/preview"
)

const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives a stable file name for n.
func Filename(n notes.Note, format string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(n.DisplayTitle()), "-"), "-")
	if slug == "" {
		slug = "note"
	}
	short := n.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%s.%s", slug, short, format)
}

// Exporter renders notes in one format.
type Exporter struct {
	format string
	md     goldmark.Markdown
}

func New(format string) (*Exporter, error) {
	switch format {
	case FormatMarkdown, FormatHTML:
	default:
		return nil, fmt.Errorf("unsupported export format %q, use %q or %q", format, FormatMarkdown, FormatHTML)
	}

	return &Exporter{
		format: format,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

// Render returns the exported document for n.
func (e *Exporter) Render(n notes.Note) ([]byte, error) {
	source := preview.Markdown(n)
	if e.format == FormatMarkdown {
		return []byte(source), nil
	}

	var body bytes.Buffer
	if err := e.md.Convert([]byte(source), &body); err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", n.ID, err)
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n", html.EscapeString(n.DisplayTitle()))
	fmt.Fprintf(&doc, "<body data-color=%q data-folder=%q>\n", string(n.Color), n.FolderID)
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.Bytes(), nil
}

// WriteAll renders every note into dir and returns the written paths.
func (e *Exporter) WriteAll(list []notes.Note, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	paths := make([]string, 0, len(list))
	for _, n := range list {
		data, err := e.Render(n)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, Filename(n, e.format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
