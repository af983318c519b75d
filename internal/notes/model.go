// Package notes owns the ordered note and folder collections of a workspace
// and every mutation applied to them.
package notes

import (
	"time"

	"github.com/Paintersrp/stark/internal/constants"
)

type Color string

const (
	Blue   Color = "blue"
	Green  Color = "green"
	Amber  Color = "amber"
	Red    Color = "red"
	Purple Color = "purple"
)

// Palette is the fixed set of card colors a new note draws from.
var Palette = []Color{Blue, Green, Amber, Red, Purple}

func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

const (
	IconLayers    = "layers"
	IconCalendar  = "calendar"
	IconUser      = "user"
	IconBriefcase = "briefcase"
	IconFolder    = "folder"
)

const (
	// FolderAll is the catch-all view that lists every note.
	FolderAll = "all"
	// FolderCalendar lists the notes dated on the selected day.
	FolderCalendar = "calendar"
)

// IsProtected reports whether the folder can never be renamed away or deleted.
func IsProtected(id string) bool {
	return id == FolderAll || id == FolderCalendar
}

type Note struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Color    Color     `json:"color"`
	Date     time.Time `json:"date"`
	FolderID string    `json:"folderId"`
}

// DisplayTitle is the title shown on cards and in listings.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return constants.UntitledNote
	}
	return n.Title
}

// Normalized returns the note as it should be saved from the editor.
func (n Note) Normalized() Note {
	n.Title = n.DisplayTitle()
	return n
}

type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Glyph maps the folder icon tag to the symbol drawn in the sidebar.
func (f Folder) Glyph() string {
	switch f.Icon {
	case IconLayers:
		return "≡"
	case IconCalendar:
		return "▦"
	case IconUser:
		return "◉"
	case IconBriefcase:
		return "◼"
	default:
		return "▸"
	}
}

// DefaultFolders is the folder slot written on first run.
func DefaultFolders() []Folder {
	return []Folder{
		{ID: FolderAll, Name: "All Notes", Icon: IconLayers},
		{ID: FolderCalendar, Name: "Calendar", Icon: IconCalendar},
		{ID: "personal", Name: "Personal", Icon: IconUser},
		{ID: "work", Name: "Work", Icon: IconBriefcase},
	}
}

func sampleNotes(now time.Time, newID func() string) []Note {
	return []Note{
		{
			ID:       newID(),
			Title:    "Welcome to Stark Notes",
			Content:  "Swipe, drag, and organize your notes like Tony Stark would.",
			Color:    Blue,
			Date:     now,
			FolderID: FolderAll,
		},
		{
			ID:       newID(),
			Title:    "Keyboard Shortcuts",
			Content:  "Press '?' to view all available shortcuts.",
			Color:    Amber,
			Date:     now,
			FolderID: FolderAll,
		},
	}
}

// SameDay compares two instants by local calendar day.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
