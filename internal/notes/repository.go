package notes

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Paintersrp/stark/internal/constants"
	"github.com/Paintersrp/stark/internal/selection"
	"github.com/Paintersrp/stark/internal/storage"
)

var (
	ErrEmptyFolderName = errors.New("Folder name cannot be empty")
	ErrNoteNotFound    = errors.New("note not found")
	ErrAmbiguousID     = errors.New("note id is ambiguous")
	ErrFolderNotFound  = errors.New("folder not found")
)

type Direction int

const (
	Up Direction = iota
	Down
)

// Repository is the single owner of a workspace's notes and folders. Every
// mutation is persisted through the store before it returns.
type Repository struct {
	store *storage.Store
	log   zerolog.Logger

	notes   []Note
	folders []Folder

	active      string
	sel         *selection.Controller
	pendingEdit string

	rand    *rand.Rand
	now     func() time.Time
	newID   func() string
	samples bool
}

type Option func(*Repository)

// WithRand sets the source used to pick note colors.
func WithRand(r *rand.Rand) Option {
	return func(repo *Repository) { repo.rand = r }
}

func WithClock(now func() time.Time) Option {
	return func(repo *Repository) { repo.now = now }
}

func WithIDFunc(fn func() string) Option {
	return func(repo *Repository) { repo.newID = fn }
}

// WithSelection shares a selection controller with the caller.
func WithSelection(c *selection.Controller) Option {
	return func(repo *Repository) { repo.sel = c }
}

func WithLogger(log zerolog.Logger) Option {
	return func(repo *Repository) { repo.log = log }
}

// WithUser skips the sample notes when somebody is logged in.
func WithUser(name string) Option {
	return func(repo *Repository) { repo.samples = strings.TrimSpace(name) == "" }
}

// Open loads both collections from the store, writing the seeds on first run.
func Open(store *storage.Store, opts ...Option) *Repository {
	repo := &Repository{
		store:   store,
		log:     zerolog.Nop(),
		active:  FolderAll,
		sel:     selection.New(),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		newID:   uuid.NewString,
		samples: true,
	}
	for _, opt := range opts {
		opt(repo)
	}

	repo.load()
	return repo
}

func (r *Repository) load() {
	r.folders = storage.Load(r.store, constants.FoldersSlot, []Folder(nil))
	if len(r.folders) == 0 {
		r.folders = DefaultFolders()
		r.saveFolders()
	}

	r.notes = storage.Load(r.store, constants.NotesSlot, []Note(nil))
	if len(r.notes) == 0 && r.samples {
		r.notes = sampleNotes(r.now(), r.newID)
		r.saveNotes()
		r.log.Info().Int("count", len(r.notes)).Msg("seeded sample notes")
	}
	if r.notes == nil {
		r.notes = []Note{}
	}

	if r.Folder(r.active) == nil && !IsProtected(r.active) {
		r.active = FolderAll
	}
}

// Reload drops the mirrored slots and reads both collections again.
func (r *Repository) Reload() {
	r.store.Invalidate(constants.NotesSlot)
	r.store.Invalidate(constants.FoldersSlot)

	r.folders = storage.Load(r.store, constants.FoldersSlot, DefaultFolders())
	r.notes = storage.Load(r.store, constants.NotesSlot, []Note{})

	if r.Folder(r.active) == nil && !IsProtected(r.active) {
		r.active = FolderAll
	}
	r.log.Debug().Int("notes", len(r.notes)).Int("folders", len(r.folders)).Msg("reloaded collections")
}

func (r *Repository) saveNotes() {
	storage.Save(r.store, constants.NotesSlot, r.notes)
}

func (r *Repository) saveFolders() {
	storage.Save(r.store, constants.FoldersSlot, r.folders)
}

func (r *Repository) Selection() *selection.Controller {
	return r.sel
}

func (r *Repository) noteIndex(id string) int {
	for i, n := range r.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) folderIndex(id string) int {
	for i, f := range r.folders {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// CreateNote inserts an empty note at the front, selects it and marks it as
// waiting to be opened in the editor.
func (r *Repository) CreateNote(activeFolderID string, date time.Time) Note {
	if activeFolderID == "" {
		activeFolderID = FolderAll
	}
	if date.IsZero() {
		date = r.now()
	}

	note := Note{
		ID:       r.uniqueID(),
		Color:    Palette[r.rand.Intn(len(Palette))],
		Date:     date,
		FolderID: activeFolderID,
	}

	r.notes = append([]Note{note}, r.notes...)
	r.saveNotes()

	r.sel.Select(note.ID)
	r.pendingEdit = note.ID

	r.log.Debug().Str("note", note.ID).Str("folder", note.FolderID).Msg("note created")
	return note
}

func (r *Repository) uniqueID() string {
	for {
		id := r.newID()
		if id != "" && r.noteIndex(id) < 0 {
			return id
		}
	}
}

// PendingEdit reports the note created most recently that has not yet been
// opened for editing.
func (r *Repository) PendingEdit() (string, bool) {
	return r.pendingEdit, r.pendingEdit != ""
}

// ConsumePendingEdit returns and clears the pending edit.
func (r *Repository) ConsumePendingEdit() (string, bool) {
	id, ok := r.PendingEdit()
	r.pendingEdit = ""
	return id, ok
}

// UpdateNote replaces the stored note with the same id.
func (r *Repository) UpdateNote(note Note) bool {
	i := r.noteIndex(note.ID)
	if i < 0 {
		return false
	}

	r.notes[i] = note
	r.saveNotes()
	return true
}

func (r *Repository) DeleteNote(id string) bool {
	i := r.noteIndex(id)
	if i < 0 {
		return false
	}

	r.notes = append(r.notes[:i:i], r.notes[i+1:]...)
	r.saveNotes()

	if r.sel.IsSelected(id) {
		r.sel.Clear()
	}
	if r.pendingEdit == id {
		r.pendingEdit = ""
	}

	r.log.Debug().Str("note", id).Msg("note deleted")
	return true
}

// MoveNote reassigns the note's folder. The folder is not required to exist.
func (r *Repository) MoveNote(noteID, folderID string) bool {
	i := r.noteIndex(noteID)
	if i < 0 {
		return false
	}

	r.notes[i].FolderID = folderID
	r.saveNotes()
	return true
}

// Reorder swaps the note with its neighbour in the full collection.
func (r *Repository) Reorder(noteID string, dir Direction) bool {
	i := r.noteIndex(noteID)
	if i < 0 {
		return false
	}

	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j >= len(r.notes) {
		return false
	}

	r.notes[i], r.notes[j] = r.notes[j], r.notes[i]
	r.saveNotes()
	return true
}

// Relocate moves dragged to the index target held before dragged was taken
// out.
func (r *Repository) Relocate(draggedID, targetID string) bool {
	if draggedID == targetID {
		return false
	}

	from := r.noteIndex(draggedID)
	to := r.noteIndex(targetID)
	if from < 0 || to < 0 {
		return false
	}

	dragged := r.notes[from]
	rest := append(r.notes[:from:from], r.notes[from+1:]...)

	if to > len(rest) {
		to = len(rest)
	}
	out := make([]Note, 0, len(r.notes))
	out = append(out, rest[:to]...)
	out = append(out, dragged)
	out = append(out, rest[to:]...)

	r.notes = out
	r.saveNotes()
	return true
}

func (r *Repository) RelocateToEnd(draggedID string) bool {
	from := r.noteIndex(draggedID)
	if from < 0 {
		return false
	}

	dragged := r.notes[from]
	r.notes = append(append(r.notes[:from:from], r.notes[from+1:]...), dragged)
	r.saveNotes()
	return true
}

// Filter projects the notes visible in a folder view. The calendar view
// matches by day, the catch-all view returns everything.
func (r *Repository) Filter(activeFolderID string, selectedDay time.Time) []Note {
	switch activeFolderID {
	case "", FolderAll:
		return r.Notes()
	case FolderCalendar:
		return r.NotesOn(selectedDay)
	}

	out := []Note{}
	for _, n := range r.notes {
		if n.FolderID == activeFolderID {
			out = append(out, n)
		}
	}
	return out
}

// NotesOn returns the notes dated on the same local day as day.
func (r *Repository) NotesOn(day time.Time) []Note {
	out := []Note{}
	for _, n := range r.notes {
		if SameDay(n.Date, day) {
			out = append(out, n)
		}
	}
	return out
}

func (r *Repository) Lookup(id string) (Note, bool) {
	i := r.noteIndex(id)
	if i < 0 {
		return Note{}, false
	}
	return r.notes[i], true
}

// Resolve finds the note whose id is ref or starts with ref.
func (r *Repository) Resolve(ref string) (Note, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Note{}, ErrNoteNotFound
	}
	if n, ok := r.Lookup(ref); ok {
		return n, nil
	}

	var found []Note
	for _, n := range r.notes {
		if strings.HasPrefix(n.ID, ref) {
			found = append(found, n)
		}
	}

	switch len(found) {
	case 0:
		return Note{}, fmt.Errorf("%w: %q", ErrNoteNotFound, ref)
	case 1:
		return found[0], nil
	default:
		return Note{}, fmt.Errorf("%w: %q matches %d notes", ErrAmbiguousID, ref, len(found))
	}
}

func (r *Repository) Notes() []Note {
	return append([]Note{}, r.notes...)
}

func (r *Repository) Folders() []Folder {
	return append([]Folder{}, r.folders...)
}

// Folder returns a copy of the folder with id, or nil.
func (r *Repository) Folder(id string) *Folder {
	i := r.folderIndex(id)
	if i < 0 {
		return nil
	}
	f := r.folders[i]
	return &f
}

// FolderName resolves a folder id for display, falling back to the raw id
// for dangling references.
func (r *Repository) FolderName(id string) string {
	if f := r.Folder(id); f != nil {
		return f.Name
	}
	return id
}

// FindFolder matches ref against folder ids, then case-insensitively against
// names.
func (r *Repository) FindFolder(ref string) (Folder, error) {
	ref = strings.TrimSpace(ref)
	if f := r.Folder(ref); f != nil {
		return *f, nil
	}
	for _, f := range r.folders {
		if strings.EqualFold(f.Name, ref) {
			return f, nil
		}
	}
	return Folder{}, fmt.Errorf("%w: %q", ErrFolderNotFound, ref)
}

func (r *Repository) CreateFolder(name string) (Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Folder{}, ErrEmptyFolderName
	}

	folder := Folder{ID: r.newFolderID(), Name: name, Icon: IconFolder}
	r.folders = append(r.folders, folder)
	r.saveFolders()

	r.log.Debug().Str("folder", folder.ID).Msg("folder created")
	return folder, nil
}

func (r *Repository) newFolderID() string {
	for {
		id := r.newID()
		if id != "" && r.folderIndex(id) < 0 && !IsProtected(id) {
			return id
		}
	}
}

func (r *Repository) RenameFolder(id, name string) bool {
	name = strings.TrimSpace(name)
	i := r.folderIndex(id)
	if name == "" || i < 0 {
		return false
	}

	r.folders[i].Name = name
	r.saveFolders()
	return true
}

// DeleteFolder removes an unprotected folder. Notes keep their folder id.
func (r *Repository) DeleteFolder(id string) bool {
	if IsProtected(id) {
		return false
	}

	i := r.folderIndex(id)
	if i < 0 {
		return false
	}

	r.folders = append(r.folders[:i:i], r.folders[i+1:]...)
	r.saveFolders()

	if r.active == id {
		r.active = FolderAll
	}

	r.log.Debug().Str("folder", id).Msg("folder deleted")
	return true
}

func (r *Repository) ActiveFolder() string {
	return r.active
}

func (r *Repository) SetActiveFolder(id string) {
	if id == "" {
		id = FolderAll
	}
	r.active = id
}
