package drag_test

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Paintersrp/stark/internal/drag"
	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/storage"
)

type recorder struct {
	calls []string
}

func (r *recorder) Relocate(dragged, target string) bool {
	r.calls = append(r.calls, dragged+"->"+target)
	return true
}

func (r *recorder) RelocateToEnd(dragged string) bool {
	r.calls = append(r.calls, dragged+"->end")
	return true
}

func TestDropWithoutPickUpIsNoop(t *testing.T) {
	rec := &recorder{}
	s := drag.NewSession(rec)

	if s.DropOn("a") || s.DropAtEnd() {
		t.Fatal("expected drops without a dragged note to do nothing")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no relocations, got %v", rec.calls)
	}
}

func TestDropClearsDraggedNote(t *testing.T) {
	rec := &recorder{}
	s := drag.NewSession(rec)

	s.PickUp("a")
	if id, ok := s.Dragging(); !ok || id != "a" {
		t.Fatalf("expected a to be dragged, got %q", id)
	}

	if !s.DropOn("c") {
		t.Fatal("expected drop to relocate")
	}
	if _, ok := s.Dragging(); ok {
		t.Fatal("expected drag state to be cleared after drop")
	}

	s.PickUp("b")
	s.DropAtEnd()
	if _, ok := s.Dragging(); ok {
		t.Fatal("expected drag state to be cleared after drop at end")
	}

	if want := []string{"a->c", "b->end"}; !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
}

func TestDropOnSelfIsNoop(t *testing.T) {
	rec := &recorder{}
	s := drag.NewSession(rec)

	s.PickUp("a")
	if s.DropOn("a") {
		t.Fatal("expected drop on self to be a no-op")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no relocations, got %v", rec.calls)
	}
	if _, ok := s.Dragging(); ok {
		t.Fatal("expected drag state to be cleared")
	}
}

func TestCancel(t *testing.T) {
	rec := &recorder{}
	s := drag.NewSession(rec)

	s.PickUp("a")
	s.Cancel()
	if s.DropOn("b") {
		t.Fatal("expected drop after cancel to be a no-op")
	}
}

func TestDragAcrossRepository(t *testing.T) {
	store, err := storage.Open(storage.BackendFile, t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	repo := notes.Open(store, notes.WithUser("tony"), notes.WithRand(rand.New(rand.NewSource(7))))
	c := repo.CreateNote("", time.Time{})
	b := repo.CreateNote("", time.Time{})
	a := repo.CreateNote("", time.Time{})

	s := drag.NewSession(repo)
	s.PickUp(a.ID)
	s.DropOn(c.ID)

	var got []string
	for _, n := range repo.Notes() {
		got = append(got, n.ID)
	}
	if want := []string{b.ID, c.ID, a.ID}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
