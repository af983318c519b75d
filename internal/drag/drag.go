// Package drag implements the two-phase pick-up and drop gesture used to
// reposition a note.
package drag

// Relocator commits the result of a drop.
type Relocator interface {
	Relocate(draggedID, targetID string) bool
	RelocateToEnd(draggedID string) bool
}

// Session holds the note currently being dragged, if any.
type Session struct {
	target  Relocator
	dragged string
}

func NewSession(target Relocator) *Session {
	return &Session{target: target}
}

func (s *Session) PickUp(id string) {
	s.dragged = id
}

func (s *Session) Dragging() (string, bool) {
	return s.dragged, s.dragged != ""
}

func (s *Session) Cancel() {
	s.dragged = ""
}

// DropOn moves the dragged note to targetID's position and ends the drag.
// It reports whether the collection changed.
func (s *Session) DropOn(targetID string) bool {
	dragged, ok := s.Dragging()
	s.dragged = ""
	if !ok || dragged == targetID {
		return false
	}
	return s.target.Relocate(dragged, targetID)
}

// DropAtEnd moves the dragged note to the end of the collection.
func (s *Session) DropAtEnd() bool {
	dragged, ok := s.Dragging()
	s.dragged = ""
	if !ok {
		return false
	}
	return s.target.RelocateToEnd(dragged)
}
