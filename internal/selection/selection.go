// Package selection tracks the highlighted note and moves it across a grid
// whose column count is supplied by the renderer.
package selection

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Controller holds at most one selected note id. The zero value has nothing
// selected.
type Controller struct {
	selected string
}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) Select(id string) {
	c.selected = id
}

func (c *Controller) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

func (c *Controller) Clear() {
	c.selected = ""
}

func (c *Controller) IsSelected(id string) bool {
	return id != "" && c.selected == id
}

// Valid reports whether the selection is present in order. A stale selection
// is kept until the caller replaces it.
func (c *Controller) Valid(order []string) bool {
	return indexOf(order, c.selected) >= 0
}

// Navigate moves the selection one step in dir through order laid out in
// rows of columns. It returns whether the selection changed.
func (c *Controller) Navigate(dir Direction, order []string, columns int) bool {
	if len(order) == 0 {
		return false
	}

	if c.selected == "" {
		c.selected = order[0]
		return true
	}

	current := indexOf(order, c.selected)
	if current < 0 {
		return false
	}

	if columns < 1 {
		columns = 1
	}

	target := current
	switch dir {
	case Up:
		target = current - columns
	case Down:
		target = current + columns
	case Left:
		target = current - 1
	case Right:
		target = current + 1
	}
	target = clamp(target, 0, len(order)-1)

	if target == current {
		return false
	}

	c.selected = order[target]
	return true
}

func indexOf(order []string, id string) int {
	if id == "" {
		return -1
	}
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
