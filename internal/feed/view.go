package feed

import "fmt"

// DefaultPageSize is the number of cards shown before "Show More".
const DefaultPageSize = 6

// SkeletonCount is the number of placeholder cards while loading.
const SkeletonCount = 6

// State is the presenter's lifecycle state.
type State int

const (
	Loading State = iota
	Empty
	Populated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// View is the presenter state for one mounted feed. Transitions return a
// new View and never touch the network.
type View struct {
	State       State
	Projects    []Project
	PageSize    int
	ShowAll     bool
	UsingSample bool
	MountID     string
}

// NewView starts a feed in the Loading state.
func NewView(pageSize int) View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return View{State: Loading, PageSize: pageSize}
}

// Settle moves a loading view to Populated, or Empty when the result has
// no projects.
func (v View) Settle(r Result) View {
	v.Projects = r.Projects
	v.UsingSample = r.UsingSample
	v.ShowAll = false
	if len(r.Projects) == 0 {
		v.State = Empty
	} else {
		v.State = Populated
	}
	return v
}

// WithShowAll sets the expansion flag. Only meaningful when Populated.
func (v View) WithShowAll(all bool) View {
	if v.State == Populated {
		v.ShowAll = all
	}
	return v
}

// Toggle flips between the first page and the full list.
func (v View) Toggle() View {
	return v.WithShowAll(!v.ShowAll)
}

// VisibleCount is min(pageSize, total) collapsed, total expanded.
func (v View) VisibleCount() int {
	if v.State != Populated {
		return 0
	}
	if v.ShowAll || len(v.Projects) <= v.PageSize {
		return len(v.Projects)
	}
	return v.PageSize
}

// Visible returns the cards to render.
func (v View) Visible() []Project {
	return v.Projects[:v.VisibleCount()]
}

// Hidden is the number of cards behind "Show More".
func (v View) Hidden() int {
	if v.State != Populated || len(v.Projects) <= v.PageSize {
		return 0
	}
	return len(v.Projects) - v.PageSize
}

// HasToggle reports whether an expand/collapse control is rendered.
func (v View) HasToggle() bool {
	return v.Hidden() > 0
}

// ToggleLabel is the caption of the expand/collapse control.
func (v View) ToggleLabel() string {
	if v.ShowAll {
		return "Show Less"
	}
	return fmt.Sprintf("Show More (%d more)", v.Hidden())
}

// Skeletons yields SkeletonCount slots for the loading grid.
func (v View) Skeletons() []int {
	s := make([]int, SkeletonCount)
	for i := range s {
		s[i] = i
	}
	return s
}
