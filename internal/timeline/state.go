// Package timeline derives the two timeline views from the event list and
// the category visibility set. The builders are pure: they read the state
// and materialize view models, leaving DOM concerns to the client.
package timeline

import "lifeline/internal/store"

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

func ParseOrientation(s string) (Orientation, bool) {
	switch Orientation(s) {
	case Horizontal, Vertical:
		return Orientation(s), true
	}
	return "", false
}

// DefaultOrientation picks the initial view when no preference is persisted:
// vertical on small or touch viewports, horizontal otherwise.
func DefaultOrientation(smallViewport bool) Orientation {
	if smallViewport {
		return Vertical
	}
	return Horizontal
}

// State holds the client-side view state: the disposable event cache, the
// visibility set and the active orientation.
type State struct {
	Events      []store.Event
	Visible     map[string]struct{}
	Orientation Orientation
}

// NewState starts with every category visible.
func NewState(events []store.Event, categories []string) *State {
	visible := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		visible[c] = struct{}{}
	}
	return &State{
		Events:      events,
		Visible:     visible,
		Orientation: Horizontal,
	}
}

// SetOrientation transitions between the two view states. The inactive view
// is hidden, not destroyed, so toggling back loses nothing.
func (s *State) SetOrientation(o Orientation) {
	s.Orientation = o
}

// Replace swaps in a freshly fetched event list. The cache is replaced, not
// merged, so the state never diverges from the server across a mutation.
func (s *State) Replace(events []store.Event) {
	s.Events = events
}

// Toggle flips one category in or out of the visibility set.
func (s *State) Toggle(category string) {
	if _, ok := s.Visible[category]; ok {
		delete(s.Visible, category)
	} else {
		s.Visible[category] = struct{}{}
	}
}

// Hide removes a category from the visibility set.
func (s *State) Hide(category string) {
	delete(s.Visible, category)
}

// VisibleEvents filters by exact, case-sensitive category match, preserving
// storage order.
func (s *State) VisibleEvents() []store.Event {
	out := make([]store.Event, 0, len(s.Events))
	for _, e := range s.Events {
		if _, ok := s.Visible[e.Category]; ok {
			out = append(out, e)
		}
	}
	return out
}
