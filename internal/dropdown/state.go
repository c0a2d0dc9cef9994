package dropdown

import (
	"headersearch/internal/domain"
)

// Phase is the visible state of the dropdown
type Phase int

const (
	Closed Phase = iota
	OpenUnfocused
	OpenFocused
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case OpenUnfocused:
		return "open"
	case OpenFocused:
		return "open-focused"
	default:
		return "unknown"
	}
}

// State is the complete dropdown state. It is replaced as a whole by Reduce,
// never edited field by field. Results is shared, not copied, and must be
// treated as read-only.
type State struct {
	Query        string
	Results      []domain.SearchResult
	IsOpen       bool
	FocusedIndex int // -1 when no row has keyboard focus
	InputFocused bool
}

// Initial returns the closed, empty state
func Initial() State {
	return State{FocusedIndex: -1}
}

// Phase derives the visible phase from the state
func (s State) Phase() Phase {
	switch {
	case !s.IsOpen:
		return Closed
	case s.FocusedIndex >= 0:
		return OpenFocused
	default:
		return OpenUnfocused
	}
}

// Focused returns the row with keyboard focus
func (s State) Focused() (domain.SearchResult, bool) {
	if !s.IsOpen || s.FocusedIndex < 0 || s.FocusedIndex >= len(s.Results) {
		return domain.SearchResult{}, false
	}
	return s.Results[s.FocusedIndex], true
}

// canOpen reports whether there is something to show
func (s State) canOpen() bool {
	return s.Query != "" && len(s.Results) > 0
}

// normalize enforces the state invariants: the dropdown is only open with a
// query and results, and focus stays in [-1, len(Results)-1] and is -1 while closed.
func (s State) normalize() State {
	if s.IsOpen && !s.canOpen() {
		s.IsOpen = false
	}
	if !s.IsOpen {
		s.FocusedIndex = -1
	}
	if s.FocusedIndex >= len(s.Results) {
		s.FocusedIndex = len(s.Results) - 1
	}
	if s.FocusedIndex < -1 {
		s.FocusedIndex = -1
	}
	return s
}

// Effect is what the host must do after a transition
type Effect struct {
	// Commit is set when a row was chosen; its destination must be navigated to
	Commit *domain.SearchResult
	// Blur is set when the search input should give up focus
	Blur bool
}

// Reduce applies one event to a state. It is pure: the same inputs always
// give the same outputs and nothing outside the return values changes.
func Reduce(s State, ev Event) (State, Effect) {
	var eff Effect

	switch e := ev.(type) {
	case QueryChanged:
		s.Query = e.Text
		s.Results = e.Results
		s.InputFocused = true
		s.IsOpen = s.canOpen()
		s.FocusedIndex = -1

	case FocusGained:
		s.InputFocused = true
		if s.canOpen() {
			s.IsOpen = true
			s.FocusedIndex = -1
		}

	case ArrowDown:
		if !s.IsOpen {
			break
		}
		if s.FocusedIndex+1 < len(s.Results) {
			s.FocusedIndex++
		}

	case ArrowUp:
		if !s.IsOpen {
			break
		}
		if s.FocusedIndex > -1 {
			s.FocusedIndex--
		}

	case Confirm:
		if r, ok := s.Focused(); ok {
			eff.Commit = &r
			s = Initial()
		}

	case PointerSelect:
		// A click carries its own row and wins over keyboard focus
		if !s.IsOpen || e.Index < 0 || e.Index >= len(s.Results) {
			break
		}
		r := s.Results[e.Index]
		eff.Commit = &r
		s = Initial()

	case Cancel:
		if !s.IsOpen && s.InputFocused {
			eff.Blur = true
			s.InputFocused = false
		}
		s.Query = ""
		s.Results = nil
		s.IsOpen = false
		s.FocusedIndex = -1

	case OutsideInteraction:
		// Query and results survive so FocusGained can reopen them
		s.IsOpen = false
		s.FocusedIndex = -1
		s.InputFocused = false
	}

	return s.normalize(), eff
}
