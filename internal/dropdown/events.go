package dropdown

import "headersearch/internal/domain"

// Event is an input the dropdown reacts to
type Event interface {
	Type() string
}

// QueryChanged carries new input text. Results is filled in by the controller
// before the event is reduced.
type QueryChanged struct {
	Text    string
	Results []domain.SearchResult
}

func (e QueryChanged) Type() string { return "query_changed" }

// FocusGained is sent when the search input receives focus
type FocusGained struct{}

func (e FocusGained) Type() string { return "focus_gained" }

// ArrowDown moves keyboard focus to the next row
type ArrowDown struct{}

func (e ArrowDown) Type() string { return "arrow_down" }

// ArrowUp moves keyboard focus to the previous row, or back to the input
type ArrowUp struct{}

func (e ArrowUp) Type() string { return "arrow_up" }

// Confirm is the acceptance key
type Confirm struct{}

func (e Confirm) Type() string { return "confirm" }

// PointerSelect is a pointer click on a specific row
type PointerSelect struct {
	Index int
}

func (e PointerSelect) Type() string { return "pointer_select" }

// Cancel is the escape key
type Cancel struct{}

func (e Cancel) Type() string { return "cancel" }

// OutsideInteraction is a pointer interaction outside the search box and dropdown
type OutsideInteraction struct{}

func (e OutsideInteraction) Type() string { return "outside_interaction" }
