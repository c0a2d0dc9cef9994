package dropdown

import (
	"log"
	"strings"

	"headersearch/internal/catalog"
	"headersearch/internal/domain"
	"headersearch/internal/search"
)

// Navigator performs the page transition for a committed result
type Navigator interface {
	Navigate(destination string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(destination string)

func (f NavigatorFunc) Navigate(destination string) { f(destination) }

// Searcher produces the grouped dropdown content for a query
type Searcher interface {
	Search(query string) []domain.SearchResult
}

// Snapshot is the state after an event, for the caller to render
type Snapshot struct {
	State
	Phase Phase
	// Blur tells the caller to remove focus from the search input
	Blur bool
	// Committed is the result that was navigated to, if any
	Committed *domain.SearchResult
}

// Controller owns one dropdown's state. It is not safe for concurrent use;
// every call is expected from the UI's event loop.
type Controller struct {
	state    State
	searcher Searcher
	nav      Navigator
}

// NewController creates a controller in the Closed state
func NewController(searcher Searcher, nav Navigator) *Controller {
	return &Controller{
		state:    Initial(),
		searcher: searcher,
		nav:      nav,
	}
}

// NewCatalogController wires a controller directly to catalogs and a navigation table
func NewCatalogController(machines []domain.MachineRecord, products []domain.ProductRecord, targets []domain.NavigationTarget, nav Navigator) *Controller {
	engine := search.NewEngine(catalog.NewStore(machines, products), search.NewRouter(targets), nil)
	return NewController(engine, nav)
}

// Dispatch applies an event and runs its effect
func (c *Controller) Dispatch(ev Event) Snapshot {
	if qc, ok := ev.(QueryChanged); ok {
		qc.Results = nil
		if strings.TrimSpace(qc.Text) != "" && c.searcher != nil {
			qc.Results = c.searcher.Search(qc.Text)
		}
		ev = qc
	}

	next, eff := Reduce(c.state, ev)
	c.state = next

	if eff.Commit != nil {
		log.Printf("Dropdown: committing %s %q to %s", eff.Commit.Category, eff.Commit.SourceID, eff.Commit.Destination)
		if c.nav != nil {
			c.nav.Navigate(eff.Commit.Destination)
		}
	}

	return Snapshot{
		State:     c.state,
		Phase:     c.state.Phase(),
		Blur:      eff.Blur,
		Committed: eff.Commit,
	}
}

// QueryChange recomputes results for new input text
func (c *Controller) QueryChange(text string) Snapshot {
	return c.Dispatch(QueryChanged{Text: text})
}

// FocusGained reopens previously computed results, if any
func (c *Controller) FocusGained() Snapshot {
	return c.Dispatch(FocusGained{})
}

// ArrowDown moves focus down, stopping at the last row
func (c *Controller) ArrowDown() Snapshot {
	return c.Dispatch(ArrowDown{})
}

// ArrowUp moves focus up, back to the input after the first row
func (c *Controller) ArrowUp() Snapshot {
	return c.Dispatch(ArrowUp{})
}

// Confirm commits the focused row
func (c *Controller) Confirm() Snapshot {
	return c.Dispatch(Confirm{})
}

// PointerSelect commits the clicked row
func (c *Controller) PointerSelect(index int) Snapshot {
	return c.Dispatch(PointerSelect{Index: index})
}

// Cancel clears everything; on an already closed dropdown it also blurs the input
func (c *Controller) Cancel() Snapshot {
	return c.Dispatch(Cancel{})
}

// OutsideInteraction closes the dropdown but keeps query and results
func (c *Controller) OutsideInteraction() Snapshot {
	return c.Dispatch(OutsideInteraction{})
}

// Snapshot returns the current state without changing it
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{State: c.state, Phase: c.state.Phase()}
}
