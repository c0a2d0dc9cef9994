package search

import (
	"strings"

	"headersearch/internal/catalog"
	"headersearch/internal/domain"
)

// Matcher finds candidate results for a query over a catalog store and a router
type Matcher struct {
	store  *catalog.Store
	router *Router
}

// NewMatcher creates a matcher. A nil router disables page suggestions.
func NewMatcher(store *catalog.Store, router *Router) *Matcher {
	if store == nil {
		store = catalog.NewStore(nil, nil)
	}
	return &Matcher{store: store, router: router}
}

// Match normalizes the records on the fly and matches query against them.
// Matcher.Match is the same algorithm over text computed once at load time.
func Match(query string, machines []domain.MachineRecord, products []domain.ProductRecord, router *Router) []domain.SearchResult {
	if strings.TrimSpace(query) == "" {
		return []domain.SearchResult{}
	}
	return NewMatcher(catalog.NewStore(machines, products), router).Match(query)
}

// Match returns the ungrouped candidates for query in discovery order:
// machines, then products, then pages. Pages are deduplicated by destination.
// Any non-empty query is matched literally; there is no minimum length.
func (m *Matcher) Match(query string) []domain.SearchResult {
	q := catalog.Fold(strings.TrimSpace(query))
	if q == "" {
		return []domain.SearchResult{}
	}

	results := make([]domain.SearchResult, 0)
	results = appendEntries(results, q, domain.CategoryMachine, m.store.MachineEntries())
	results = appendEntries(results, q, domain.CategoryProduct, m.store.ProductEntries())

	if m.router == nil {
		return results
	}

	seen := make(map[string]bool)
	for _, target := range m.router.Match(q) {
		if seen[target.Destination] {
			continue
		}
		seen[target.Destination] = true
		results = append(results, domain.SearchResult{
			Category:    domain.CategoryPage,
			SourceID:    target.Destination,
			Title:       target.Label,
			Destination: target.Destination,
		})
	}

	return results
}

func appendEntries(results []domain.SearchResult, q string, category domain.Category, entries []catalog.Entry) []domain.SearchResult {
	for _, e := range entries {
		if !strings.Contains(e.Text, q) {
			continue
		}
		results = append(results, domain.SearchResult{
			Category:    category,
			SourceID:    e.ID,
			Title:       e.Projection.Title,
			Subtitle:    e.Projection.Subtitle,
			Thumbnail:   e.Projection.Thumbnail,
			Destination: e.Projection.Destination,
		})
	}
	return results
}
