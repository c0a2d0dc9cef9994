package search

import (
	"log"

	"headersearch/internal/catalog"
	"headersearch/internal/domain"
	"headersearch/internal/eventbus"
)

// Engine runs the full search pipeline: match, then group
type Engine struct {
	matcher *Matcher
	router  *Router
	store   *catalog.Store
	bus     eventbus.EventBus
}

// NewEngine creates an engine over store and router. bus may be nil.
func NewEngine(store *catalog.Store, router *Router, bus eventbus.EventBus) *Engine {
	return &Engine{
		matcher: NewMatcher(store, router),
		router:  router,
		store:   store,
		bus:     bus,
	}
}

// Search returns the grouped, capped dropdown content for query
func (e *Engine) Search(query string) []domain.SearchResult {
	candidates := e.matcher.Match(query)
	results := Group(candidates)

	if query != "" {
		log.Printf("Search completed for '%s': %d candidates, %d shown", query, len(candidates), len(results))
	}

	if e.bus != nil && len(candidates) > 0 {
		e.bus.Publish(domain.SearchCompletedEvent{
			Query:      query,
			MatchCount: len(results),
			Counts:     CountByCategory(results),
		})
	}

	return results
}

// Store returns the catalog the engine searches
func (e *Engine) Store() *catalog.Store {
	return e.store
}

// Router returns the navigation table the engine suggests from
func (e *Engine) Router() *Router {
	return e.router
}
