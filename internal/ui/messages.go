package ui

import (
	"headersearch/internal/catalog"
	"headersearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// CatalogChangedMsg signals that a watched catalog file changed on disk
type CatalogChangedMsg struct {
	Path string
}

// catalogReloadedMsg contains the result of reloading the catalog
type catalogReloadedMsg struct {
	path  string
	store *catalog.Store
	err   error
}

// pagerMsg contains the result of showing a page in the pager
type pagerMsg struct {
	destination string
	err         error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
