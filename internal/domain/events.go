package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchCompleted   EventType = "SearchCompleted"
	EventResultCommitted   EventType = "ResultCommitted"
	EventDropdownCancelled EventType = "DropdownCancelled"
	EventCatalogLoaded     EventType = "CatalogLoaded"
	EventCatalogReloaded   EventType = "CatalogReloaded"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchCompletedEvent is emitted after a query has been matched and grouped
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	Counts     map[Category]int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// ResultCommittedEvent is emitted when the user commits to a dropdown row
type ResultCommittedEvent struct {
	Query  string
	Result SearchResult
}

func (e ResultCommittedEvent) Type() EventType { return EventResultCommitted }

// DropdownCancelledEvent is emitted when the user cancels with escape
type DropdownCancelledEvent struct {
	Query   string
	Blurred bool
}

func (e DropdownCancelledEvent) Type() EventType { return EventDropdownCancelled }

// CatalogLoadedEvent is emitted when catalogs are first materialized
type CatalogLoadedEvent struct {
	Machines int
	Products int
	Source   string
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogReloadedEvent is emitted when a watched catalog file changed and the engine was rebuilt
type CatalogReloadedEvent struct {
	Path     string
	Machines int
	Products int
}

func (e CatalogReloadedEvent) Type() EventType { return EventCatalogReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path         string
	MachinesPath string
	ProductsPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
