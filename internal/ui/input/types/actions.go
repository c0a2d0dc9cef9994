package types

import "headersearch/internal/dropdown"

// DropdownAction forwards an event to the dropdown controller
type DropdownAction struct {
	Event dropdown.Event
}

func (a DropdownAction) Type() string { return "dropdown" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// UpdateTextAction reports that the search input text changed
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// OpenPagerAction shows the current page in the pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// ReloadCatalogAction reloads the catalog files from disk
type ReloadCatalogAction struct{}

func (a ReloadCatalogAction) Type() string { return "reload_catalog" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
