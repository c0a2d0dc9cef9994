package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Nav          lipgloss.Style
	NavActive    lipgloss.Style
	Prompt       lipgloss.Style
	PromptActive lipgloss.Style
	Heading      lipgloss.Style
	Row          lipgloss.Style
	RowFocused   lipgloss.Style
	Subtitle     lipgloss.Style
	Thumbnail    lipgloss.Style
	Rule         lipgloss.Style
	PageTitle    lipgloss.Style
	Section      lipgloss.Style
	Label        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	InStock      lipgloss.Style
	OutOfStock   lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Nav:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NavActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Underline(true),
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PromptActive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Heading:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Row:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RowFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Thumbnail:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Rule:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		PageTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Section:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		InStock:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		OutOfStock:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
