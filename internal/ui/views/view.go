package views

import (
	"strings"

	"headersearch/internal/domain"
)

// Screen rows of the fixed header area
const (
	HeaderLine  = 0
	InputLine   = 1
	DropdownTop = 2
	// FooterLines is the status line plus the help line
	FooterLines = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Targets      []domain.NavigationTarget
	CurrentPage  string
	InputView    string
	InputFocused bool
	Results      []domain.SearchResult
	IsOpen       bool
	FocusedIndex int
	Body         string
	Status       string
	StatusError  bool
	HelpView     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	dropdown *DropdownRenderer
	pages    *PageRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showThumbnails bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:   styles,
		dropdown: NewDropdownRenderer(styles, showThumbnails),
		pages:    NewPageRenderer(styles),
	}
}

// Pages returns the page body renderer
func (r *Renderer) Pages() *PageRenderer {
	return r.pages
}

// Render produces the complete view. The open dropdown is drawn over the
// top of the page body.
func (r *Renderer) Render(state ViewState) string {
	lines := []string{
		r.renderHeader(state),
		r.renderInput(state),
	}

	body := strings.Split(state.Body, "\n")
	if state.IsOpen {
		for i, l := range r.dropdown.Lines(state.Results, state.FocusedIndex, state.Width) {
			if i < len(body) {
				body[i] = l
			} else {
				body = append(body, l)
			}
		}
	}
	lines = append(lines, body...)

	status := r.styles.Status.Render(state.Status)
	if state.StatusError {
		status = r.styles.StatusError.Render(state.Status)
	}
	lines = append(lines, status, r.styles.Help.Render(state.HelpView))

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHeader(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("LARSEN ITALIANA"))
	for _, t := range state.Targets {
		b.WriteString("  ")
		if t.Destination == state.CurrentPage {
			b.WriteString(r.styles.NavActive.Render(t.Label))
		} else {
			b.WriteString(r.styles.Nav.Render(t.Label))
		}
	}
	return b.String()
}

func (r *Renderer) renderInput(state ViewState) string {
	prompt := r.styles.Prompt.Render("Buscar ▸ ")
	if state.InputFocused {
		prompt = r.styles.PromptActive.Render("Buscar ▸ ")
	}
	return prompt + state.InputView
}
