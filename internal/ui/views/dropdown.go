package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"headersearch/internal/domain"
)

// DropdownRenderer draws the grouped result list under the search input.
// Every heading and row takes exactly one line so pointer positions map
// back to rows with RowAt.
type DropdownRenderer struct {
	styles         *Styles
	showThumbnails bool
}

func NewDropdownRenderer(styles *Styles, showThumbnails bool) *DropdownRenderer {
	return &DropdownRenderer{
		styles:         styles,
		showThumbnails: showThumbnails,
	}
}

// Lines renders the dropdown, highlighting the row at focused (-1 for none)
func (r *DropdownRenderer) Lines(results []domain.SearchResult, focused, width int) []string {
	if len(results) == 0 {
		return nil
	}
	if width <= 0 {
		width = 80
	}
	clip := lipgloss.NewStyle().MaxWidth(width)

	lines := make([]string, 0, DropdownHeight(results))
	var current domain.Category
	for i, res := range results {
		if i == 0 || res.Category != current {
			current = res.Category
			lines = append(lines, clip.Render(r.styles.Heading.Render(" "+current.Label())))
		}
		lines = append(lines, clip.Render(r.row(res, i == focused)))
	}
	lines = append(lines, r.styles.Rule.Render(strings.Repeat("─", width)))
	return lines
}

func (r *DropdownRenderer) row(res domain.SearchResult, focused bool) string {
	marker := "   "
	if focused {
		marker = " › "
	}

	var b strings.Builder
	b.WriteString(marker)
	if r.showThumbnails {
		if res.Thumbnail != "" {
			b.WriteString(r.styles.Thumbnail.Render("▪ "))
		} else {
			b.WriteString("  ")
		}
	}

	title := res.Title
	if focused {
		title = r.styles.RowFocused.Render(title)
	} else {
		title = r.styles.Row.Render(title)
	}
	b.WriteString(title)

	if res.Subtitle != "" {
		b.WriteString("  ")
		b.WriteString(r.styles.Subtitle.Render(res.Subtitle))
	}
	return b.String()
}

// DropdownHeight is the number of lines Lines produces for results
func DropdownHeight(results []domain.SearchResult) int {
	if len(results) == 0 {
		return 0
	}
	return len(results) + groupCount(results) + 1
}

// RowAt maps a line offset from the top of the dropdown to a result index.
// Headings, the closing rule and lines outside the dropdown give -1.
func RowAt(results []domain.SearchResult, line int) int {
	if line < 0 {
		return -1
	}
	y := 0
	var current domain.Category
	for i, res := range results {
		if i == 0 || res.Category != current {
			current = res.Category
			if y == line {
				return -1
			}
			y++
		}
		if y == line {
			return i
		}
		y++
	}
	return -1
}

func groupCount(results []domain.SearchResult) int {
	n := 0
	for i, res := range results {
		if i == 0 || res.Category != results[i-1].Category {
			n++
		}
	}
	return n
}
