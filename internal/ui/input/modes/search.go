package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"headersearch/internal/dropdown"
	"headersearch/internal/ui/input/types"
)

// SearchMode is active while the header search input has focus.
// Unconsumed keys go to the shared text input.
type SearchMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model, keys types.KeyMap) *SearchMode {
	return &SearchMode{
		keys:      keys,
		textInput: ti,
	}
}

func (m *SearchMode) Name() string {
	return "search"
}

// Enter focuses the input without clearing it, so earlier results can reopen
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return []types.Action{types.DropdownAction{Event: dropdown.FocusGained{}}}
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.DropdownAction{Event: dropdown.ArrowUp{}}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.DropdownAction{Event: dropdown.ArrowDown{}}}, true
	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.DropdownAction{Event: dropdown.Confirm{}}}, true
	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{types.DropdownAction{Event: dropdown.Cancel{}}}, true
	case key.Matches(msg, m.keys.Leave):
		// Moving focus away counts as an interaction outside the search area
		return []types.Action{
			types.DropdownAction{Event: dropdown.OutsideInteraction{}},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		return nil, false
	}
}
