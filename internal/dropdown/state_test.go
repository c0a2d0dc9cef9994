package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"headersearch/internal/domain"
)

func rows(n int) []domain.SearchResult {
	out := make([]domain.SearchResult, n)
	for i := range out {
		out[i] = domain.SearchResult{Category: domain.CategoryProduct, SourceID: string(rune('a' + i))}
	}
	return out
}

func TestReduceIsPure(t *testing.T) {
	start := State{Query: "x", Results: rows(2), IsOpen: true, FocusedIndex: 0, InputFocused: true}
	copyOfStart := start

	a, effA := Reduce(start, ArrowDown{})
	b, effB := Reduce(start, ArrowDown{})

	assert.Equal(t, a, b)
	assert.Equal(t, effA, effB)
	assert.Equal(t, copyOfStart, start)
	assert.Equal(t, 1, a.FocusedIndex)
}

func TestReduceNormalizesInconsistentInput(t *testing.T) {
	s, _ := Reduce(State{Query: "x", Results: rows(2), IsOpen: true, FocusedIndex: 9}, FocusGained{})

	assert.Equal(t, -1, s.FocusedIndex)

	s, _ = Reduce(State{Query: "", Results: rows(2), IsOpen: true, FocusedIndex: 1}, ArrowUp{})
	assert.False(t, s.IsOpen)
	assert.Equal(t, -1, s.FocusedIndex)
}

func TestReduceConfirmEffect(t *testing.T) {
	start := State{Query: "x", Results: rows(3), IsOpen: true, FocusedIndex: 2}

	next, eff := Reduce(start, Confirm{})

	if assert.NotNil(t, eff.Commit) {
		assert.Equal(t, "c", eff.Commit.SourceID)
	}
	assert.Equal(t, Initial(), next)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", OpenUnfocused.String())
	assert.Equal(t, "open-focused", OpenFocused.String())
}

func TestStateFocused(t *testing.T) {
	s := State{Query: "x", Results: rows(2), IsOpen: true, FocusedIndex: 1}

	r, ok := s.Focused()
	assert.True(t, ok)
	assert.Equal(t, "b", r.SourceID)

	s.FocusedIndex = -1
	_, ok = s.Focused()
	assert.False(t, ok)
}
