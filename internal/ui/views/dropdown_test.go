package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"headersearch/internal/catalog"
	"headersearch/internal/domain"
)

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{Category: domain.CategoryMachine, SourceID: "a", Title: "CMS 530", Subtitle: "STOLL - Tejido"},
		{Category: domain.CategoryMachine, SourceID: "b", Title: "SSR112"},
		{Category: domain.CategoryProduct, SourceID: "c", Title: "Agujas", Thumbnail: "/img/agujas.png"},
		{Category: domain.CategoryPage, SourceID: "/marcas", Title: "Marcas"},
	}
}

func TestRowAtSkipsHeadings(t *testing.T) {
	results := sampleResults()

	// heading, a, b, heading, c, heading, /marcas, rule
	want := []int{-1, 0, 1, -1, 2, -1, 3, -1, -1}
	for line, idx := range want {
		assert.Equal(t, idx, RowAt(results, line), "line %d", line)
	}
	assert.Equal(t, -1, RowAt(results, -1))
}

func TestDropdownHeightMatchesLines(t *testing.T) {
	r := NewDropdownRenderer(NewStyles(), true)
	results := sampleResults()

	lines := r.Lines(results, 2, 60)

	assert.Len(t, lines, DropdownHeight(results))
	assert.Equal(t, 8, DropdownHeight(results))
	assert.Contains(t, lines[0], "Máquinas")
	assert.Contains(t, lines[3], "Productos")
	assert.Contains(t, lines[5], "Páginas")
	assert.Contains(t, lines[4], "›")
	for _, l := range lines {
		assert.NotContains(t, l, "\n")
	}
}

func TestDropdownEmpty(t *testing.T) {
	r := NewDropdownRenderer(NewStyles(), false)

	assert.Nil(t, r.Lines(nil, -1, 80))
	assert.Equal(t, 0, DropdownHeight(nil))
}

func TestRenderOverlaysDropdownOnBody(t *testing.T) {
	r := NewRenderer(false)
	body := strings.Repeat("cuerpo\n", 20)

	out := r.Render(ViewState{
		Width:        80,
		Height:       30,
		Body:         body,
		IsOpen:       true,
		Results:      sampleResults(),
		FocusedIndex: -1,
	})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[HeaderLine], "LARSEN ITALIANA")
	assert.Contains(t, lines[InputLine], "Buscar")
	assert.Contains(t, lines[DropdownTop], "Máquinas")
	assert.Contains(t, lines[DropdownTop+1], "CMS 530")
	assert.Contains(t, lines[DropdownTop+DropdownHeight(sampleResults())], "cuerpo")
}

func TestPagesRender(t *testing.T) {
	p := NewPageRenderer(NewStyles())
	yes := true
	store := catalog.NewStore(
		[]domain.MachineRecord{{ID: "cms530", Name: "CMS 530", Brand: "STOLL", InStock: &yes}},
		nil,
	)
	targets := []domain.NavigationTarget{
		{Destination: "/maquinas", Label: "Máquinas Industriales"},
		{Destination: "/marcas", Label: "Marcas"},
	}

	machines := p.Render("/maquinas", targets, store)
	assert.Contains(t, machines, "Máquinas Industriales")
	assert.Contains(t, machines, "CMS 530")
	assert.Contains(t, machines, "En stock")

	brands := p.Render("/marcas", targets, store)
	assert.Contains(t, brands, "SHIMA SEIKI")
	assert.Contains(t, brands, "1 en catálogo")

	assert.Contains(t, p.Render("/nosotros", targets, store), "1964")
	assert.Contains(t, p.Render("/cotizar", targets, store), "24 horas")
	assert.Contains(t, p.Render("/nada", targets, store), "Página no encontrada")
}
