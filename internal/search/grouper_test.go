package search

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"headersearch/internal/domain"
)

func result(c domain.Category, id string) domain.SearchResult {
	return domain.SearchResult{Category: c, SourceID: id, Title: id, Destination: "/" + id}
}

func categoriesOf(results []domain.SearchResult) []domain.Category {
	out := make([]domain.Category, len(results))
	for i, r := range results {
		out[i] = r.Category
	}
	return out
}

func TestGroupOrdersAndCaps(t *testing.T) {
	var in []domain.SearchResult
	for i := 0; i < 4; i++ {
		in = append(in, result(domain.CategoryPage, fmt.Sprintf("page%d", i)))
	}
	for i := 0; i < 7; i++ {
		in = append(in, result(domain.CategoryProduct, fmt.Sprintf("prod%d", i)))
		in = append(in, result(domain.CategoryMachine, fmt.Sprintf("mach%d", i)))
	}

	out := Group(in)

	assert.Len(t, out, 13)
	assert.Equal(t, "mach0", out[0].SourceID)
	assert.Equal(t, "mach4", out[4].SourceID)
	assert.Equal(t, "prod0", out[5].SourceID)
	assert.Equal(t, "prod4", out[9].SourceID)
	assert.Equal(t, "page0", out[10].SourceID)
	assert.Equal(t, "page2", out[12].SourceID)
}

func TestGroupDeduplicatesAndDropsUnknown(t *testing.T) {
	in := []domain.SearchResult{
		result(domain.CategoryPage, "marcas"),
		result(domain.CategoryPage, "marcas"),
		result("video", "x"),
		result(domain.CategoryMachine, "m1"),
	}

	out := Group(in)

	assert.Equal(t, []domain.Category{domain.CategoryMachine, domain.CategoryPage}, categoriesOf(out))
}

func TestGroupEmpty(t *testing.T) {
	assert.Empty(t, Group(nil))
	assert.NotNil(t, Group(nil))
}

func TestGroupProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cats := []domain.Category{domain.CategoryMachine, domain.CategoryProduct, domain.CategoryPage}

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(30)
		in := make([]domain.SearchResult, n)
		for i := range in {
			in[i] = result(cats[rng.Intn(len(cats))], fmt.Sprintf("id%d", rng.Intn(12)))
		}

		out := Group(in)

		// Idempotence
		assert.Equal(t, out, Group(out))

		// Caps
		counts := CountByCategory(out)
		assert.LessOrEqual(t, counts[domain.CategoryMachine], MaxMachineResults)
		assert.LessOrEqual(t, counts[domain.CategoryProduct], MaxProductResults)
		assert.LessOrEqual(t, counts[domain.CategoryPage], MaxPageResults)

		// Category order
		rank := map[domain.Category]int{domain.CategoryMachine: 0, domain.CategoryProduct: 1, domain.CategoryPage: 2}
		for i := 1; i < len(out); i++ {
			assert.LessOrEqual(t, rank[out[i-1].Category], rank[out[i].Category])
		}

		// Unique keys
		keys := make(map[string]bool)
		for _, r := range out {
			assert.False(t, keys[r.Key()])
			keys[r.Key()] = true
		}
	}
}
