package search

import (
	"headersearch/internal/domain"
)

// Per-category caps of the dropdown
const (
	MaxMachineResults = 5
	MaxProductResults = 5
	MaxPageResults    = 3
)

// Limit returns the cap for a category, zero for unknown categories
func Limit(c domain.Category) int {
	switch c {
	case domain.CategoryMachine:
		return MaxMachineResults
	case domain.CategoryProduct:
		return MaxProductResults
	case domain.CategoryPage:
		return MaxPageResults
	default:
		return 0
	}
}

// Group partitions results by category, keeps the first entries of each
// partition up to its cap and concatenates machines, products, pages.
// Relative order inside a partition is preserved and repeated
// (category, source) pairs keep their first occurrence. Group(Group(x)) == Group(x).
func Group(results []domain.SearchResult) []domain.SearchResult {
	partitions := make(map[domain.Category][]domain.SearchResult, len(domain.Categories))
	seen := make(map[string]bool, len(results))

	for _, r := range results {
		limit := Limit(r.Category)
		if limit == 0 || len(partitions[r.Category]) >= limit {
			continue
		}
		key := r.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		partitions[r.Category] = append(partitions[r.Category], r)
	}

	grouped := make([]domain.SearchResult, 0, len(seen))
	for _, c := range domain.Categories {
		grouped = append(grouped, partitions[c]...)
	}
	return grouped
}

// CountByCategory counts results per category
func CountByCategory(results []domain.SearchResult) map[domain.Category]int {
	counts := make(map[domain.Category]int, len(domain.Categories))
	for _, r := range results {
		counts[r.Category]++
	}
	return counts
}
