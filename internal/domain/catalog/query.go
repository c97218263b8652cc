package catalog

import "strings"

// StatusFilter selects products by their status
type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// CategoryAll matches every category
const CategoryAll = "all"

// Query holds the catalog list filter criteria. Zero value matches everything.
type Query struct {
	Search   string
	Category string
	Status   StatusFilter
}

// Matches reports whether a single product satisfies the query
func (q Query) Matches(p *Product) bool {
	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		name := strings.ToLower(p.Name)
		sku := strings.ToLower(p.SKU)
		if !strings.Contains(name, search) && !strings.Contains(sku, search) {
			return false
		}
	}

	if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
		return false
	}

	switch q.Status {
	case StatusFilterActive:
		if p.Status != ProductStatusActive {
			return false
		}
	case StatusFilterInactive:
		if p.Status != ProductStatusInactive {
			return false
		}
	}

	return true
}

// FilterProducts returns the products matching the query, preserving input
// order. The input slice is never modified; an empty query returns a copy of
// the input unchanged.
func FilterProducts(products []Product, q Query) []Product {
	result := make([]Product, 0, len(products))
	for i := range products {
		if q.Matches(&products[i]) {
			result = append(result, products[i])
		}
	}
	return result
}

// Categories returns the distinct category labels in first-seen order
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0)
	for i := range products {
		c := products[i].Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	return categories
}
