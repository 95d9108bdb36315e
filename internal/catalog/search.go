package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/safar/go-store-assistant/internal/models"
)

// searchCategoryKeywords maps a category to query words that imply it.
// Order matters: the first category with a matching keyword wins.
var searchCategoryKeywords = []struct {
	category string
	keywords []string
}{
	{"electronics", []string{"iphone", "mobile", "phone", "laptop", "samsung", "oneplus", "electronics"}},
	{"grocery", []string{"rice", "pasta", "oil", "milk", "food", "grocery"}},
	{"home", []string{"sofa", "table", "furniture", "chair", "home"}},
	{"clothing", []string{"shirt", "jeans", "clothes", "tshirt"}},
	{"sports", []string{"bike", "yoga", "mat", "sports", "outdoor"}},
}

var searchPriceRe = regexp.MustCompile(`under?\s*₹?(\d+(?:,\d+)*)`)

// FilterProducts applies the storefront search: category filter, query
// category detection, optional "under ₹N" ceiling, text match over
// name, description and specifications, then relevance sort (exact name
// match first, then deals, then rating).
func FilterProducts(products []models.Product, searchQuery, selectedCategory string) []models.Product {
	filtered := make([]models.Product, len(products))
	copy(filtered, products)

	if selectedCategory != "all" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Category == selectedCategory
		})
	}

	query := strings.ToLower(strings.TrimSpace(searchQuery))
	if query == "" {
		return filtered
	}

	if selectedCategory == "all" {
		for _, entry := range searchCategoryKeywords {
			if containsAny(query, entry.keywords) {
				category := entry.category
				filtered = keep(filtered, func(p models.Product) bool {
					return p.Category == category
				})
				break
			}
		}
	}

	var maxPrice int64
	hasMaxPrice := false
	if m := searchPriceRe.FindStringSubmatch(query); m != nil {
		maxPrice = parsePrice(m[1])
		hasMaxPrice = true
	}

	filtered = keep(filtered, func(p models.Product) bool {
		matchesText := strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		if !matchesText {
			for _, spec := range p.Specifications {
				if strings.Contains(strings.ToLower(spec), query) {
					matchesText = true
					break
				}
			}
		}

		matchesPrice := !hasMaxPrice || p.Price <= maxPrice
		return matchesText && matchesPrice
	})

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]

		aExact := strings.Contains(strings.ToLower(a.Name), query)
		bExact := strings.Contains(strings.ToLower(b.Name), query)
		if aExact != bExact {
			return aExact
		}

		if a.HasDeal() != b.HasDeal() {
			return a.HasDeal()
		}

		return a.Rating > b.Rating
	})

	return filtered
}

// SearchSuggestions returns up to five completions for a partial query:
// catalog words extending the query, plus product names containing it.
func SearchSuggestions(query string, products []models.Product) []string {
	if len(query) < 2 {
		return nil
	}

	queryLower := strings.ToLower(query)
	seen := make(map[string]bool)
	var suggestions []string

	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, p := range products {
		for _, word := range strings.Fields(strings.ToLower(p.Name)) {
			if strings.HasPrefix(word, queryLower) && len(word) > len(queryLower) {
				add(word)
			}
		}
		if strings.Contains(strings.ToLower(p.Name), queryLower) {
			add(p.Name)
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := products[:0:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func parsePrice(digits string) int64 {
	var n int64
	for _, r := range digits {
		if r >= '0' && r <= '9' {
			n = n*10 + int64(r-'0')
		}
	}
	return n
}
