package assistant

import (
	"regexp"
	"strings"

	"github.com/safar/go-store-assistant/internal/models"
)

// Signals are the structured values pulled out of one utterance. They
// are recomputed for every message and never cached.
type Signals struct {
	PriceCeiling    int64
	HasPriceCeiling bool
	Category        string
	HasCategory     bool
	Keywords        []string
	CartMatch       *models.CartItem
}

// priceCeilingRe recognizes "under 1,000" / "under ₹500" anywhere in
// the utterance; the trailing "r" of "under" is optional in the
// pattern, so "unde 500" matches too. Only the first match counts.
var priceCeilingRe = regexp.MustCompile(`under?\s*₹?(\d+(?:,\d+)*)`)

// categoryKeywords drives category detection. Order is the tie-break:
// when an utterance matches keywords from several categories, the
// first entry here wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"electronics", []string{"phone", "mobile", "laptop", "computer", "tablet", "tv", "electronics", "gadget"}},
	{"grocery", []string{"food", "grocery", "rice", "milk", "bread", "snacks", "eat", "drink"}},
	{"home", []string{"furniture", "home", "sofa", "table", "chair", "bed", "decor"}},
	{"clothing", []string{"clothes", "shirt", "pants", "dress", "shoes", "wear", "fashion"}},
}

// stopwords are the command words stripped before keyword matching.
var stopwords = []string{
	"find", "search", "show", "me", "look", "for",
	"add", "put", "to", "cart", "in", "my",
}

// ExtractSignals derives all signals for an utterance against the
// current cart snapshot. Pure: identical inputs give identical output.
func ExtractSignals(utterance string, cartItems []models.CartItem) Signals {
	input := strings.ToLower(utterance)

	s := Signals{
		Keywords: ExtractKeywords(input),
	}

	if ceiling, ok := ExtractPriceCeiling(input); ok {
		s.PriceCeiling = ceiling
		s.HasPriceCeiling = true
	}

	if category, ok := DetectCategory(input); ok {
		s.Category = category
		s.HasCategory = true
	}

	if item, ok := ResolveCartItem(input, cartItems); ok {
		match := item
		s.CartMatch = &match
	}

	return s
}

// ExtractPriceCeiling returns the ceiling from the first "under <n>"
// phrase, with thousands separators stripped. A malformed capture is
// reported as no ceiling rather than an error.
func ExtractPriceCeiling(input string) (int64, bool) {
	m := priceCeilingRe.FindStringSubmatch(strings.ToLower(input))
	if m == nil {
		return 0, false
	}

	var n int64
	sawDigit := false
	for _, r := range m[1] {
		if r < '0' || r > '9' {
			continue
		}
		sawDigit = true
		n = n*10 + int64(r-'0')
	}
	if !sawDigit {
		return 0, false
	}
	return n, true
}

// DetectCategory returns the first category whose trigger keywords
// appear in the utterance, using the fixed order of categoryKeywords.
func DetectCategory(input string) (string, bool) {
	input = strings.ToLower(input)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(input, keyword) {
				return entry.category, true
			}
		}
	}
	return "", false
}

// StripStopwords removes every stopword occurrence (as a substring,
// matching the storefront's behavior) and collapses whitespace.
func StripStopwords(input string) string {
	out := strings.ToLower(input)
	for _, w := range stopwords {
		out = strings.ReplaceAll(out, w, " ")
	}
	return strings.Join(strings.Fields(out), " ")
}

// ExtractKeywords returns the search keywords of an utterance: stopword
// stripped, whitespace split, tokens of length <= 2 discarded.
func ExtractKeywords(input string) []string {
	var keywords []string
	for _, word := range strings.Fields(StripStopwords(input)) {
		if len(word) > 2 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// ResolveCartItem finds the first cart line referenced by the
// utterance: the line's full name, its first word, or any of its words
// appearing in the utterance, or any utterance word appearing in the
// name. First match in cart order wins.
func ResolveCartItem(input string, cartItems []models.CartItem) (models.CartItem, bool) {
	input = strings.ToLower(input)
	inputWords := strings.Fields(input)

	for _, item := range cartItems {
		name := strings.ToLower(item.Product.Name)
		nameWords := strings.Fields(name)

		if strings.Contains(input, name) {
			return item, true
		}
		if len(nameWords) > 0 && strings.Contains(input, nameWords[0]) {
			return item, true
		}
		for _, w := range inputWords {
			if strings.Contains(name, w) {
				return item, true
			}
		}
	}
	return models.CartItem{}, false
}
