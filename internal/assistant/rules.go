package assistant

import (
	"fmt"
	"strings"

	"github.com/safar/go-store-assistant/internal/models"
	"github.com/safar/go-store-assistant/internal/money"
)

// Request is one utterance to classify, together with the cart
// snapshot it should be interpreted against.
type Request struct {
	Utterance string
	Cart      []models.CartItem
}

// Response is the classifier output: exactly one reply, zero or more
// offered actions. AutoSearch, when non-empty, is a search the caller
// should run immediately (the general-search rule fires it when no
// catalog entry matches).
type Response struct {
	Intent     string
	Reply      string
	Actions    []Action
	AutoSearch string
}

// rule is one entry of the intent cascade. guard decides whether the
// rule applies; respond builds the response, or reports false to let
// evaluation continue with later rules.
type rule struct {
	name    string
	guard   func(*ruleInput) bool
	respond func(*ruleInput) (Response, bool)
}

type ruleInput struct {
	input   string // lowercased utterance
	signals Signals
	catalog []models.Product
	cart    []models.CartItem
	max     int
}

// Classifier maps utterances to responses through an ordered rule
// cascade: rules are tried in declaration order and the first rule
// whose guard matches and whose handler produces a response wins.
type Classifier struct {
	catalog        []models.Product
	maxSuggestions int
	rules          []rule
}

func NewClassifier(products []models.Product, maxSuggestions int) *Classifier {
	if maxSuggestions < 1 {
		maxSuggestions = 3
	}
	return &Classifier{
		catalog:        products,
		maxSuggestions: maxSuggestions,
		rules:          cascade(),
	}
}

// Respond classifies one request. It always returns a response: the
// final rule matches unconditionally.
func (c *Classifier) Respond(req Request) Response {
	in := &ruleInput{
		input:   strings.ToLower(req.Utterance),
		signals: ExtractSignals(req.Utterance, req.Cart),
		catalog: c.catalog,
		cart:    req.Cart,
		max:     c.maxSuggestions,
	}

	for _, r := range c.rules {
		if !r.guard(in) {
			continue
		}
		resp, ok := r.respond(in)
		if !ok {
			continue
		}
		resp.Intent = r.name
		return resp
	}

	// Unreachable: the fallback rule always responds.
	return Response{Intent: "fallback", Reply: fallbackReply}
}

// Rules returns the names of the cascade in evaluation order.
func (c *Classifier) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.name
	}
	return names
}

// cascade builds the priority-ordered rule list. Rule order is the
// whole contract here; reordering entries changes behavior.
func cascade() []rule {
	return []rule{
		{
			name: "remove-from-cart",
			guard: func(in *ruleInput) bool {
				return strings.Contains(in.input, "remove") &&
					(strings.Contains(in.input, "cart") || strings.Contains(in.input, "delete"))
			},
			respond: respondRemoveFromCart,
		},
		{
			name: "add-to-cart",
			guard: func(in *ruleInput) bool {
				return (strings.Contains(in.input, "add") || strings.Contains(in.input, "put")) &&
					strings.Contains(in.input, "cart")
			},
			respond: respondAddToCart,
		},
		{
			name: "show-cart",
			guard: func(in *ruleInput) bool {
				return strings.Contains(in.input, "cart") && containsAny(in.input, "show", "what", "view", "check")
			},
			respond: respondShowCart,
		},
		{
			name: "dietary-search",
			guard: func(in *ruleInput) bool {
				return containsAny(in.input, "diabetic", "sugar-free", "diabetes")
			},
			respond: respondDietarySearch,
		},
		{
			name: "insurance-info",
			guard: func(in *ruleInput) bool {
				return containsAny(in.input, "insurance", "cover", "medical", "wheelchair", "mobility")
			},
			respond: respondInsuranceInfo,
		},
		{
			name: "price-search",
			guard: func(in *ruleInput) bool {
				_, ok := ExtractPriceCeiling(in.input)
				return ok
			},
			respond: respondPriceSearch,
		},
		{
			name: "general-search",
			guard: func(in *ruleInput) bool {
				return containsAny(in.input, "find", "search", "show", "look for")
			},
			respond: respondGeneralSearch,
		},
		{
			name: "category-browse",
			guard: func(in *ruleInput) bool {
				return in.signals.HasCategory
			},
			respond: respondCategoryBrowse,
		},
		{
			name: "greeting",
			guard: func(in *ruleInput) bool {
				return containsAny(in.input, "hello", "hi", "hey")
			},
			respond: func(*ruleInput) (Response, bool) {
				return Response{Reply: greetingReply}, true
			},
		},
		{
			name: "help",
			guard: func(in *ruleInput) bool {
				return strings.Contains(in.input, "help") || strings.Contains(in.input, "what can you do")
			},
			respond: func(*ruleInput) (Response, bool) {
				return Response{Reply: helpReply}, true
			},
		},
		{
			name:  "fallback",
			guard: func(*ruleInput) bool { return true },
			respond: func(*ruleInput) (Response, bool) {
				return Response{Reply: fallbackReply}, true
			},
		},
	}
}

func respondRemoveFromCart(in *ruleInput) (Response, bool) {
	if in.signals.CartMatch != nil {
		item := *in.signals.CartMatch
		return Response{
			Reply: fmt.Sprintf("I'll remove %s from your cart.", item.Product.Name),
			Actions: []Action{RemoveFromCart{
				ProductID:   item.Product.ID,
				ProductName: item.Product.Name,
			}},
		}, true
	}

	if len(in.cart) > 0 {
		names := make([]string, len(in.cart))
		for i, item := range in.cart {
			names[i] = item.Product.Name
		}
		return Response{
			Reply: fmt.Sprintf("I couldn't find that specific item. Your cart contains: %s. Which item would you like me to remove?",
				strings.Join(names, ", ")),
		}, true
	}

	return Response{Reply: "Your cart is empty. There's nothing to remove!"}, true
}

// respondAddToCart matches catalog entries against the stripped search
// terms. With zero matches it declines so later rules get a chance;
// for most such utterances evaluation runs down to the fallback.
func respondAddToCart(in *ruleInput) (Response, bool) {
	searchTerms := StripStopwords(in.input)
	terms := strings.Fields(searchTerms)

	var matches []models.Product
	for _, p := range in.catalog {
		if productMatchesAny(p, terms, false) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return Response{}, false
	}

	return Response{
		Reply: fmt.Sprintf("I found %d products matching %q. Here are the top options:",
			len(matches), searchTerms),
		Actions: addActions(matches, in.max),
	}, true
}

func respondShowCart(in *ruleInput) (Response, bool) {
	if len(in.cart) == 0 {
		return Response{
			Reply: "Your cart is empty. Would you like me to help you find some products?",
		}, true
	}

	var total int64
	names := make([]string, len(in.cart))
	for i, item := range in.cart {
		total += item.Subtotal()
		names[i] = fmt.Sprintf("%s (%d)", item.Product.Name, item.Quantity)
	}

	return Response{
		Reply: fmt.Sprintf("Your cart has %d items totaling %s. Items: %s",
			len(in.cart), money.Format(total), strings.Join(names, ", ")),
		Actions: []Action{Navigate{Target: "/cart"}},
	}, true
}

func respondDietarySearch(in *ruleInput) (Response, bool) {
	var matches []models.Product
	for _, p := range in.catalog {
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		if strings.Contains(name, "diabetic") || strings.Contains(name, "sugar-free") ||
			strings.Contains(desc, "diabetic") || strings.Contains(desc, "sugar-free") {
			matches = append(matches, p)
		}
	}

	ceilingNote := ""
	if in.signals.HasPriceCeiling {
		filtered := matches[:0:0]
		for _, p := range matches {
			if p.Price <= in.signals.PriceCeiling {
				filtered = append(filtered, p)
			}
		}
		matches = filtered
		ceilingNote = fmt.Sprintf(" under %s", money.Format(in.signals.PriceCeiling))
	}

	if len(matches) == 0 {
		return Response{
			Reply: "I couldn't find any diabetic-friendly products matching your criteria. Would you like me to search for general healthy snacks instead?",
		}, true
	}

	return Response{
		Reply: fmt.Sprintf("I found %d diabetic-friendly products%s. Here are the top options:",
			len(matches), ceilingNote),
		Actions: addActions(matches, in.max),
	}, true
}

func respondInsuranceInfo(in *ruleInput) (Response, bool) {
	if containsAny(in.input, "wheelchair", "mobility") {
		return Response{Reply: wheelchairReply}, true
	}
	return Response{Reply: insuranceReply}, true
}

func respondPriceSearch(in *ruleInput) (Response, bool) {
	ceiling, _ := ExtractPriceCeiling(in.input)

	var matches []models.Product
	for _, p := range in.catalog {
		if p.Price <= ceiling {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return Response{
			Reply: fmt.Sprintf("I couldn't find any products under %s. Would you like me to search for products in a higher price range?",
				money.Format(ceiling)),
		}, true
	}

	return Response{
		Reply: fmt.Sprintf("I found %d products under %s. Here are some great options:",
			len(matches), money.Format(ceiling)),
		Actions: addActions(matches, in.max),
	}, true
}

func respondGeneralSearch(in *ruleInput) (Response, bool) {
	searchTerm := StripStopwords(in.input)
	keywords := in.signals.Keywords

	var matches []models.Product
	for _, p := range in.catalog {
		if productMatchesAny(p, keywords, true) {
			matches = append(matches, p)
		}
	}

	if len(matches) > 0 {
		return Response{
			Reply: fmt.Sprintf("I found %d products matching %q. Here are the top results:",
				len(matches), searchTerm),
			Actions: addActions(matches, in.max),
		}, true
	}

	return Response{
		Reply:      fmt.Sprintf("Searching for %q...", searchTerm),
		Actions:    []Action{Search{Query: searchTerm}},
		AutoSearch: searchTerm,
	}, true
}

func respondCategoryBrowse(in *ruleInput) (Response, bool) {
	var matches []models.Product
	for _, p := range in.catalog {
		if p.Category == in.signals.Category {
			matches = append(matches, p)
		}
	}

	return Response{
		Reply:   fmt.Sprintf("Here are some popular %s products:", in.signals.Category),
		Actions: addActions(matches, in.max),
	}, true
}

// productMatchesAny reports whether any term appears in the product's
// name or category (and description when withDescription is set),
// case-insensitively.
func productMatchesAny(p models.Product, terms []string, withDescription bool) bool {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)
	desc := strings.ToLower(p.Description)

	for _, term := range terms {
		if strings.Contains(name, term) || strings.Contains(category, term) {
			return true
		}
		if withDescription && strings.Contains(desc, term) {
			return true
		}
	}
	return false
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const greetingReply = "Hello! I'm here to help you shop. You can ask me to find products, manage your cart, or answer questions about our items. What can I help you with today?"

const helpReply = "I can help you with:\n\n• Finding products ('Find laptops under ₹50,000')\n• Managing your cart ('Add rice to cart', 'Remove items')\n• Product questions ('Is this covered by insurance?')\n• Price searches ('Show items under ₹1000')\n• Category browsing ('Show me electronics')\n\nWhat would you like to do?"

const fallbackReply = "I understand you're looking for something, but I need a bit more information. You can ask me to:\n\n• Find specific products\n• Add or remove items from your cart\n• Search by price range\n• Answer product questions\n\nTry being more specific, like \"Find smartphones under ₹20,000\" or \"Add rice to my cart\""

const wheelchairReply = "Wheelchairs and mobility aids are often covered by insurance. Coverage varies by plan, but many include:\n\n• Manual wheelchairs\n• Power wheelchairs (with prescription)\n• Mobility scooters\n• Walking aids\n\nI recommend checking with your insurance provider for specific coverage details. Would you like me to help you find mobility products?"

const insuranceReply = "For insurance coverage information, I recommend checking with your insurance provider directly. However, many medical equipment items like wheelchairs, diabetic supplies, and mobility aids are often covered. Would you like me to help you find specific medical products?"
