// Package catalog holds the static product catalog and its query
// helpers. The catalog is read-only for the lifetime of the process.
package catalog

import (
	"github.com/safar/go-store-assistant/internal/models"
)

// Provider is the read-only catalog contract consumed by the assistant
// and the storefront search.
type Provider interface {
	ListAll() []models.Product
}

type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// New builds the catalog from the built-in product data.
func New() *Catalog {
	return FromProducts(allProducts)
}

// FromProducts builds a catalog over an explicit product list. Order is
// preserved: filter results are always a prefix-stable subsequence of
// the list passed here.
func FromProducts(products []models.Product) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

func (c *Catalog) ListAll() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Filter returns the products satisfying pred, in catalog order.
func (c *Catalog) Filter(pred func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByCategory(category string) []models.Product {
	return c.Filter(func(p models.Product) bool {
		return p.Category == category
	})
}
