package assistant

import (
	"fmt"

	"github.com/safar/go-store-assistant/internal/models"
	"github.com/safar/go-store-assistant/internal/money"
)

// Action is a user-activatable suggestion attached to an assistant
// reply. The set of variants is closed: AddToCart, RemoveFromCart,
// Search and Navigate.
type Action interface {
	Label() string
	isAction()
}

type AddToCart struct {
	Product models.Product
}

func (a AddToCart) Label() string {
	return fmt.Sprintf("Add %s (%s)", a.Product.Name, money.Format(a.Product.Price))
}

func (AddToCart) isAction() {}

type RemoveFromCart struct {
	ProductID   string
	ProductName string
}

func (a RemoveFromCart) Label() string {
	return fmt.Sprintf("Remove %s", a.ProductName)
}

func (RemoveFromCart) isAction() {}

type Search struct {
	Query string
}

func (Search) Label() string { return "View Search Results" }

func (Search) isAction() {}

type Navigate struct {
	Target string
}

func (Navigate) Label() string { return "View Cart" }

func (Navigate) isAction() {}

// addActions builds AddToCart suggestions for up to max products, in
// the order given.
func addActions(products []models.Product, max int) []Action {
	if len(products) > max {
		products = products[:max]
	}
	actions := make([]Action, 0, len(products))
	for _, p := range products {
		actions = append(actions, AddToCart{Product: p})
	}
	return actions
}
