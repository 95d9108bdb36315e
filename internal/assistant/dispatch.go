package assistant

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/safar/go-store-assistant/internal/models"
)

// CartService is the cart collaborator mutated by offered actions.
type CartService interface {
	Snapshot() []models.CartItem
	Upsert(product models.Product, deltaQty int) error
	Remove(productID string) error
}

// SearchService runs a storefront search; the result view is outside
// the assistant's concern.
type SearchService interface {
	Run(term string)
}

// Navigator opens a named view, e.g. the cart overlay.
type Navigator interface {
	GoTo(target string)
}

// Dispatcher applies one offered action to the collaborators and logs
// a confirmation turn. A failed cart mutation produces a neutral error
// turn, never a success confirmation.
type Dispatcher struct {
	cart   CartService
	search SearchService
	nav    Navigator
	logger *zap.Logger
}

func NewDispatcher(cart CartService, search SearchService, nav Navigator, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{cart: cart, search: search, nav: nav, logger: logger}
}

// Dispatch applies action and appends any confirmation to session.
// Activation is deliberately not idempotent: dispatching the same
// AddToCart twice increments the quantity twice.
func (d *Dispatcher) Dispatch(session *Session, action Action) error {
	switch a := action.(type) {
	case AddToCart:
		if err := d.cart.Upsert(a.Product, 1); err != nil {
			d.logger.Warn("add to cart failed",
				zap.String("product_id", a.Product.ID), zap.Error(err))
			session.AppendAssistant(fmt.Sprintf("Sorry, I couldn't add %s to your cart right now.", a.Product.Name), nil)
			return fmt.Errorf("add to cart: %w", err)
		}
		session.AppendAssistant(fmt.Sprintf("Added %s to your cart!", a.Product.Name), nil)
		return nil

	case RemoveFromCart:
		if err := d.cart.Remove(a.ProductID); err != nil {
			d.logger.Warn("remove from cart failed",
				zap.String("product_id", a.ProductID), zap.Error(err))
			session.AppendAssistant("Sorry, I couldn't remove that item from your cart.", nil)
			return fmt.Errorf("remove from cart: %w", err)
		}
		session.AppendAssistant("Removed item from your cart!", nil)
		return nil

	case Search:
		// The triggering rule already logged the "Searching for..."
		// turn; no confirmation here.
		d.search.Run(a.Query)
		return nil

	case Navigate:
		d.nav.GoTo(a.Target)
		return nil

	default:
		return fmt.Errorf("unknown action type %T", action)
	}
}
