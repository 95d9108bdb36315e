package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/safar/go-store-assistant/internal/kvstore"
	"github.com/safar/go-store-assistant/internal/models"
)

// History is the persisted order log, stored as one JSON array under
// the store-orders key.
type History struct {
	store *kvstore.Store
}

func NewHistory(store *kvstore.Store) *History {
	return &History{store: store}
}

// Append adds an order to the log. The read-modify-write runs inside a
// transaction so concurrent completions cannot drop orders.
func (h *History) Append(ctx context.Context, order *models.Order) error {
	return h.store.Update(ctx, func(tx *kvstore.Tx) error {
		var orders []models.Order
		if err := tx.GetJSON(kvstore.KeyOrders, &orders); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
			return fmt.Errorf("load orders: %w", err)
		}
		orders = append(orders, *order)
		return tx.SetJSON(kvstore.KeyOrders, orders)
	})
}

// List returns all recorded orders, oldest first.
func (h *History) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := h.store.GetJSON(ctx, kvstore.KeyOrders, &orders)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}
