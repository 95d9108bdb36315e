// Package cart implements the shopping cart: one line per product id,
// quantity-based mutation, and persistence through the local key-value
// store.
package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/safar/go-store-assistant/internal/kvstore"
	"github.com/safar/go-store-assistant/internal/models"
)

var (
	ErrOutOfStock   = errors.New("product out of stock")
	ErrItemNotFound = errors.New("cart item not found")
)

// Storage is the persistence collaborator; *kvstore.Store satisfies it.
type Storage interface {
	GetJSON(ctx context.Context, key string, v interface{}) error
	SetJSON(ctx context.Context, key string, v interface{}) error
}

type Cart struct {
	mu      sync.Mutex
	items   []models.CartItem
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
}

type Option func(*Cart)

// WithStorage persists the cart under the store-cart key and restores
// any previously saved contents.
func WithStorage(storage Storage) Option {
	return func(c *Cart) { c.storage = storage }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Cart) { c.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cart) { c.now = now }
}

func New(opts ...Option) *Cart {
	c := &Cart{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.storage != nil {
		c.restore()
	}
	return c
}

func (c *Cart) restore() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var saved []models.CartItem
	err := c.storage.GetJSON(ctx, kvstore.KeyCart, &saved)
	switch {
	case err == nil:
		c.items = saved
	case errors.Is(err, kvstore.ErrKeyNotFound):
	default:
		c.logger.Warn("restore cart", zap.Error(err))
	}
}

func (c *Cart) persist() {
	if c.storage == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.storage.SetJSON(ctx, kvstore.KeyCart, c.items); err != nil {
		c.logger.Warn("persist cart", zap.Error(err))
	}
}

// Snapshot returns a copy of the current cart lines in insertion order.
func (c *Cart) Snapshot() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Upsert adds deltaQty units of product, incrementing the existing line
// if one exists. Out-of-stock products are rejected.
func (c *Cart) Upsert(product models.Product, deltaQty int) error {
	if !product.InStock() {
		return ErrOutOfStock
	}
	if deltaQty < 1 {
		deltaQty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += deltaQty
			c.persist()
			return nil
		}
	}

	c.items = append(c.items, models.CartItem{
		Product:  product,
		Quantity: deltaQty,
		AddedAt:  c.now(),
	})
	c.persist()
	return nil
}

// Remove drops the line for productID entirely.
func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return nil
		}
	}
	return ErrItemNotFound
}

// SetQuantity sets the line quantity; qty <= 0 removes the line.
func (c *Cart) SetQuantity(productID string, qty int) error {
	if qty <= 0 {
		return c.Remove(productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			c.persist()
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear empties the cart (order completion).
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
