package models

import (
	"time"
)

type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockLowStock   StockStatus = "low-stock"
	StockOutOfStock StockStatus = "out-of-stock"
)

// Product is a catalog entry. The catalog is loaded once at startup and
// never mutated, so products are safe to copy and share.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Price          int64             `json:"price"`
	OriginalPrice  int64             `json:"original_price,omitempty"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Description    string            `json:"description,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Stock          int               `json:"stock"`
	StockStatus    StockStatus       `json:"stock_status"`
}

func (p Product) InStock() bool {
	return p.StockStatus != StockOutOfStock
}

// HasDeal reports whether the product carries a marked-down price.
func (p Product) HasDeal() bool {
	return p.OriginalPrice > p.Price
}

// CartItem is one product/quantity line in a cart. A cart holds at most
// one line per product id.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Subtotal  int64      `json:"subtotal"`
	Tax       int64      `json:"tax"`
	Total     int64      `json:"total"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

const (
	OrderStatusProcessing = "processing"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Store is a physical store location returned by the nearby-stores lookup.
type Store struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Distance float64  `json:"distance"`
	Hours    string   `json:"hours"`
	Phone    string   `json:"phone"`
	Services []string `json:"services"`
}
