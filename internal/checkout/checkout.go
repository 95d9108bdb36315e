// Package checkout implements the three-step checkout wizard and the
// order history it writes into.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/safar/go-store-assistant/internal/cart"
	"github.com/safar/go-store-assistant/internal/models"
	"github.com/safar/go-store-assistant/internal/money"
	"github.com/safar/go-store-assistant/internal/services"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrIncompleteDelivery = errors.New("delivery details incomplete")
	ErrIncompletePayment  = errors.New("payment details incomplete")
	ErrNotAtReview        = errors.New("order can only be placed from the review step")
)

// taxRate mirrors the storefront's flat 8% order tax.
var taxRate = decimal.NewFromFloat(0.08)

type Step int

const (
	StepDelivery Step = iota
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

type Delivery struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type Payment struct {
	Method     string `json:"method"`
	CardNumber string `json:"card_number,omitempty"`
}

// Flow is one checkout pass over the current cart: an explicit state
// machine stepping delivery -> payment -> review, with validation
// gating each advance. Methods serialize on an internal mutex; the
// HTTP surface mutates a shared Flow from per-request goroutines.
type Flow struct {
	mu       sync.Mutex
	step     Step
	delivery Delivery
	payment  Payment

	cart     *cart.Cart
	payments *services.Payments
	history  *History
	logger   *zap.Logger
}

func NewFlow(c *cart.Cart, payments *services.Payments, history *History, logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{
		cart:     c,
		payments: payments,
		history:  history,
		logger:   logger,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) SetDelivery(d Delivery) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delivery = d
}

func (f *Flow) SetPayment(p Payment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payment = p
}

// Next advances the wizard, validating the current step first.
func (f *Flow) Next() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepDelivery:
		if f.delivery.Name == "" || f.delivery.Address == "" || f.delivery.Zip == "" {
			return ErrIncompleteDelivery
		}
		f.step = StepPayment
	case StepPayment:
		if f.payment.Method == "" {
			return ErrIncompletePayment
		}
		if f.payment.Method == services.PaymentCard && f.payment.CardNumber == "" {
			return ErrIncompletePayment
		}
		f.step = StepReview
	case StepReview:
		// Terminal; PlaceOrder finishes the flow.
	}
	return nil
}

func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step > StepDelivery {
		f.step--
	}
}

// Reset returns the wizard to a blank delivery step, ready for the
// next order.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.step = StepDelivery
	f.delivery = Delivery{}
	f.payment = Payment{}
}

// Totals returns subtotal, tax and grand total for the current cart.
func (f *Flow) Totals() (subtotal, tax, total int64) {
	subtotal = f.cart.TotalPrice()
	tax = money.Tax(subtotal, taxRate)
	return subtotal, tax, subtotal + tax
}

// PlaceOrder charges the simulated gateway, appends the order to
// history and clears the cart. The lock is held across the charge so
// two concurrent completions cannot both pass the review check.
func (f *Flow) PlaceOrder(ctx context.Context) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepReview {
		return nil, ErrNotAtReview
	}

	items := f.cart.Snapshot()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, tax, total := f.Totals()

	receipt, err := f.payments.Charge(ctx, f.payment.Method, total)
	if err != nil {
		return nil, fmt.Errorf("charge payment: %w", err)
	}

	order := &models.Order{
		ID:        "WM-" + uuid.NewString(),
		Items:     items,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		Status:    models.OrderStatusProcessing,
		CreatedAt: receipt.ChargedAt,
	}

	if err := f.history.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}

	f.cart.Clear()
	f.logger.Info("order placed",
		zap.String("order_id", order.ID), zap.Int64("total", total))
	return order, nil
}
