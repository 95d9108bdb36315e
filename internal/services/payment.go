package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrPaymentDeclined = errors.New("payment declined")

// PaymentMethod values accepted by the checkout.
const (
	PaymentCard   = "card"
	PaymentPaypal = "paypal"
	PaymentAffirm = "affirm"
)

type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	Method        string    `json:"method"`
	Amount        int64     `json:"amount"`
	ChargedAt     time.Time `json:"charged_at"`
}

// Payments simulates the payment gateway: every well-formed charge
// succeeds after the fixed delay.
type Payments struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewPayments(delay time.Duration, logger *zap.Logger) *Payments {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Payments{delay: delay, logger: logger}
}

func (p *Payments) Charge(ctx context.Context, method string, amount int64) (Receipt, error) {
	if err := simulateDelay(ctx, p.delay); err != nil {
		return Receipt{}, err
	}
	if amount <= 0 {
		return Receipt{}, ErrPaymentDeclined
	}

	receipt := Receipt{
		TransactionID: uuid.NewString(),
		Method:        method,
		Amount:        amount,
		ChargedAt:     time.Now(),
	}

	p.logger.Info("payment charged",
		zap.String("method", method), zap.Int64("amount", amount))
	return receipt, nil
}
