package services

import (
	"context"
	"hash/fnv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/safar/go-store-assistant/internal/models"
)

// Quote is one competitor price for a product.
type Quote struct {
	Retailer string `json:"retailer"`
	Price    int64  `json:"price"`
	Lowest   bool   `json:"lowest"`
}

// PriceComparison simulates a competitor price lookup. Concurrent
// lookups for the same product are coalesced with singleflight so the
// simulated delay is only paid once.
type PriceComparison struct {
	delay  time.Duration
	sfg    singleflight.Group
	logger *zap.Logger
}

func NewPriceComparison(delay time.Duration, logger *zap.Logger) *PriceComparison {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceComparison{delay: delay, logger: logger}
}

// Compare returns mock competitor quotes around the product's own
// price. Deterministic per product id so repeated lookups agree.
func (c *PriceComparison) Compare(ctx context.Context, product models.Product) ([]Quote, error) {
	v, err, shared := c.sfg.Do(product.ID, func() (interface{}, error) {
		if err := simulateDelay(ctx, c.delay); err != nil {
			return nil, err
		}
		return c.quotes(product), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("comparison coalesced", zap.String("product_id", product.ID))
	}
	return v.([]Quote), nil
}

func (c *PriceComparison) quotes(product models.Product) []Quote {
	base := product.Price

	// Pseudo-random but stable offsets derived from the product id.
	h := fnv.New32a()
	h.Write([]byte(product.ID))
	seed := int64(h.Sum32())

	amazon := base + seed%2000 - 1000
	flipkart := base + seed%1500 - 750
	if min := base * 8 / 10; amazon < min {
		amazon = min
	}
	if min := base * 85 / 100; flipkart < min {
		flipkart = min
	}

	quotes := []Quote{
		{Retailer: "store", Price: base},
		{Retailer: "amazon", Price: amazon},
		{Retailer: "flipkart", Price: flipkart},
	}

	lowest := 0
	for i, q := range quotes {
		if q.Price < quotes[lowest].Price {
			lowest = i
		}
	}
	quotes[lowest].Lowest = true

	return quotes
}
