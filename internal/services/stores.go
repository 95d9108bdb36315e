package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/safar/go-store-assistant/internal/models"
)

var ErrInvalidZip = errors.New("zip code must be at least 5 characters")

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Locator simulates geocoding and the nearby-stores lookup with fixed
// delays and a static store list.
type Locator struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewLocator(delay time.Duration, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{delay: delay, logger: logger}
}

// Geocode resolves a ZIP code to mock coordinates.
func (l *Locator) Geocode(ctx context.Context, zipCode string) (Location, error) {
	if len(zipCode) < 5 {
		return Location{}, ErrInvalidZip
	}
	if err := simulateDelay(ctx, l.delay); err != nil {
		return Location{}, err
	}

	l.logger.Debug("geocoded zip", zap.String("zip", zipCode))
	return Location{
		Lat:     28.6139,
		Lng:     77.2090,
		Address: fmt.Sprintf("ZIP Code: %s", zipCode),
	}, nil
}

// NearbyStores returns the mock store list for a location.
func (l *Locator) NearbyStores(ctx context.Context, loc Location) ([]models.Store, error) {
	if err := simulateDelay(ctx, l.delay); err != nil {
		return nil, err
	}

	stores := []models.Store{
		{
			ID:       "ST-001",
			Name:     "Supercenter - Downtown",
			Address:  "123 Main Street, Downtown, City 110001",
			Distance: 2.3,
			Hours:    "6:00 AM - 11:00 PM",
			Phone:    "+91-11-1234-5678",
			Services: []string{"Grocery Pickup", "Pharmacy", "Auto Center"},
		},
		{
			ID:       "ST-002",
			Name:     "Neighborhood Market",
			Address:  "456 Central Avenue, Central District, City 110002",
			Distance: 4.1,
			Hours:    "7:00 AM - 10:00 PM",
			Phone:    "+91-11-2345-6789",
			Services: []string{"Grocery Pickup", "Pharmacy"},
		},
		{
			ID:       "ST-003",
			Name:     "Supercenter - North",
			Address:  "789 North Plaza, North District, City 110003",
			Distance: 6.8,
			Hours:    "6:00 AM - 12:00 AM",
			Phone:    "+91-11-3456-7890",
			Services: []string{"Grocery Pickup", "Pharmacy", "Auto Center", "Garden Center"},
		},
	}
	return stores, nil
}
