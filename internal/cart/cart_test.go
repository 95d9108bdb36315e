package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safar/go-store-assistant/internal/kvstore"
	"github.com/safar/go-store-assistant/internal/models"
)

var (
	rice = models.Product{ID: "G1", Name: "Basmati Rice Premium Quality (5kg)", Price: 450, Stock: 50}
	milk = models.Product{ID: "G2", Name: "Full Cream Milk (1 Liter)", Price: 68, Stock: 30}
	sold = models.Product{ID: "E9", Name: "Discontinued Gadget", Price: 999, StockStatus: models.StockOutOfStock}
)

func TestUpsertAddsAndIncrements(t *testing.T) {
	c := New()

	require.NoError(t, c.Upsert(rice, 1))
	require.NoError(t, c.Upsert(milk, 2))
	require.NoError(t, c.Upsert(rice, 1))

	items := c.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, "G1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "G2", items[1].Product.ID)
	assert.Equal(t, 2, items[1].Quantity)

	assert.Equal(t, 4, c.TotalItems())
	assert.Equal(t, int64(2*450+2*68), c.TotalPrice())
	assert.Equal(t, 2, c.Len())
}

func TestUpsertRejectsOutOfStock(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Upsert(sold, 1), ErrOutOfStock)
	assert.Zero(t, c.Len())
}

func TestUpsertClampsDelta(t *testing.T) {
	c := New()
	require.NoError(t, c.Upsert(rice, 0))
	assert.Equal(t, 1, c.Snapshot()[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := New()
	require.NoError(t, c.Upsert(rice, 1))

	require.NoError(t, c.Remove("G1"))
	assert.Zero(t, c.Len())

	assert.ErrorIs(t, c.Remove("G1"), ErrItemNotFound)
}

func TestSetQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.Upsert(rice, 1))

	require.NoError(t, c.SetQuantity("G1", 5))
	assert.Equal(t, 5, c.Snapshot()[0].Quantity)

	// Zero or negative removes the line.
	require.NoError(t, c.SetQuantity("G1", 0))
	assert.Zero(t, c.Len())

	assert.ErrorIs(t, c.SetQuantity("G1", 2), ErrItemNotFound)
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.Upsert(rice, 1))
	require.NoError(t, c.Upsert(milk, 1))

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Zero(t, c.TotalPrice())
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New()
	require.NoError(t, c.Upsert(rice, 1))

	snap := c.Snapshot()
	snap[0].Quantity = 99

	assert.Equal(t, 1, c.Snapshot()[0].Quantity)
}

func TestAddedAtUsesClock(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(WithClock(func() time.Time { return at }))

	require.NoError(t, c.Upsert(rice, 1))
	assert.Equal(t, at, c.Snapshot()[0].AddedAt)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store, err := kvstore.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	c := New(WithStorage(store))
	require.NoError(t, c.Upsert(rice, 2))
	require.NoError(t, c.Upsert(milk, 1))

	// A fresh cart over the same store restores the saved lines.
	restored := New(WithStorage(store))
	items := restored.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, "G1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "G2", items[1].Product.ID)

	// Clearing persists too.
	restored.Clear()
	assert.Zero(t, New(WithStorage(store)).Len())
}
