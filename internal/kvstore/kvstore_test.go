package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	// Upsert semantics.
	require.NoError(t, s.Set(ctx, "k", "v2"))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete(ctx, "k"))
}

func TestJSONRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	type blob struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.SetJSON(ctx, KeyUser, blob{Name: "Priya", Count: 3}))

	var got blob
	require.NoError(t, s.GetJSON(ctx, KeyUser, &got))
	assert.Equal(t, blob{Name: "Priya", Count: 3}, got)

	var missing blob
	assert.ErrorIs(t, s.GetJSON(ctx, "missing", &missing), ErrKeyNotFound)
}

func TestUpdateCommits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.Set("a", "1"); err != nil {
			return err
		}
		return tx.Set("b", "2")
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	got, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.Set("a", "1"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestUpdateReadModifyWrite(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetJSON(ctx, KeyOrders, []string{"o-1"}))

	err := s.Update(ctx, func(tx *Tx) error {
		var orders []string
		if err := tx.GetJSON(KeyOrders, &orders); err != nil && !errors.Is(err, ErrKeyNotFound) {
			return err
		}
		orders = append(orders, "o-2")
		return tx.SetJSON(KeyOrders, orders)
	})
	require.NoError(t, err)

	var orders []string
	require.NoError(t, s.GetJSON(ctx, KeyOrders, &orders))
	assert.Equal(t, []string{"o-1", "o-2"}, orders)
}
