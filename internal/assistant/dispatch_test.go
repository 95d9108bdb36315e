package assistant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safar/go-store-assistant/internal/models"
)

// fakeCart is an in-memory CartService keyed by product ID.
type fakeCart struct {
	items      []models.CartItem
	upsertErr  error
	removeErr  error
	removedIDs []string
}

func (f *fakeCart) Snapshot() []models.CartItem {
	out := make([]models.CartItem, len(f.items))
	copy(out, f.items)
	return out
}

func (f *fakeCart) Upsert(product models.Product, deltaQty int) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for i := range f.items {
		if f.items[i].Product.ID == product.ID {
			f.items[i].Quantity += deltaQty
			return nil
		}
	}
	f.items = append(f.items, models.CartItem{Product: product, Quantity: deltaQty})
	return nil
}

func (f *fakeCart) Remove(productID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedIDs = append(f.removedIDs, productID)
	for i := range f.items {
		if f.items[i].Product.ID == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSearch struct {
	terms []string
}

func (f *fakeSearch) Run(term string) { f.terms = append(f.terms, term) }

type fakeNav struct {
	targets []string
}

func (f *fakeNav) GoTo(target string) { f.targets = append(f.targets, target) }

func TestDispatchAddToCartTwiceIncrementsTwice(t *testing.T) {
	cart := &fakeCart{}
	d := NewDispatcher(cart, &fakeSearch{}, &fakeNav{}, nil)
	session := NewSession()

	action := AddToCart{Product: models.Product{ID: "G1", Name: "Basmati Rice Premium Quality (5kg)", Price: 450}}

	require.NoError(t, d.Dispatch(session, action))
	require.NoError(t, d.Dispatch(session, action))

	require.Len(t, cart.items, 1)
	assert.Equal(t, 2, cart.items[0].Quantity)

	turns := session.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "Added Basmati Rice Premium Quality (5kg) to your cart!", turns[0].Content)
	assert.Equal(t, turns[0].Content, turns[1].Content)
}

func TestDispatchAddToCartFailure(t *testing.T) {
	cart := &fakeCart{upsertErr: errors.New("out of stock")}
	d := NewDispatcher(cart, &fakeSearch{}, &fakeNav{}, nil)
	session := NewSession()

	err := d.Dispatch(session, AddToCart{Product: models.Product{ID: "E1", Name: "Smart LED TV 43 inch"}})
	require.Error(t, err)

	// The failure leaves a neutral turn, never a success confirmation.
	turns := session.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "Sorry, I couldn't add Smart LED TV 43 inch to your cart right now.", turns[0].Content)
	assert.Empty(t, cart.items)
}

func TestDispatchRemoveFromCart(t *testing.T) {
	cart := &fakeCart{items: []models.CartItem{
		{Product: models.Product{ID: "G1", Name: "Basmati Rice Premium Quality (5kg)"}, Quantity: 2},
	}}
	d := NewDispatcher(cart, &fakeSearch{}, &fakeNav{}, nil)
	session := NewSession()

	require.NoError(t, d.Dispatch(session, RemoveFromCart{ProductID: "G1", ProductName: "Basmati Rice Premium Quality (5kg)"}))
	assert.Equal(t, []string{"G1"}, cart.removedIDs)
	assert.Empty(t, cart.items)

	turns := session.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "Removed item from your cart!", turns[0].Content)
}

func TestDispatchRemoveFailure(t *testing.T) {
	cart := &fakeCart{removeErr: errors.New("not found")}
	d := NewDispatcher(cart, &fakeSearch{}, &fakeNav{}, nil)
	session := NewSession()

	err := d.Dispatch(session, RemoveFromCart{ProductID: "G9", ProductName: "Ghost Item"})
	require.Error(t, err)
	require.Len(t, session.Turns(), 1)
	assert.Equal(t, "Sorry, I couldn't remove that item from your cart.", session.Turns()[0].Content)
}

func TestDispatchSearchAndNavigateAddNoTurns(t *testing.T) {
	search := &fakeSearch{}
	nav := &fakeNav{}
	d := NewDispatcher(&fakeCart{}, search, nav, nil)
	session := NewSession()

	require.NoError(t, d.Dispatch(session, Search{Query: "earbuds"}))
	require.NoError(t, d.Dispatch(session, Navigate{Target: "/cart"}))

	assert.Equal(t, []string{"earbuds"}, search.terms)
	assert.Equal(t, []string{"/cart"}, nav.targets)
	assert.Zero(t, session.Len())
}

func TestAssistantHandleMessageAndActivate(t *testing.T) {
	cart := &fakeCart{}
	search := &fakeSearch{}
	classifier := NewClassifier(testCatalog(), 3)
	session := NewSession()
	dispatcher := NewDispatcher(cart, search, &fakeNav{}, nil)
	a := New(classifier, session, dispatcher, cart, nil)

	turn := a.HandleMessage("add rice to my cart")
	require.Len(t, turn.Actions, 1)
	assert.Equal(t, RoleAssistant, turn.Role)

	// Activating the same offered action twice is two mutations.
	require.NoError(t, a.Activate(turn.ID, 0))
	require.NoError(t, a.Activate(turn.ID, 0))
	require.Len(t, cart.items, 1)
	assert.Equal(t, "G1", cart.items[0].Product.ID)
	assert.Equal(t, 2, cart.items[0].Quantity)

	// user turn + reply + two confirmations
	assert.Equal(t, 4, session.Len())
}

func TestAssistantAutoSearch(t *testing.T) {
	search := &fakeSearch{}
	a := New(NewClassifier(testCatalog(), 3), NewSession(), NewDispatcher(&fakeCart{}, search, &fakeNav{}, nil), &fakeCart{}, nil)

	a.HandleMessage("find quantum flux widgets")
	assert.Equal(t, []string{"quantum flux widgets"}, search.terms)
}

func TestActivateInvalidReferences(t *testing.T) {
	a := New(NewClassifier(testCatalog(), 3), NewSession(), NewDispatcher(&fakeCart{}, &fakeSearch{}, &fakeNav{}, nil), &fakeCart{}, nil)

	assert.Error(t, a.Activate("no-such-turn", 0))

	turn := a.HandleMessage("hello")
	assert.Error(t, a.Activate(turn.ID, 0))
	assert.Error(t, a.Activate(turn.ID, -1))
}
