package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safar/go-store-assistant/internal/assistant"
	"github.com/safar/go-store-assistant/internal/cart"
	"github.com/safar/go-store-assistant/internal/catalog"
	"github.com/safar/go-store-assistant/internal/checkout"
	"github.com/safar/go-store-assistant/internal/kvstore"
	"github.com/safar/go-store-assistant/internal/models"
	"github.com/safar/go-store-assistant/internal/services"
)

func apiFixture() []models.Product {
	return []models.Product{
		{ID: "E1", Name: "Budget Smartphone 5G (128GB)", Category: "electronics", Price: 12999, Rating: 4.5, Stock: 10},
		{ID: "E2", Name: "Wireless Bluetooth Earbuds", Category: "electronics", Price: 1299, Rating: 4.2, Stock: 25},
		{ID: "G1", Name: "Basmati Rice Premium Quality (5kg)", Category: "grocery", Price: 450, Rating: 4.6, Stock: 50},
		{ID: "G2", Name: "Full Cream Milk (1 Liter)", Category: "grocery", Price: 68, Rating: 4.4, Stock: 30},
	}
}

func newTestServer(t *testing.T) (*Server, *cart.Cart) {
	t.Helper()

	store, err := kvstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cat := catalog.FromProducts(apiFixture())
	c := cart.New()
	views := NewViewState()

	classifier := assistant.NewClassifier(cat.ListAll(), 3)
	session := assistant.NewSession()
	dispatcher := assistant.NewDispatcher(c, views, views, nil)
	asst := assistant.New(classifier, session, dispatcher, c, nil)

	history := checkout.NewHistory(store)
	flow := checkout.NewFlow(c, services.NewPayments(0, nil), history, nil)
	srv := NewServer(cat, c, asst,
		services.NewPriceComparison(0, nil),
		services.NewLocator(0, nil),
		services.NewAuth(store, 0, nil),
		flow, history, views, nil)
	return srv, c
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestListProducts(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page OffsetPage
	decode(t, rec, &page)
	assert.Equal(t, 4, page.Total)
	assert.Len(t, page.Items, 4)
	assert.Equal(t, 1, page.Page)
}

func TestListProductsFiltered(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products?category=grocery", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page OffsetPage
	decode(t, rec, &page)
	require.Equal(t, 2, page.Total)
	for _, p := range page.Items {
		assert.Equal(t, "grocery", p.Category)
	}
}

func TestListProductsPagination(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products?page=2&page_size=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page OffsetPage
	decode(t, rec, &page)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestGetProduct(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products/G1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Product
	decode(t, rec, &p)
	assert.Equal(t, "Basmati Rice Premium Quality (5kg)", p.Name)

	rec = doJSON(t, srv, http.MethodGet, "/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompareEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products/E1/compare", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Quotes []services.Quote `json:"quotes"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.Quotes, 3)
}

func TestCartEndpoints(t *testing.T) {
	srv, c := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/cart/items", map[string]interface{}{
		"product_id": "G1", "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, c.TotalItems())

	rec = doJSON(t, srv, http.MethodPut, "/cart/items/G1", map[string]interface{}{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, c.TotalItems())

	rec = doJSON(t, srv, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cartBody struct {
		Items      []models.CartItem `json:"items"`
		TotalItems int               `json:"total_items"`
		TotalPrice int64             `json:"total_price"`
	}
	decode(t, rec, &cartBody)
	assert.Equal(t, 5, cartBody.TotalItems)
	assert.Equal(t, int64(5*450), cartBody.TotalPrice)

	rec = doJSON(t, srv, http.MethodDelete, "/cart/items/G1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, c.Len())

	rec = doJSON(t, srv, http.MethodDelete, "/cart/items/G1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/cart/items", map[string]interface{}{
		"product_id": "nope", "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssistantEndpoints(t *testing.T) {
	srv, c := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/assistant/open", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var transcript struct {
		Turns []turnView `json:"turns"`
	}
	decode(t, rec, &transcript)
	require.Len(t, transcript.Turns, 1)
	assert.Equal(t, "assistant", transcript.Turns[0].Role)

	rec = doJSON(t, srv, http.MethodPost, "/assistant/message", map[string]string{
		"text": "add rice to my cart",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var turn turnView
	decode(t, rec, &turn)
	require.Len(t, turn.Actions, 1)
	assert.Equal(t, "add_to_cart", turn.Actions[0].Kind)

	rec = doJSON(t, srv, http.MethodPost, "/assistant/actions", map[string]interface{}{
		"turn_id": turn.ID, "action_index": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, c.TotalItems())

	rec = doJSON(t, srv, http.MethodPost, "/assistant/actions", map[string]interface{}{
		"turn_id": "nope", "action_index": 0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// greeting + user message + reply + activation confirmation
	rec = doJSON(t, srv, http.MethodGet, "/assistant/transcript", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &transcript)
	assert.Len(t, transcript.Turns, 4)
}

func TestMessageValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/assistant/message", map[string]string{"text": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearbyStores(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/stores/nearby?zip=110001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Location services.Location `json:"location"`
		Stores   []models.Store    `json:"stores"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.Stores, 3)
	assert.Equal(t, "ZIP Code: 110001", body.Location.Address)

	rec = doJSON(t, srv, http.MethodGet, "/stores/nearby?zip=11", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrdersEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Orders []models.Order `json:"orders"`
	}
	decode(t, rec, &body)
	assert.Empty(t, body.Orders)
}

func TestViewStateFollowsAssistant(t *testing.T) {
	srv, _ := newTestServer(t)

	// A general search with no catalog hit switches the view.
	rec := doJSON(t, srv, http.MethodPost, "/assistant/message", map[string]string{
		"text": "find quantum flux widgets",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/views", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view map[string]string
	decode(t, rec, &view)
	assert.Equal(t, "search", view["view"])
	assert.Equal(t, "quantum flux widgets", view["query"])
}

func TestPaginateEdgeCases(t *testing.T) {
	products := apiFixture()

	page := paginate(products, 3, 2)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalPages)

	page = paginate(nil, 1, 20)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestActionKind(t *testing.T) {
	assert.Equal(t, "add_to_cart", actionKind(assistant.AddToCart{}))
	assert.Equal(t, "remove_from_cart", actionKind(assistant.RemoveFromCart{}))
	assert.Equal(t, "search", actionKind(assistant.Search{}))
	assert.Equal(t, "navigate", actionKind(assistant.Navigate{}))
}

func TestViewStateNavigation(t *testing.T) {
	v := NewViewState()

	view, _ := v.Current()
	assert.Equal(t, "home", view)

	v.GoTo("/cart")
	view, _ = v.Current()
	assert.Equal(t, "cart", view)

	v.GoTo("/anything-else")
	view, _ = v.Current()
	assert.Equal(t, "home", view)
}
