// Package httpapi exposes the storefront demo over HTTP: catalog
// browsing and search, cart mutation, the assistant conversation, and
// the simulated location service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/safar/go-store-assistant/internal/assistant"
	"github.com/safar/go-store-assistant/internal/cart"
	"github.com/safar/go-store-assistant/internal/catalog"
	"github.com/safar/go-store-assistant/internal/checkout"
	"github.com/safar/go-store-assistant/internal/services"
)

type Server struct {
	router    chi.Router
	catalog   *catalog.Catalog
	cart      *cart.Cart
	assistant *assistant.Assistant
	compare   *services.PriceComparison
	locator   *services.Locator
	auth      *services.Auth
	flow      *checkout.Flow
	history   *checkout.History
	views     *ViewState
	logger    *zap.Logger
}

func NewServer(
	cat *catalog.Catalog,
	c *cart.Cart,
	asst *assistant.Assistant,
	compare *services.PriceComparison,
	locator *services.Locator,
	auth *services.Auth,
	flow *checkout.Flow,
	history *checkout.History,
	views *ViewState,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if views == nil {
		views = NewViewState()
	}

	s := &Server{
		catalog:   cat,
		cart:      c,
		assistant: asst,
		compare:   compare,
		locator:   locator,
		auth:      auth,
		flow:      flow,
		history:   history,
		views:     views,
		logger:    logger,
	}

	r := chi.NewRouter()

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.handleListProducts)
		r.Get("/suggestions", s.handleSuggestions)
		r.Get("/{id}", s.handleGetProduct)
		r.Get("/{id}/compare", s.handleCompare)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", s.handleGetCart)
		r.Post("/items", s.handleAddItem)
		r.Put("/items/{id}", s.handleSetQuantity)
		r.Delete("/items/{id}", s.handleRemoveItem)
	})

	r.Route("/assistant", func(r chi.Router) {
		r.Post("/open", s.handleOpenAssistant)
		r.Get("/transcript", s.handleTranscript)
		r.Post("/message", s.handleMessage)
		r.Post("/actions", s.handleActivateAction)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin", s.handleSignIn)
		r.Post("/social", s.handleSocialSignIn)
		r.Get("/me", s.handleCurrentUser)
		r.Post("/signout", s.handleSignOut)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", s.handleCheckoutState)
		r.Put("/delivery", s.handleSetDelivery)
		r.Put("/payment", s.handleSetPayment)
		r.Post("/next", s.handleCheckoutNext)
		r.Post("/back", s.handleCheckoutBack)
		r.Post("/place", s.handlePlaceOrder)
	})

	r.Get("/stores/nearby", s.handleNearbyStores)
	r.Get("/orders", s.handleOrders)
	r.Get("/views", s.handleViewState)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filtered := catalog.FilterProducts(s.catalog.ListAll(), query, category)
	respondJSON(w, http.StatusOK, paginate(filtered, page, pageSize))
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	suggestions := catalog.SearchSuggestions(query, s.catalog.ListAll())
	respondJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := s.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	product, ok := s.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	quotes, err := s.compare.Compare(r.Context(), product)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"quotes": quotes})
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       s.cart.Snapshot(),
		"total_items": s.cart.TotalItems(),
		"total_price": s.cart.TotalPrice(),
	})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := s.cart.Upsert(product, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrOutOfStock) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"items": s.cart.Snapshot()})
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.cart.SetQuantity(chi.URLParam(r, "id"), req.Quantity); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"items": s.cart.Snapshot()})
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Remove(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": s.cart.Snapshot()})
}

func (s *Server) handleOpenAssistant(w http.ResponseWriter, r *http.Request) {
	s.assistant.Session().Open()
	respondJSON(w, http.StatusOK, transcriptPayload(s.assistant.Session()))
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, transcriptPayload(s.assistant.Session()))
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	turn := s.assistant.HandleMessage(req.Text)
	respondJSON(w, http.StatusOK, turnPayload(turn))
}

func (s *Server) handleActivateAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TurnID      string `json:"turn_id"`
		ActionIndex int    `json:"action_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.assistant.Activate(req.TurnID, req.ActionIndex); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, transcriptPayload(s.assistant.Session()))
}

func (s *Server) handleNearbyStores(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip")

	loc, err := s.locator.Geocode(r.Context(), zip)
	if err != nil {
		if errors.Is(err, services.ErrInvalidZip) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	stores, err := s.locator.NearbyStores(r.Context(), loc)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"location": loc,
		"stores":   stores,
	})
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.history.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response already committed; nothing recoverable.
		_ = err
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
