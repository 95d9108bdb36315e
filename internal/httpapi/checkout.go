package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/safar/go-store-assistant/internal/checkout"
	"github.com/safar/go-store-assistant/internal/services"
)

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (s *Server) handleSocialSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Provider string `json:"provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Provider == "" {
		respondError(w, http.StatusBadRequest, "provider is required")
		return
	}

	user, err := s.auth.SocialSignIn(r.Context(), req.Provider)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.auth.CurrentUser(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.SignOut(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"signed_out": true})
}

func (s *Server) checkoutPayload() map[string]interface{} {
	subtotal, tax, total := s.flow.Totals()
	return map[string]interface{}{
		"step":     s.flow.Step().String(),
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	}
}

func (s *Server) handleCheckoutState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.checkoutPayload())
}

func (s *Server) handleSetDelivery(w http.ResponseWriter, r *http.Request) {
	var d checkout.Delivery
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.flow.SetDelivery(d)
	respondJSON(w, http.StatusOK, s.checkoutPayload())
}

func (s *Server) handleSetPayment(w http.ResponseWriter, r *http.Request) {
	var p checkout.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.flow.SetPayment(p)
	respondJSON(w, http.StatusOK, s.checkoutPayload())
}

func (s *Server) handleCheckoutNext(w http.ResponseWriter, r *http.Request) {
	if err := s.flow.Next(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, s.checkoutPayload())
}

func (s *Server) handleCheckoutBack(w http.ResponseWriter, r *http.Request) {
	s.flow.Back()
	respondJSON(w, http.StatusOK, s.checkoutPayload())
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.flow.PlaceOrder(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotAtReview):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.flow.Reset()
	respondJSON(w, http.StatusCreated, map[string]interface{}{"order": order})
}
