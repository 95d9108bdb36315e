package httpapi

import (
	"net/http"
	"sync"
)

// ViewState stands in for the storefront's view routing: it records
// the current view and the active search query, and satisfies the
// assistant's search and navigation collaborator contracts.
type ViewState struct {
	mu          sync.Mutex
	currentView string
	searchQuery string
}

func NewViewState() *ViewState {
	return &ViewState{currentView: "home"}
}

// Run switches to the search view with the given query.
func (v *ViewState) Run(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchQuery = term
	v.currentView = "search"
}

// GoTo opens a named view; "/cart" opens the cart overlay, anything
// else lands on home.
func (v *ViewState) GoTo(target string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if target == "/cart" {
		v.currentView = "cart"
	} else {
		v.currentView = "home"
	}
}

func (v *ViewState) Current() (view, query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentView, v.searchQuery
}

func (s *Server) handleViewState(w http.ResponseWriter, r *http.Request) {
	view, query := s.views.Current()
	respondJSON(w, http.StatusOK, map[string]string{
		"view":  view,
		"query": query,
	})
}
