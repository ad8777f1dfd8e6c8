package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// SubscriptionRequest is the JSON body of POST /subscriptions/{userID}.
// Bbox uses the same "lat,lng,lat,lng" encoding as the search query.
type SubscriptionRequest struct {
	Bbox string `json:"bbox" validate:"required"`
}

// GetSubscriptions handles GET /subscriptions/{userID}.
func (s *Server) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	subs, err := s.subscriptions.ForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// CreateSubscription handles POST /subscriptions/{userID}, replacing any
// prior subscription of the user.
func (s *Server) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	var req SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	bbox, err := domain.ParseBBox(req.Bbox)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.subscriptions.Subscribe(r.Context(), userID, bbox); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// DeleteSubscriptions handles DELETE /subscriptions/{userID}.
func (s *Server) DeleteSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := s.subscriptions.UnsubscribeAll(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
