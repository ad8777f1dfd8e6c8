package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/service"
)

// RatingRequest is the JSON body of POST /ratings.
// User optionally names the author; value bounds are enforced by the service.
type RatingRequest struct {
	Entry   string `json:"entry" validate:"required"`
	Title   string `json:"title"`
	Value   int    `json:"value"`
	Context string `json:"context" validate:"required"`
	Comment string `json:"comment" validate:"required"`
	Source  string `json:"source"`
	User    string `json:"user"`
}

// GetRatings handles GET /ratings/{ids}, returning the ratings with their
// comments and author attribution assembled from the relation graph.
func (s *Server) GetRatings(w http.ResponseWriter, r *http.Request) {
	ids := extractIDs(chi.URLParam(r, "ids"))
	if len(ids) == 0 {
		writeRequestError(w, "no ids given")
		return
	}

	views, err := s.ratings.WithComments(r.Context(), ids)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// CreateRating handles POST /ratings.
func (s *Server) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	err := s.ratings.Rate(r.Context(), service.RateEntry{
		Entry:   req.Entry,
		Title:   req.Title,
		Value:   req.Value,
		Context: domain.RatingContext(req.Context),
		Comment: req.Comment,
		Source:  req.Source,
		User:    req.User,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
