package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListCategories handles GET /categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategories handles GET /categories/{ids}.
func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	ids := extractIDs(chi.URLParam(r, "ids"))
	if len(ids) == 0 {
		writeRequestError(w, "no ids given")
		return
	}

	categories, err := s.categories.GetMany(r.Context(), ids)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// ListTags handles GET /tags.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}
