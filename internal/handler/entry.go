package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jmaurer/placedir/internal/service"
)

// EntryRequest is the JSON body of POST /entries and PUT /entries/{id}.
// License is only honored on create; Version only on update.
type EntryRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Lat         float64  `json:"lat" validate:"min=-90,max=90"`
	Lng         float64  `json:"lng" validate:"min=-180,max=180"`
	Street      string   `json:"street"`
	Zip         string   `json:"zip"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Telephone   string   `json:"telephone"`
	Homepage    string   `json:"homepage"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	License     string   `json:"license"`
	Version     uint64   `json:"version"`
}

// IDResponse is the JSON body returned by the create and update endpoints.
type IDResponse struct {
	ID string `json:"id"`
}

// GetEntries handles GET /entries/{ids}, where ids is a comma-separated list.
// Unknown ids are skipped, not an error.
func (s *Server) GetEntries(w http.ResponseWriter, r *http.Request) {
	ids := extractIDs(chi.URLParam(r, "ids"))
	if len(ids) == 0 {
		writeRequestError(w, "no ids given")
		return
	}

	entries, err := s.entries.GetMany(r.Context(), ids)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// CreateEntry handles POST /entries.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	id, err := s.entries.Create(r.Context(), service.NewEntry{
		Title:       req.Title,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Street:      req.Street,
		Zip:         req.Zip,
		City:        req.City,
		Country:     req.Country,
		Email:       req.Email,
		Telephone:   req.Telephone,
		Homepage:    req.Homepage,
		Categories:  req.Categories,
		Tags:        req.Tags,
		License:     req.License,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateEntry handles PUT /entries/{id}. The submitted version must be
// exactly the stored version plus one.
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeRequestError(w, "no id given")
		return
	}
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	err := s.entries.Update(r.Context(), service.UpdateEntry{
		ID:          id,
		Version:     req.Version,
		Title:       req.Title,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Street:      req.Street,
		Zip:         req.Zip,
		City:        req.City,
		Country:     req.Country,
		Email:       req.Email,
		Telephone:   req.Telephone,
		Homepage:    req.Homepage,
		Categories:  req.Categories,
		Tags:        req.Tags,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// extractIDs splits a comma-separated id list, dropping empty fragments.
func extractIDs(s string) []string {
	out := []string{}
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
