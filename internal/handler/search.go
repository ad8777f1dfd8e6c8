package handler

import (
	"net/http"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/service"
)

// Search handles GET /search.
//
// Query parameters:
//
//	bbox       required, "lat,lng,lat,lng" (south-west, north-east)
//	categories optional, comma-separated category ids; an absent parameter
//	           means "no category filter", an empty one filters on nothing
//	text       optional free text; #hashtags inside are lifted into tag filters
//	tags       optional, comma-separated tag ids
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bbox, err := domain.ParseBBox(q.Get("bbox"))
	if err != nil {
		writeError(w, err)
		return
	}

	var categories []string
	if q.Has("categories") {
		categories = extractIDs(q.Get("categories"))
	}

	ratings, err := s.ratings.EntryRatings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.search.Search(r.Context(), service.SearchRequest{
		Bbox:         bbox,
		Categories:   categories,
		Text:         q.Get("text"),
		Tags:         extractIDs(q.Get("tags")),
		EntryRatings: ratings,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
