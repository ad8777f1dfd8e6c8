package handler

import "net/http"

// HealthResponse is the JSON body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the JSON body of GET /server/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// CountResponse is the JSON body of the count endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetVersion handles GET /server/version.
func (s *Server) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{Version: s.version})
}

// CountEntries handles GET /count/entries.
func (s *Server) CountEntries(w http.ResponseWriter, r *http.Request) {
	n, err := s.entries.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CountResponse{Count: n})
}

// CountTags handles GET /count/tags.
func (s *Server) CountTags(w http.ResponseWriter, r *http.Request) {
	n, err := s.tags.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CountResponse{Count: n})
}
