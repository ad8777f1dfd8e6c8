package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jmaurer/placedir/internal/service"
)

// RegisterRequest is the JSON body of POST /users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterUser handles POST /users.
func (s *Server) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	err := s.users.Register(r.Context(), service.NewUser{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Login handles POST /login. On success it returns the user id; the caller is
// responsible for session handling.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	id, err := s.users.Login(r.Context(), service.Login{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: id})
}
