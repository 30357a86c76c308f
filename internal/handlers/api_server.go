// internal/handlers/api_server.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/players/internal/auth"
	"github.com/jason-s-yu/players/internal/middleware"
	"github.com/jason-s-yu/players/internal/models"
	"github.com/jason-s-yu/players/internal/store"
)

// APIServer holds the stores and the token service and exposes the HTTP
// handlers. Stores are injected rather than shared module state so tests can
// build a fresh server per case.
type APIServer struct {
	Users   *store.UserStore
	Players *store.PlayerStore
	Tokens  *auth.TokenService
	Logger  *logrus.Logger
}

// NewAPIServer wires an APIServer with empty stores.
func NewAPIServer(tokens *auth.TokenService, logger *logrus.Logger) *APIServer {
	return &APIServer{
		Users:   store.NewUserStore(),
		Players: store.NewPlayerStore(),
		Tokens:  tokens,
		Logger:  logger,
	}
}

// Router builds the full route table. Player routes sit behind the auth gate;
// registration and login do not.
func (s *APIServer) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/user", s.CreateUserHandler).Methods(http.MethodPost)
	api.HandleFunc("/login", s.LoginHandler).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(s.Tokens))
	protected.HandleFunc("/players", s.CreatePlayerHandler).Methods(http.MethodPost)
	protected.HandleFunc("/players", s.ListPlayersHandler).Methods(http.MethodGet)
	protected.HandleFunc("/players/{id}", s.DeletePlayerHandler).Methods(http.MethodDelete)

	return r
}

// errorResponse is the JSON body for every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError maps a domain error to its HTTP status and writes the JSON
// error body. Unrecognized errors are logged and reported as 500; they are
// fatal to the request only, never to the process.
func (s *APIServer) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrDuplicateEmail), errors.Is(err, models.ErrDuplicatePlayer):
		status = http.StatusConflict
	case errors.Is(err, models.ErrAuthRequired), errors.Is(err, models.ErrInvalidToken), errors.Is(err, models.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrUserNotFound), errors.Is(err, models.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	default:
		s.Logger.WithError(err).Error("internal error")
	}

	writeJSON(w, status, errorResponse{Success: false, Error: err.Error()})
}

// writeBadRequest reports a validation failure on the request body.
func (s *APIServer) writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
