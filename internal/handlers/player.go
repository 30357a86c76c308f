// internal/handlers/player.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jason-s-yu/players/internal/middleware"
	"github.com/jason-s-yu/players/internal/models"
)

type createPlayerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Rating     string `json:"rating"`
	Handedness string `json:"handedness"`
	CreatedBy  string `json:"created_by"`
}

type playerResponse struct {
	Success bool          `json:"success"`
	Player  models.Player `json:"player"`
}

type playerListResponse struct {
	Success bool            `json:"success"`
	Players []models.Player `json:"players"`
}

// CreatePlayerHandler creates a player owned by the authenticated user. The
// owner is always the token subject; a created_by in the body that names a
// different user is rejected rather than honored.
func (s *APIServer) CreatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.SubjectFrom(r.Context())

	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "invalid payload")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Rating == "" || req.Handedness == "" {
		s.writeBadRequest(w, "first_name, last_name, rating and handedness are required")
		return
	}
	handedness := models.Handedness(req.Handedness)
	if !handedness.Valid() {
		s.writeBadRequest(w, "handedness must be left or right")
		return
	}
	if req.CreatedBy != "" && req.CreatedBy != userID {
		s.writeError(w, models.ErrNotOwner)
		return
	}

	player, err := s.Players.Create(models.Player{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Rating:     req.Rating,
		Handedness: handedness,
		CreatedBy:  userID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, playerResponse{Success: true, Player: player})
}

// ListPlayersHandler returns the authenticated user's players in creation
// order.
func (s *APIServer) ListPlayersHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.SubjectFrom(r.Context())

	players := s.Players.Find(models.Player{CreatedBy: userID})
	if players == nil {
		players = []models.Player{}
	}

	writeJSON(w, http.StatusOK, playerListResponse{Success: true, Players: players})
}

type deleteResponse struct {
	Success bool `json:"success"`
}

// DeletePlayerHandler deletes a single player by id. Only the owner may
// delete it: 404 for an unknown id, 403 when the player belongs to someone
// else.
func (s *APIServer) DeletePlayerHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.SubjectFrom(r.Context())
	playerID := mux.Vars(r)["id"]

	if err := s.Players.RemoveByID(playerID, userID); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true})
}
