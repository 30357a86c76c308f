// internal/handlers/user.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jason-s-yu/players/internal/models"
)

type createUserRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type userResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

// CreateUserHandler registers a new user and issues a token for it.
//
// Request payload:
//
//	{
//	  "first_name": "Ann",
//	  "last_name": "Lee",
//	  "email": "ann@example.com",
//	  "password": "password",
//	  "confirm_password": "password"
//	}
//
// Responds 201 with the stored user (password stripped) and a JWT, 409 if the
// email is already registered.
func (s *APIServer) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "invalid payload")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		s.writeBadRequest(w, "first_name, last_name, email and password are required")
		return
	}
	if req.Password != req.ConfirmPassword {
		s.writeBadRequest(w, "passwords must match")
		return
	}

	user, err := s.Users.Create(models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	token, err := s.Tokens.IssueUserToken(user.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		Success: true,
		User:    user.WithoutPassword(),
		Token:   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler authenticates a user by email and password and issues a
// token. Unknown email and wrong password are indistinguishable to the
// caller: both respond 401.
func (s *APIServer) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "invalid payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		s.writeBadRequest(w, "email and password are required")
		return
	}

	user, ok := s.Users.FindOne(req.Email)
	if !ok || user.Password != req.Password {
		s.Logger.WithField("email", req.Email).Info("failed login attempt")
		s.writeError(w, models.ErrInvalidCredentials)
		return
	}

	token, err := s.Tokens.IssueUserToken(user.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Success: true,
		User:    user.WithoutPassword(),
		Token:   token,
	})
}
