package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
	"github.com/smshozab/ConnectHub-Pro/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, firstName, lastName, userType string) (string, *models.UserDB, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: owner@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// First name
	// required: true
	// default: Dana
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// default: Reyes
	LastName string `json:"lastName"`

	// Account kind, business or professional
	// required: true
	// default: business
	UserType string `json:"userType"`
}

// AuthData is the payload returned on successful registration or login
// swagger:model AuthData
type AuthData struct {
	// Signed bearer token
	Token string `json:"token"`

	// The account
	User *models.UserDB `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates a business or professional account. Email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Account registration request"
// @Success 201 {object} handlers.Response "Account created, token issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or account kind"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		token, user, err := svc.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName, req.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUserType):
				writeError(w, http.StatusBadRequest, "User type must be business or professional")
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, "Email already registered")
			default:
				logger.Log.Errorw("registration failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusCreated, AuthData{Token: token, User: user})
	}
}
