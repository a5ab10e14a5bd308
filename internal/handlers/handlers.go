// Package handlers wires the HTTP surface: one constructor per endpoint,
// each depending only on the narrow service interface it needs. Every
// response uses the {success, data?|message?} envelope.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/smshozab/ConnectHub-Pro/internal/jwt"
)

// Tokener extracts and parses the bearer token for protected endpoints.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Response is the envelope every endpoint writes.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`

	// Payload, present on success
	Data any `json:"data,omitempty"`

	// Human-readable outcome, present on errors and message-only successes
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope for failed requests
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Error message
	// default: Internal server error
	Message string `json:"message"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Success: false, Message: message})
}

// getClaims resolves the authenticated principal from the bearer token.
// It writes a 401 and returns nil when the token is missing or invalid.
func getClaims(w http.ResponseWriter, r *http.Request, tokener Tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	return claims
}

// requireKind writes a 403 when the principal's kind does not match the
// route's expected kind.
func requireKind(w http.ResponseWriter, claims *jwt.Claims, kind string) bool {
	if claims.UserType != kind {
		writeError(w, http.StatusForbidden, "Access denied for this account type")
		return false
	}
	return true
}
