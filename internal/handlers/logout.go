package handlers

import (
	"context"
	"net/http"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID int64) error
}

// NewLogoutHandler returns an HTTP handler for logout.
// @Summary Log out
// @Description Drops the caller's stored session.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.Response "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(w, r, tokener)
		if claims == nil {
			return
		}

		if err := svc.Logout(r.Context(), claims.UserID); err != nil {
			logger.Log.Errorw("logout failed", "user_id", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeMessage(w, http.StatusOK, "Logged out")
	}
}
