package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-settlement/internal/tradeerrors"
	"auction-settlement/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, tradeerrors.ErrNotOnboarded):
		return http.StatusNotFound, "item not onboarded"
	case errors.Is(err, tradeerrors.ErrInvariant):
		return http.StatusInternalServerError, "settlement invariant broken"
	case errors.Is(err, tradeerrors.ErrStateConflict):
		return http.StatusConflict, "operation conflicts with current state"
	case errors.Is(err, tradeerrors.ErrPrecondition):
		return http.StatusBadRequest, "operation precondition not met"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
