package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"eth-marketplace/internal/markerrors"
	"eth-marketplace/utils"

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
	case errors.Is(err, markerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, markerrors.ErrTransactionNotFound):
		return http.StatusNotFound, "transaction not found"
	case errors.Is(err, markerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, markerrors.ErrNotSeller):
		return http.StatusForbidden, "only the seller may modify this listing"
	case errors.Is(err, markerrors.ErrItemNotEditable):
		return http.StatusBadRequest, "item can no longer be modified"
	case errors.Is(err, markerrors.ErrAlreadySold):
		return http.StatusBadRequest, "item not available"
	case errors.Is(err, markerrors.ErrDuplicateTxHash):
		return http.StatusConflict, "transaction hash already recorded"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
