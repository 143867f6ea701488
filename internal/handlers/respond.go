package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dperaltab/tienda-admin/internal/customerror"
	"github.com/dperaltab/tienda-admin/internal/handlers/schemas"
	"github.com/dperaltab/tienda-admin/internal/middlewares/logger"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Error("error encoding response", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP codes: validation and
// conflict errors carry their own code, store-service failures pass theirs
// through, anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	var customErr customerror.CustomError
	if errors.As(err, &customErr) {
		statusCode = customErr.GetHTTPCode()
	}

	logger.Log.Warn("request failed", zap.Error(err))
	writeJSON(w, statusCode, schemas.ErrorResponse{Success: false, Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, schemas.ErrorResponse{Success: false, Message: message})
}
