package handler

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	headerContentType = "Content-Type"
	mimeJSON          = "application/json; charset=utf-8"
	mimeHTML          = "text/html; charset=utf-8"
)

// writeJSON encodes data as the response body with the given status code
func writeJSON(w http.ResponseWriter, logger *zap.Logger, code int, data interface{}) {
	w.Header().Set(headerContentType, mimeJSON)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Failed to write JSON response", zap.Error(err))
	}
}
