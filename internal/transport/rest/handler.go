package rest

import (
	"log/slog"
	"net/http"

	"github.com/duckydrinks/storefront/pkg/web"
)

// HealthCheck is a simple health check endpoint.
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func loggerWithReqID(r *http.Request, logger *slog.Logger) *slog.Logger {
	reqID, found := web.GetRequestID(r.Context())
	if !found {
		reqID = "unknown"
	}
	return logger.With("request_id", reqID)
}
