package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/duckydrinks/storefront/internal/forms"
	"github.com/duckydrinks/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
)

// maxFormBody caps form submissions; recipe bodies are the largest field.
const maxFormBody = 64 << 10

// FormRelay forwards a validated submission to the workflow webhook.
type FormRelay interface {
	Submit(ctx context.Context, formType string, fields json.RawMessage) error
}

// FormsHandler accepts site form submissions and relays them.
type FormsHandler struct {
	relay  FormRelay
	logger *slog.Logger
}

// NewFormsHandler creates a forms handler over the given relay.
func NewFormsHandler(relay FormRelay, logger *slog.Logger) *FormsHandler {
	return &FormsHandler{
		relay:  relay,
		logger: logger.With("component", "rest.forms"),
	}
}

// RegisterRoutes registers the form submission route.
func (h *FormsHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/forms/{formType}", h.Submit)
}

// Submit relays one form submission. Failures surface as a generic message
// prompting the visitor to retry.
func (h *FormsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	formType := chi.URLParam(r, "formType")

	fields, err := io.ReadAll(io.LimitReader(r.Body, maxFormBody))
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error reading request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.relay.Submit(r.Context(), formType, fields)
	switch {
	case err == nil:
		web.RespondJSON(w, mLogger, http.StatusAccepted, map[string]bool{"success": true})
	case errors.Is(err, forms.ErrUnknownFormType):
		mLogger.WarnContext(r.Context(), "Unknown form type", "form_type", formType)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Unknown form type %q", formType))
	case errors.Is(err, forms.ErrRelayFailed):
		mLogger.ErrorContext(r.Context(), "Form relay failed", "form_type", formType, "error", err)
		web.RespondError(w, mLogger, http.StatusBadGateway, "Something went wrong, please try again")
	case errors.Is(err, forms.ErrInvalidSubmission):
		mLogger.WarnContext(r.Context(), "Invalid form submission", "form_type", formType, "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid form submission")
	default:
		mLogger.ErrorContext(r.Context(), "Form submission failed", "form_type", formType, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Something went wrong, please try again")
	}
}
