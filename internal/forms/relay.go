package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/duckydrinks/storefront/pkg/client/rest"
	"github.com/duckydrinks/storefront/pkg/config"
	"github.com/go-playground/validator/v10"
)

// Relay validates form submissions and posts them to the webhook. Success is
// any 2xx response; anything else is ErrRelayFailed.
type Relay struct {
	url      string
	doer     rest.Doer
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewRelay creates a relay for the configured webhook.
func NewRelay(cfg config.WebhookConfig, doer rest.Doer, logger *slog.Logger) *Relay {
	return &Relay{
		url:      cfg.URL,
		doer:     doer,
		validate: validator.New(),
		logger:   logger.With("component", "forms"),
		now:      time.Now,
	}
}

// Submit decodes rawFields as the payload for formType, validates it, and
// relays it inside the webhook envelope. The envelope is flat: the form
// fields sit next to formType and timestamp, not nested under a key.
func (r *Relay) Submit(ctx context.Context, formType string, rawFields json.RawMessage) error {
	payload, err := payloadFor(formType)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(rawFields, payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSubmission, formType, err)
	}
	if err := r.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSubmission, formType, err)
	}

	envelope, err := buildEnvelope(formType, r.now().UTC(), payload)
	if err != nil {
		return fmt.Errorf("failed to build webhook envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(envelope))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.doer.Do(req)
	if err != nil {
		r.logger.WarnContext(ctx, "Webhook request failed", "form_type", formType, "error", err)
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}
	defer func() { _, _ = io.Copy(io.Discard, resp.Body); _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.WarnContext(ctx, "Webhook rejected submission", "form_type", formType, "status", resp.StatusCode)
		return fmt.Errorf("%w: webhook returned status %d", ErrRelayFailed, resp.StatusCode)
	}
	r.logger.InfoContext(ctx, "Form submission relayed", "form_type", formType)
	return nil
}

// buildEnvelope merges the form fields with formType and timestamp into one
// flat JSON object.
func buildEnvelope(formType string, timestamp time.Time, payload any) ([]byte, error) {
	fields, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	envelope := map[string]any{}
	if err := json.Unmarshal(fields, &envelope); err != nil {
		return nil, err
	}
	envelope["formType"] = formType
	envelope["timestamp"] = timestamp.Format(time.RFC3339)
	return json.Marshal(envelope)
}
