package forms

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duckydrinks/storefront/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type webhookStub struct {
	status  int
	gotBody map[string]any
	calls   int
}

func (s *webhookStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.calls++
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&s.gotBody))
		w.WriteHeader(s.status)
	}
}

func newTestRelay(t *testing.T, server *httptest.Server) *Relay {
	t.Helper()
	relay := NewRelay(config.WebhookConfig{URL: server.URL, Timeout: time.Second},
		server.Client(), slog.New(slog.DiscardHandler))
	relay.now = func() time.Time {
		return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	}
	return relay
}

func TestRelay_Submit_FlatEnvelope(t *testing.T) {
	// given
	stub := &webhookStub{status: http.StatusOK}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()
	relay := newTestRelay(t, server)

	fields := json.RawMessage(`{
		"name": "Pat Doe",
		"email": "pat@example.com",
		"subject": "Wholesale",
		"message": "Do you sell pallets?"
	}`)

	// when
	err := relay.Submit(context.Background(), TypeContact, fields)

	// then
	require.NoError(t, err)
	assert.Equal(t, TypeContact, stub.gotBody["formType"])
	assert.Equal(t, "2026-03-14T09:30:00Z", stub.gotBody["timestamp"])
	assert.Equal(t, "Pat Doe", stub.gotBody["name"], "fields must sit flat in the envelope")
	assert.Equal(t, "Wholesale", stub.gotBody["subject"])
}

func TestRelay_Submit_NonSuccessStatusFails(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "client error", status: http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			stub := &webhookStub{status: tc.status}
			server := httptest.NewServer(stub.handler(t))
			defer server.Close()
			relay := newTestRelay(t, server)

			// when
			err := relay.Submit(context.Background(), TypeWaitlist,
				json.RawMessage(`{"email": "pat@example.com", "flavor": "Mango"}`))

			// then
			assert.ErrorIs(t, err, ErrRelayFailed)
		})
	}
}

func TestRelay_Submit_RejectsUnknownFormType(t *testing.T) {
	// given
	stub := &webhookStub{status: http.StatusOK}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()
	relay := newTestRelay(t, server)

	// when
	err := relay.Submit(context.Background(), "newsletter", json.RawMessage(`{}`))

	// then
	assert.ErrorIs(t, err, ErrUnknownFormType)
	assert.Zero(t, stub.calls, "invalid submissions must not reach the webhook")
}

func TestRelay_Submit_ValidatesFields(t *testing.T) {
	testCases := []struct {
		name     string
		formType string
		fields   string
	}{
		{name: "contact missing email", formType: TypeContact,
			fields: `{"name": "Pat", "subject": "Hi", "message": "Hello"}`},
		{name: "waitlist bad email", formType: TypeWaitlist,
			fields: `{"email": "not-an-email"}`},
		{name: "review rating out of range", formType: TypeProductReview,
			fields: `{"name": "Pat", "rating": 6, "product": "Ducky Classic", "review": "Great"}`},
		{name: "rating below range", formType: TypeRecipeRating,
			fields: `{"recipe_id": "mojito", "rating": 0}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			stub := &webhookStub{status: http.StatusOK}
			server := httptest.NewServer(stub.handler(t))
			defer server.Close()
			relay := newTestRelay(t, server)

			// when
			err := relay.Submit(context.Background(), tc.formType, json.RawMessage(tc.fields))

			// then
			require.Error(t, err)
			assert.Zero(t, stub.calls, "invalid submissions must not reach the webhook")
		})
	}
}
