package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub/config"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/service"
	"recipehub/internal/errors"
)

func newMailerConfig(endpoint string) *config.Config {
	return &config.Config{
		Notification: &config.NotificationConfig{
			Endpoint: endpoint,
			Timeout:  5 * time.Second,
		},
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPMailer_SendTemplate(t *testing.T) {
	var received map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	mailer := NewHTTPMailer(newMailerConfig(srv.URL), newTestLogger())

	err := mailer.SendTemplate(context.Background(), &service.TemplateMessage{
		Name:         "Alice",
		Email:        "alice@example.com",
		Subject:      "Password Reset Request",
		TemplateType: "PasswordReset",
		TemplateData: map[string]string{"ResetLink": "https://recipehub.example.com/reset?token=abc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", received["name"])
	assert.Equal(t, "alice@example.com", received["email"])
	assert.Equal(t, "Password Reset Request", received["subject"])
	assert.Equal(t, "PasswordReset", received["templateType"])

	templateData, ok := received["templateData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://recipehub.example.com/reset?token=abc", templateData["ResetLink"])
}

func TestHTTPMailer_SendTemplateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	mailer := NewHTTPMailer(newMailerConfig(srv.URL), newTestLogger())

	err := mailer.SendTemplate(context.Background(), &service.TemplateMessage{
		Name:         "Alice",
		Email:        "alice@example.com",
		Subject:      "Password Reset Request",
		TemplateType: "PasswordReset",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
}

func TestHTTPMailer_SendTemplateUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // Shut down immediately so the request fails.

	mailer := NewHTTPMailer(newMailerConfig(srv.URL), newTestLogger())

	err := mailer.SendTemplate(context.Background(), &service.TemplateMessage{
		Name:         "Alice",
		Email:        "alice@example.com",
		Subject:      "Password Reset Request",
		TemplateType: "PasswordReset",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
}
