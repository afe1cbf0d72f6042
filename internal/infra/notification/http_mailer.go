// Package notification provides concrete implementations for outbound user notifications.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"recipehub/config"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultMailerTimeout = 30 * time.Second

// httpMailer implements Mailer by sending templated messages as JSON over
// HTTP POST to the notification service endpoint.
type httpMailer struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPMailer creates a new HTTP-backed mailer from the notification config.
func NewHTTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	timeout := defaultMailerTimeout
	if cfg.Notification != nil && cfg.Notification.Timeout > 0 {
		timeout = cfg.Notification.Timeout
	}

	endpoint := ""
	if cfg.Notification != nil {
		endpoint = cfg.Notification.Endpoint
	}

	return &httpMailer{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SendTemplate delivers a templated message to the notification service.
func (m *httpMailer) SendTemplate(ctx context.Context, msg *service.TemplateMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	m.logger.Info("[Mailer] Sending templated message",
		slog.String("endpoint", m.endpoint),
		slog.String("templateType", msg.TemplateType),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrNotificationFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainerrors.ErrNotificationFailed.WrapMessage(
			fmt.Sprintf("notification service returned non-success status: %d", resp.StatusCode),
		)
	}

	m.logger.Info("[Mailer] Templated message sent",
		slog.String("templateType", msg.TemplateType),
	)

	return nil
}
