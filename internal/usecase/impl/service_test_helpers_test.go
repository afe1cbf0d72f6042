package impl

import (
	"io"
	"log/slog"

	"recipehub/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test-secret"
	cfg.SecretKey.ExpirationInMinutes = 60
	cfg.PasswordReset = &config.PasswordResetConfig{
		BaseURL:    "https://recipehub.example.com/reset-password",
		TTLMinutes: 30,
	}

	return cfg
}
