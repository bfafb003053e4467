package app

import (
	"log/slog"
	"net/http"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// WithHTTPClient sets the HTTP client used to reach the API
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = client
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithBaseURL overrides the configured API location
func WithBaseURL(baseURL string) Option {
	return func(cfg *appConfig) {
		cfg.baseURL = baseURL
	}
}
