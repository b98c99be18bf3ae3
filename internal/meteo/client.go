// Package meteo is the anti-corruption layer between the Skycast lookup
// pipeline and the Open-Meteo public API. All outbound HTTP calls are routed
// through the Client, which enforces consistent behavior: client-side rate
// limiting, circuit breaking, and mapping of transport, status and decode
// failures to the closed types.ErrorCode set.
//
// There is deliberately no retry: a lookup is interactive, and its first
// failure is terminal for the request.
package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"skycast/internal/config"
	"skycast/internal/types"
)

// maxResponseBytes caps how much of an upstream response body is read.
// A 7-day hourly forecast is well under 1 MB.
const maxResponseBytes = 1 << 20

// Client talks to the Open-Meteo geocoding and forecast endpoints. It is
// safe for concurrent use; the limiter and breaker are shared across calls
// so that the whole process shares one upstream allowance.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	limiter    *rate.Limiter
	logger     *slog.Logger

	geocodingURL string
	forecastURL  string
	language     string
	userAgent    string
}

// NewClient creates a Client from the upstream configuration.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		breaker:      cb,
		limiter:      rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		logger:       logger,
		geocodingURL: cfg.GeocodingURL,
		forecastURL:  cfg.ForecastURL,
		language:     cfg.Language,
		userAgent:    cfg.UserAgent,
	}
}

// getJSON performs a GET against rawURL and decodes the JSON body into out.
// label names the upstream call ("geocoding", "weather", "forecast") in error
// messages, mirroring what the dashboard shows the user.
//
// Failures map onto the closed error taxonomy:
//   - transport failure or open breaker -> upstream_network_error
//   - non-2xx status                    -> upstream_http_status (status in Details)
//   - body read or JSON decode failure  -> upstream_parse_error
func (c *Client) getJSON(ctx context.Context, rawURL, label string, out any) error {
	// Wait for rate limiter permission or context cancellation.
	if err := c.limiter.Wait(ctx); err != nil {
		return types.NewAppError(types.ErrCodeUpstreamNetwork,
			fmt.Sprintf("network error: %s rate limit wait canceled", label), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalUnexpected,
			fmt.Sprintf("building %s request", label), err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		c.logger.WarnContext(ctx, "upstream call failed",
			"call", label,
			"error", err,
		)
		return types.NewAppError(types.ErrCodeUpstreamNetwork,
			fmt.Sprintf("network error: %s request failed", label), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return types.NewAppErrorWithDetails(types.ErrCodeUpstreamStatus,
			fmt.Sprintf("%s error: status %d", label, resp.StatusCode), nil,
			map[string]any{"status": resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return types.NewAppError(types.ErrCodeUpstreamParse,
			fmt.Sprintf("parse error: reading %s response", label), err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return types.NewAppError(types.ErrCodeUpstreamParse,
			fmt.Sprintf("parse error: decoding %s response", label), err)
	}

	return nil
}
