// Package handlers contains the HTTP handler implementations for the Skycast API.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skycast/internal/core"
	"skycast/internal/types"
)

// LookupService defines the service contract for the weather handler. It is
// declared locally so the handler depends only on the one method it uses.
type LookupService interface {
	Lookup(ctx context.Context, city string) (*types.WeatherSnapshot, error)
}

// WeatherHandler maps HTTP requests to the weather lookup service.
type WeatherHandler struct {
	service LookupService
	logger  *slog.Logger
}

// NewWeatherHandler creates a new WeatherHandler with the provided dependencies.
func NewWeatherHandler(svc LookupService, logger *slog.Logger) *WeatherHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeatherHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes mounts the weather endpoints onto the mux.
func (h *WeatherHandler) RegisterRoutes(r chi.Router) {
	r.Get("/weather", h.HandleLookup)
}

// HandleLookup serves GET /v1/weather?city=<name>. The city parameter is
// required; validation of whitespace-only input happens in the service so
// the rule lives in one place.
func (h *WeatherHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	snapshot, err := h.service.Lookup(r.Context(), city)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: snapshot})
}
