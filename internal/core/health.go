package core

import "net/http"

// HealthStatus is the response body for the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HandleHealth reports process liveness. It performs no upstream checks so
// that a degraded Open-Meteo API does not take the service out of rotation.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, HealthStatus{
		Status:  "ok",
		Service: s.Config.Service,
	})
}
