package core

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes configures the middleware chain and mounts all routes on the
// server's router. Middleware ordering matters: Recoverer must be outermost
// so that a panic anywhere in the chain still produces a JSON 500, and the
// request ID must be assigned before the logger reads it.
func (s *Server) MountRoutes() {
	s.router.Use(s.Recoverer)
	s.router.Use(ContextTimeoutMiddleware(s.Config.Server.RequestTimeout))
	s.router.Use(RequestIDMiddleware)
	s.router.Use(s.SecurityHeadersMiddleware)
	s.router.Use(RequestLogger(s.Logger))
	s.router.Use(NewCORSMiddleware(s.Config.Security.CorsAllowedOrigins))
	s.router.Use(s.MetricsMiddleware)

	s.router.Route("/v1", s.mountV1Routes)

	s.router.Get("/health", s.HandleHealth)

	if s.MetricsHandler != nil {
		s.router.Method(http.MethodGet, "/metrics", s.MetricsHandler)
	}
}

func (s *Server) mountV1Routes(r chi.Router) {
	for _, register := range s.V1RouteRegistrars {
		register(r)
	}
}
