// Package server provides the HTTP server and routing for the trading journal.
package server

import (
	"encoding/json"
	"net/http"
)

// handleHealth handles health check requests. The database check keeps the
// endpoint honest: a healthy process with a corrupt journal file is not
// healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if s.db != nil {
		if err := s.db.HealthCheck(r.Context()); err != nil {
			s.log.Error().Err(err).Msg("Database health check failed")
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	s.writeJSON(w, code, map[string]any{
		"status":  status,
		"service": "jurnalfx",
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
