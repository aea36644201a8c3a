package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"bumpwise/apimodels"
	"bumpwise/internal/resolver"
)

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req apimodels.SafetyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	defer r.Body.Close()

	if req.Query == "" && req.Image == "" {
		writeError(w, http.StatusBadRequest, "Query or image required", "")
		return
	}
	if req.Trimester < 0 || req.Trimester > 3 {
		writeError(w, http.StatusBadRequest, "Invalid trimester", "trimester must be 1, 2, or 3")
		return
	}

	slog.Debug("Received safety check request", "query", req.Query, "hasImage", req.Image != "", "trimester", req.Trimester)

	result, err := s.resolver.Resolve(r.Context(), req)
	if err != nil {
		slog.Error("Safety check failed", "error", err)
		switch {
		case errors.Is(err, resolver.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		case errors.Is(err, resolver.ErrProvidersExhausted):
			writeError(w, http.StatusBadGateway, "Failed to analyze", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to analyze", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecalls(w http.ResponseWriter, r *http.Request) {
	list := s.recalls.Fetch(r.Context())
	if list == nil {
		list = []apimodels.Recall{}
	}
	writeJSON(w, http.StatusOK, apimodels.RecallsResponse{Recalls: list, Source: "rss-multi"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, apimodels.ErrorResponse{Error: kind, Message: message})
}
