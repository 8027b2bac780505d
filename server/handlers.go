package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/InputUsername/metadata-filter/cache"
	"github.com/InputUsername/metadata-filter/filters"
	"github.com/InputUsername/metadata-filter/rules"
)

// CleanRequest represents a request to clean a metadata string.
type CleanRequest struct {
	Text string   `json:"text"`
	Sets []string `json:"sets,omitempty"`
}

// CleanResponse represents the response to a clean request.
type CleanResponse struct {
	Text    string   `json:"text"`
	Cleaned string   `json:"cleaned"`
	Sets    []string `json:"sets"`
}

// SetsResponse lists the rule sets the server can apply.
type SetsResponse struct {
	Sets []string `json:"sets"`
}

// ErrorResponse represents an error.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// handleClean handles POST /v1/clean requests.
func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	names := req.Sets
	if len(names) == 0 {
		names = s.defaultSets
	}

	resolved := make([]rules.RuleSet, 0, len(names))
	for _, name := range names {
		set, ok := s.sets[name]
		if !ok {
			s.sendError(w, "unknown rule set: "+name, http.StatusBadRequest)
			return
		}
		resolved = append(resolved, set)
	}

	key := cache.Key(names, req.Text)
	if s.cache != nil {
		cleaned, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("cache get failed", "error", err)
		} else if ok {
			s.sendJSON(w, CleanResponse{Text: req.Text, Cleaned: cleaned, Sets: names}, http.StatusOK)
			return
		}
	}

	cleaned := filters.ApplyAll(req.Text, resolved...)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, cleaned); err != nil {
			s.logger.Warn("cache set failed", "error", err)
		}
	}

	s.sendJSON(w, CleanResponse{Text: req.Text, Cleaned: cleaned, Sets: names}, http.StatusOK)
}

// handleSets handles GET /v1/sets requests.
func (s *Server) handleSets(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.sets))
	for name := range s.sets {
		names = append(names, name)
	}
	sort.Strings(names)

	s.sendJSON(w, SetsResponse{Sets: names}, http.StatusOK)
}

// handleHealth handles GET /health requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// sendJSON writes a JSON response with the given status code.
func (s *Server) sendJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// sendError writes a JSON error response.
func (s *Server) sendError(w http.ResponseWriter, msg string, status int) {
	s.sendJSON(w, ErrorResponse{Error: msg, StatusCode: status}, status)
}
