package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sandeepkvelagam/oddside/poker"
	"github.com/sandeepkvelagam/oddside/server/events"
)

var (
	ErrEmptyBatch    = errors.New("batch has no requests")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum size")
)

// BatchRequest is the body of POST /api/evaluate/batch
type BatchRequest struct {
	Requests []poker.Request `json:"requests"`
}

// BatchResponse answers a BatchRequest in request order
type BatchResponse struct {
	Responses []poker.Response `json:"responses"`
}

// HistoryResponse lists a session's recorded events, oldest first
type HistoryResponse struct {
	SessionID string                `json:"session_id"`
	Events    []events.HistoryEntry `json:"events"`
}

// errorResponse is the body of every non-2xx reply
type errorResponse struct {
	Error string `json:"error"`
}

// handleEvaluate evaluates one hand. Unparseable cards are reported in the
// body of a 200 response.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req poker.Request
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.svc.Evaluate(r.Context(), req)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleEvaluateBatch evaluates several hands concurrently
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var batch BatchRequest
	if !s.decode(w, r, &batch) {
		return
	}

	switch {
	case len(batch.Requests) == 0:
		s.writeError(w, http.StatusBadRequest, ErrEmptyBatch)
		return
	case len(batch.Requests) > s.cfg.MaxBatch:
		s.writeError(w, http.StatusBadRequest,
			fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(batch.Requests), s.cfg.MaxBatch))
		return
	}

	responses, err := s.svc.EvaluateBatch(r.Context(), batch.Requests)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	s.writeJSON(w, http.StatusOK, BatchResponse{Responses: responses})
}

// handleShowdown ranks several players sharing the community cards
func (s *Server) handleShowdown(w http.ResponseWriter, r *http.Request) {
	var req poker.ShowdownRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.svc.Showdown(r.Context(), req)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleHistory returns the recorded events of a session
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	history, err := s.svc.History(sessionID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, HistoryResponse{
		SessionID: sessionID,
		Events:    events.NewHistory(history),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
