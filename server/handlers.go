package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/katalvlaran/stepwise/engine"
)

// createRunResponse is returned by POST /api/v1/runs.
type createRunResponse struct {
	ID        string `json:"id"`
	Algorithm string `json:"algorithm"`
	Steps     int    `json:"steps"`
}

type compareRequest struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, engine.Algorithms())
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req engine.Request
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp, err := engine.Run(r.Context(), req, engine.WithLimits(s.cfg.Limits))
	if err != nil {
		s.logger.Warn("run failed", "algorithm", req.Algorithm, "error", err)
		writeError(w, statusFor(err), err)
		return
	}

	run := &Run{CreatedAt: time.Now().UTC(), Request: req, Response: resp}
	if evicted, ok := s.store.Put(run); ok {
		s.logger.Debug("run evicted", "id", evicted)
	}
	s.logger.Info("run stored", "id", run.ID, "algorithm", resp.Algorithm, "steps", resp.Steps.Len())
	writeJSON(w, http.StatusCreated, createRunResponse{
		ID:        run.ID.String(),
		Algorithm: resp.Algorithm,
		Steps:     resp.Steps.Len(),
	})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleGetStep(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookup(w, r)
	if !ok {
		return
	}
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("step index must be an integer"))
		return
	}
	step, err := run.Response.Steps.At(n)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, errors.New("run not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompareMatchers(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cmp, err := engine.CompareMatchers(r.Context(), req.Text, req.Pattern, engine.WithLimits(s.cfg.Limits))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// lookup resolves the {id} URL parameter, writing the error response itself.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*Run, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	run, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("run not found"))
		return nil, false
	}

	return run, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}

// statusFor maps engine errors to HTTP status codes. Errors that are not
// about the request shape are domain failures (cycle, disconnected graph).
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrUnknownAlgorithm):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrBadParams), errors.Is(err, engine.ErrBadInput):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
