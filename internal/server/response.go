package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// problemDetails is an RFC 7807 error body.
type problemDetails struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Detail  string `json:"detail,omitempty"`
	TraceID string `json:"traceId"`
}

func problemResponse(w http.ResponseWriter, r *http.Request, status int, err error) {
	traceID := middleware.GetReqID(r.Context())
	if traceID == "" {
		traceID = uuid.NewString()
	}
	problem := problemDetails{
		Type:    "about:blank",
		Title:   http.StatusText(status),
		Status:  status,
		Detail:  err.Error(),
		TraceID: traceID,
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem)
}

func (s *server) badRequest(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, "error", err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (s *server) notFound(w http.ResponseWriter, id int) {
	s.logger.Warn("application not found", "id", id)
	w.WriteHeader(http.StatusNotFound)
}

// storeFailure answers a failed find or save.
func (s *server) storeFailure(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	args = append(args, "error", err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.logger.Warn(msg, args...)
		w.WriteHeader(http.StatusNotFound)
	default:
		s.logger.Error(msg, args...)
		problemResponse(w, r, http.StatusInternalServerError, err)
	}
}
