package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("http.encode.failed", "err", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, kind domain.ErrorKind, msg string) {
	reqID := middleware.GetReqID(r.Context())

	if status >= http.StatusInternalServerError {
		log.Error("http.error", "status", status, "kind", kind, "msg", msg, "path", r.URL.Path, "request_id", reqID)
	} else {
		log.Debug("http.error", "status", status, "kind", kind, "msg", msg, "path", r.URL.Path, "request_id", reqID)
	}

	respondJSON(w, log, status, ErrorResponse{
		Error:     msg,
		Kind:      string(kind),
		RequestID: reqID,
	})
}

// respondDomainError maps an error from the engine or the session store to a status code.
func respondDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		respondError(w, r, log, http.StatusInternalServerError, domain.KindExecution, "internal error")
		return
	}

	switch {
	case errors.Is(err, domain.ErrSessionLimit):
		respondError(w, r, log, http.StatusServiceUnavailable, oe.Kind, "session limit reached")
	case oe.Kind == domain.KindNotFound:
		respondError(w, r, log, http.StatusNotFound, oe.Kind, errorText(oe))
	case oe.Kind == domain.KindUnknownCategory,
		oe.Kind == domain.KindUnknownUnit,
		oe.Kind == domain.KindInvalidInput:
		respondError(w, r, log, http.StatusBadRequest, oe.Kind, errorText(oe))
	case oe.Kind == domain.KindUnitMismatch:
		respondError(w, r, log, http.StatusUnprocessableEntity, oe.Kind, errorText(oe))
	default:
		respondError(w, r, log, http.StatusInternalServerError, oe.Kind, "internal error")
	}
}

// errorText drops the operation prefix, which is an implementation detail.
func errorText(oe *domain.OpError) string {
	if oe.Err != nil {
		return oe.Err.Error()
	}
	return string(oe.Kind)
}
