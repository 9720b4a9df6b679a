package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/unitcalc/internal/app/format"
	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/ports"
	"github.com/aalvaropc/unitcalc/internal/usecase"
)

// maxBodyBytes bounds request bodies; conversion requests are tiny.
const maxBodyBytes = 16 << 10

// Catalog is the unit registry plus the ordered category listing.
type Catalog interface {
	ports.UnitRegistry
	Categories() []domain.Category
}

type Handler struct {
	catalog   Catalog
	conv      *usecase.Converter
	sessions  ports.SessionStore
	validator *validator.Validate
	log       *slog.Logger
	precision int
}

type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

func WithPrecision(p int) Option {
	return func(h *Handler) { h.precision = p }
}

func NewHandler(catalog Catalog, sessions ports.SessionStore, opts ...Option) *Handler {
	h := &Handler{
		catalog:   catalog,
		conv:      usecase.NewConverter(catalog),
		sessions:  sessions,
		validator: validator.New(),
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		precision: format.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.catalog.Categories()
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryToResponse(c))
	}
	respondJSON(w, h.log, http.StatusOK, out)
}

// ListUnits handles GET /api/categories/{category}/units.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "category")
	c, err := h.catalog.Category(name)
	if err != nil {
		msg := "unknown category: " + name
		var oe *domain.OpError
		if errors.As(err, &oe) {
			msg = errorText(oe)
		}
		respondError(w, r, h.log, http.StatusNotFound, domain.KindUnknownCategory, msg)
		return
	}

	out := UnitsResponse{Category: c.Name, Units: make([]UnitResponse, 0, len(c.Units))}
	for _, u := range c.Units {
		out.Units = append(out.Units, UnitResponse{Symbol: u.Symbol, Label: u.Label})
	}
	respondJSON(w, h.log, http.StatusOK, out)
}

// Convert handles POST /api/convert. It never touches any history.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeConvert(w, r)
	if !ok {
		return
	}

	res, err := h.conv.Convert(req.toDomain())
	if err != nil {
		respondDomainError(w, r, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, resultToResponse(res, h.precision))
}

// CreateSession handles POST /api/sessions.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessions.Create()
	if err != nil {
		respondDomainError(w, r, h.log, err)
		return
	}
	h.log.Info("session.created", "session", id)
	respondJSON(w, h.log, http.StatusCreated, SessionResponse{ID: id})
}

// DeleteSession handles DELETE /api/sessions/{id}.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := h.sessions.Delete(id); err != nil {
		respondDomainError(w, r, h.log, err)
		return
	}
	h.log.Info("session.deleted", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

// ListHistory handles GET /api/sessions/{id}/history.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	entries := s.History()
	out := HistoryResponse{Entries: make([]HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, entryToResponse(e, h.precision))
	}
	respondJSON(w, h.log, http.StatusOK, out)
}

// CommitHistory handles POST /api/sessions/{id}/history: convert and record.
func (h *Handler) CommitHistory(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeConvert(w, r)
	if !ok {
		return
	}

	e, err := s.Commit(req.toDomain())
	if err != nil {
		respondDomainError(w, r, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusCreated, entryToResponse(e, h.precision))
}

// ClearHistory handles DELETE /api/sessions/{id}/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*usecase.Session, bool) {
	id := pathParam(r, "id")
	log, err := h.sessions.Get(id)
	if err != nil {
		respondDomainError(w, r, h.log, err)
		return nil, false
	}
	return usecase.NewSession(h.conv, log, usecase.WithLogger(h.log.With("session", id))), true
}

func (h *Handler) decodeConvert(w http.ResponseWriter, r *http.Request) (ConvertRequest, bool) {
	var req ConvertRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, r, h.log, http.StatusBadRequest, domain.KindInvalidInput, "invalid request format")
		return ConvertRequest{}, false
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(w, r, h.log, http.StatusBadRequest, domain.KindInvalidInput, "validation error: "+err.Error())
		return ConvertRequest{}, false
	}
	return req, true
}

// pathParam returns a decoded route parameter. chi matches on r.URL.RawPath
// when the request has one and on the already decoded Path otherwise, so only
// the first case needs unescaping.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
