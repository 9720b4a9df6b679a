package api

import (
	"math"
	"time"

	"github.com/aalvaropc/unitcalc/internal/app/format"
	"github.com/aalvaropc/unitcalc/internal/domain"
)

// ConvertRequest is the body of POST /api/convert and POST /api/sessions/{id}/history.
type ConvertRequest struct {
	Value    *float64 `json:"value" validate:"required"`
	Category string   `json:"category" validate:"required"`
	From     string   `json:"from" validate:"required"`
	To       string   `json:"to" validate:"required"`
}

func (r ConvertRequest) toDomain() domain.ConversionRequest {
	return domain.ConversionRequest{
		Value:    *r.Value,
		Category: r.Category,
		From:     r.From,
		To:       r.To,
	}
}

type CategoryResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
	Kind string `json:"kind"`
	Info string `json:"info,omitempty"`
}

type UnitResponse struct {
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

type UnitsResponse struct {
	Category string         `json:"category"`
	Units    []UnitResponse `json:"units"`
}

// ConvertResponse carries the result. Value is null when the result is not
// finite, since JSON has no representation for Inf or NaN; Formatted still
// shows it.
type ConvertResponse struct {
	Value     *float64 `json:"value"`
	Formatted string   `json:"formatted"`
	Category  string   `json:"category"`
	From      string   `json:"from"`
	To        string   `json:"to"`
}

type SessionResponse struct {
	ID string `json:"id"`
}

type HistoryEntryResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Category    string    `json:"category"`
	SourceValue *float64  `json:"source_value"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Result      *float64  `json:"result"`
	Text        string    `json:"text"`
}

type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func categoryToResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		Key:  c.Key,
		Name: c.Name,
		Icon: c.Icon,
		Kind: string(c.Kind),
		Info: c.Info,
	}
}

func resultToResponse(res domain.ConversionResult, precision int) ConvertResponse {
	return ConvertResponse{
		Value:     finite(res.Value),
		Formatted: format.Value(res.Value, precision),
		Category:  res.Category.Name,
		From:      res.From.Label,
		To:        res.To.Label,
	}
}

func entryToResponse(e domain.HistoryEntry, precision int) HistoryEntryResponse {
	return HistoryEntryResponse{
		Timestamp:   e.Timestamp,
		Category:    e.Category,
		SourceValue: finite(e.SourceValue),
		From:        e.From,
		To:          e.To,
		Result:      finite(e.Result),
		Text:        format.Entry(e, precision),
	}
}
