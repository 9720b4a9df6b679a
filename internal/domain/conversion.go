package domain

import "time"

// ConversionRequest asks for value expressed in From to be expressed in To.
// Category and units may be given by display name/label or by key/symbol.
type ConversionRequest struct {
	Value    float64
	Category string
	From     string
	To       string
}

// ConversionResult carries the converted value plus the resolved identifiers,
// so callers can render canonical labels whatever form the request used.
type ConversionResult struct {
	Value    float64
	Category Category
	From     Unit
	To       Unit
}

// HistoryEntry is a committed conversion.
type HistoryEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Category    string    `json:"category"`
	SourceValue float64   `json:"source_value"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Result      float64   `json:"result"`
}

// QuickConversion is a one-click preset for a common pair.
type QuickConversion struct {
	Name     string
	Category string
	From     string
	To       string
}
