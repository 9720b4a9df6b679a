package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrUnitMismatch    = errors.New("unit category mismatch")
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionLimit    = errors.New("session limit reached")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUnknownCategory ErrorKind = "unknown_category"
	KindUnknownUnit     ErrorKind = "unknown_unit"
	KindUnitMismatch    ErrorKind = "unit_mismatch"
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindInvalidInput    ErrorKind = "invalid_input"
	KindExecution       ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// UnknownCategory builds the error returned when a category name is not registered.
func UnknownCategory(op, category string) error {
	return &OpError{
		Op:   op,
		Kind: KindUnknownCategory,
		Err:  fmt.Errorf("%w: %q", ErrUnknownCategory, category),
	}
}

// UnknownUnit builds the error returned when a unit label is absent from a category.
func UnknownUnit(op, category, unit string) error {
	return &OpError{
		Op:   op,
		Kind: KindUnknownUnit,
		Err:  fmt.Errorf("%w: %q in %s", ErrUnknownUnit, unit, category),
	}
}

// UnitMismatch builds the error returned when two definitions cannot be converted
// into each other.
func UnitMismatch(op, category, from, to string) error {
	return &OpError{
		Op:   op,
		Kind: KindUnitMismatch,
		Err:  fmt.Errorf("%w: %q -> %q in %s", ErrUnitMismatch, from, to, category),
	}
}
