// Package query selects values out of the CLI's JSON output with JSONPath,
// so scripts can pull a single number without a separate JSON tool.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

// Select evaluates expr against the JSON document and renders the match as
// plain text. Scalars print bare and a JSON null prints as "null". Arrays and
// objects print as compact JSON.
func Select(doc []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", invalid(errors.New("empty jsonpath expression"))
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return "", invalid(fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, v)
	if err != nil {
		return "", invalid(fmt.Errorf("%s: %w", expr, err))
	}
	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.select",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%w: no value for %s", domain.ErrNotFound, expr),
		}
	}

	return toString(val)
}

func invalid(err error) error {
	return &domain.OpError{Op: "query.select", Kind: domain.KindInvalidInput, Err: err}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Wildcards yield a slice even when a single element matched.
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
