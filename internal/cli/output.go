package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aalvaropc/unitcalc/internal/app/query"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

// outputOptions are shared by every command that prints data.
type outputOptions struct {
	format string
	query  string
}

func (o outputOptions) validate() error {
	switch o.format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", o.format)
	}
}

// wantsJSON is true for --format json and whenever a --query is given.
func (o outputOptions) wantsJSON() bool {
	return o.format == formatJSON || strings.TrimSpace(o.query) != ""
}

// print writes payload as JSON (optionally narrowed by --query) or calls
// pretty for human output.
func (o outputOptions) print(w io.Writer, payload any, pretty func(io.Writer)) error {
	if err := o.validate(); err != nil {
		return err
	}
	if !o.wantsJSON() {
		pretty(w)
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}

	if strings.TrimSpace(o.query) == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}

	v, err := query.Select(buf.Bytes(), o.query)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

// jsonNumber returns nil for values JSON cannot represent.
func jsonNumber(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
