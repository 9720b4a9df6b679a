// Package apiclient talks to a running `unitcalc serve` instance.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aalvaropc/unitcalc/internal/api"
	"github.com/aalvaropc/unitcalc/internal/domain"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default transport. WithTimeout has no effect
// on a client given here.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &domain.OpError{
			Op:   "apiclient.new",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%w: server url %q", domain.ErrInvalidInput, baseURL),
		}
	}

	c := &Client{base: u, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = newHTTPClient(c.timeout)
	}
	return c, nil
}

// Units fetches a category's units. The returned category carries labels and
// symbols only; definitions stay on the server.
func (c *Client) Units(ctx context.Context, category string) (domain.Category, error) {
	var out api.UnitsResponse
	path := "/api/categories/" + url.PathEscape(category) + "/units"
	if err := c.do(ctx, "apiclient.units", http.MethodGet, path, nil, &out); err != nil {
		return domain.Category{}, err
	}

	cat := domain.Category{Name: out.Category, Units: make([]domain.Unit, 0, len(out.Units))}
	for _, u := range out.Units {
		cat.Units = append(cat.Units, domain.Unit{Symbol: u.Symbol, Label: u.Label})
	}
	return cat, nil
}

// Convert runs a preview conversion on the server.
func (c *Client) Convert(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error) {
	v := req.Value
	body := api.ConvertRequest{Value: &v, Category: req.Category, From: req.From, To: req.To}

	var out api.ConvertResponse
	if err := c.do(ctx, "apiclient.convert", http.MethodPost, "/api/convert", body, &out); err != nil {
		return domain.ConversionResult{}, err
	}

	res := domain.ConversionResult{
		Value:    math.NaN(),
		Category: domain.Category{Name: out.Category},
		From:     domain.Unit{Label: out.From},
		To:       domain.Unit{Label: out.To},
	}
	if out.Value != nil {
		res.Value = *out.Value
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Err: err}
		}
		rd = bytes.NewReader(b)
	}

	u := c.base.String() + path
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(op, resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeError turns an error body back into a domain error so callers can
// classify it with domain.IsKind exactly as for local conversions.
func decodeError(op string, status int, data []byte) error {
	var er api.ErrorResponse
	if err := json.Unmarshal(data, &er); err != nil || er.Kind == "" {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: fmt.Errorf("server returned %d", status)}
	}

	kind := domain.ErrorKind(er.Kind)
	return &domain.OpError{Op: op, Kind: kind, Err: kindError(kind, er.Error)}
}

func kindError(kind domain.ErrorKind, msg string) error {
	var sentinel error
	switch kind {
	case domain.KindUnknownCategory:
		sentinel = domain.ErrUnknownCategory
	case domain.KindUnknownUnit:
		sentinel = domain.ErrUnknownUnit
	case domain.KindUnitMismatch:
		sentinel = domain.ErrUnitMismatch
	case domain.KindNotFound:
		sentinel = domain.ErrNotFound
	case domain.KindInvalidInput:
		sentinel = domain.ErrInvalidInput
	default:
		return errors.New(msg)
	}
	// The server message already names the sentinel; keep it without repeating.
	return fmt.Errorf("%w%s", sentinel, strings.TrimPrefix(msg, sentinel.Error()))
}
