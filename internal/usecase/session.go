package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/ports"
)

// Session is one user's calculator state: a shared engine plus a history log
// the session owns exclusively.
type Session struct {
	conv *Converter
	log  ports.HistoryLog
	now  func() time.Time
	lg   *slog.Logger
}

type SessionOption func(*Session)

// WithClock overrides the clock (useful for tests).
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.lg = l
		}
	}
}

func NewSession(conv *Converter, log ports.HistoryLog, opts ...SessionOption) *Session {
	s := &Session{
		conv: conv,
		log:  log,
		now:  time.Now,
		lg:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Preview converts without touching the history. Callers may invoke it on
// every keystroke.
func (s *Session) Preview(req domain.ConversionRequest) (domain.ConversionResult, error) {
	return s.conv.Convert(req)
}

// Commit converts and records the conversion, stamped with the time of the call.
func (s *Session) Commit(req domain.ConversionRequest) (domain.HistoryEntry, error) {
	res, err := s.conv.Convert(req)
	if err != nil {
		s.lg.Debug("history.commit.rejected", "category", req.Category, "from", req.From, "to", req.To, "err", err)
		return domain.HistoryEntry{}, err
	}

	e := domain.HistoryEntry{
		Timestamp:   s.now(),
		Category:    res.Category.Name,
		SourceValue: req.Value,
		From:        res.From.Label,
		To:          res.To.Label,
		Result:      res.Value,
	}
	s.log.Record(e)
	s.lg.Info("history.commit", "category", e.Category, "from", e.From, "to", e.To)
	return e, nil
}

func (s *Session) History() []domain.HistoryEntry {
	return s.log.List()
}

func (s *Session) ClearHistory() {
	s.log.Clear()
	s.lg.Info("history.cleared")
}

// Swap reverses a conversion direction.
func Swap(from, to string) (string, string) {
	return to, from
}
