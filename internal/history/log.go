// Package history keeps the rolling log of committed conversions.
package history

import (
	"sync"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/ports"
)

// DefaultCapacity is the number of entries a log keeps.
const DefaultCapacity = 10

// Log is a fixed-capacity deque. Record pushes at the front and drops the
// tail once the log is full, both in O(1).
type Log struct {
	mu    sync.Mutex
	buf   []domain.HistoryEntry
	head  int // index of the most recent entry
	count int
}

type Option func(*Log)

// WithCapacity overrides DefaultCapacity. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.buf = make([]domain.HistoryEntry, n)
		}
	}
}

func New(opts ...Option) *Log {
	l := &Log{buf: make([]domain.HistoryEntry, DefaultCapacity)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.HistoryLog = (*Log)(nil)

// Record inserts entry as the most recent one.
func (l *Log) Record(entry domain.HistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.buf)
	l.head = (l.head - 1 + n) % n
	l.buf[l.head] = entry
	if l.count < n {
		l.count++
	}
}

// List returns a copy, most recent first.
func (l *Log) List() []domain.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.HistoryEntry, 0, l.count)
	for i := 0; i < l.count; i++ {
		out = append(out, l.buf[(l.head+i)%len(l.buf)])
	}
	return out
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.buf)
	l.head = 0
	l.count = 0
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

func (l *Log) Cap() int {
	return len(l.buf)
}
