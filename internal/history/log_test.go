package history

import (
	"sync"
	"testing"
	"time"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

func entry(i int) domain.HistoryEntry {
	return domain.HistoryEntry{
		Timestamp:   time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		Category:    "Length",
		SourceValue: float64(i),
		From:        "Meter (m)",
		To:          "Foot (ft)",
		Result:      float64(i) / 0.3048,
	}
}

func TestRecordMostRecentFirst(t *testing.T) {
	l := New()
	l.Record(entry(1))
	l.Record(entry(2))
	l.Record(entry(3))

	got := l.List()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []float64{3, 2, 1} {
		if got[i].SourceValue != want {
			t.Fatalf("entry[%d]: expected %v, got %v", i, want, got[i].SourceValue)
		}
	}
}

func TestRecordCapsAtTen(t *testing.T) {
	l := New()
	for i := 1; i <= 15; i++ {
		l.Record(entry(i))
	}

	got := l.List()
	if len(got) != DefaultCapacity {
		t.Fatalf("expected %d entries, got %d", DefaultCapacity, len(got))
	}
	for i := range got {
		want := float64(15 - i)
		if got[i].SourceValue != want {
			t.Fatalf("entry[%d]: expected %v, got %v", i, want, got[i].SourceValue)
		}
	}
	if l.Len() != DefaultCapacity {
		t.Fatalf("expected Len=%d, got %d", DefaultCapacity, l.Len())
	}
}

func TestClearEmptiesLog(t *testing.T) {
	l := New()
	for i := 1; i <= 4; i++ {
		l.Record(entry(i))
	}
	l.Clear()

	if n := len(l.List()); n != 0 {
		t.Fatalf("expected empty log, got %d entries", n)
	}

	l.Record(entry(9))
	got := l.List()
	if len(got) != 1 || got[0].SourceValue != 9 {
		t.Fatalf("unexpected log after clear: %+v", got)
	}
}

func TestListReturnsCopy(t *testing.T) {
	l := New()
	l.Record(entry(1))

	got := l.List()
	got[0].SourceValue = 100

	if l.List()[0].SourceValue != 1 {
		t.Fatalf("List must not expose internal storage")
	}
}

func TestWithCapacity(t *testing.T) {
	l := New(WithCapacity(2))
	for i := 1; i <= 5; i++ {
		l.Record(entry(i))
	}
	got := l.List()
	if len(got) != 2 || got[0].SourceValue != 5 || got[1].SourceValue != 4 {
		t.Fatalf("unexpected entries: %+v", got)
	}

	if New(WithCapacity(0)).Cap() != DefaultCapacity {
		t.Fatalf("non-positive capacity must be ignored")
	}
}

func TestConcurrentRecord(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Record(entry(i))
			_ = l.List()
		}(i)
	}
	wg.Wait()

	if l.Len() != DefaultCapacity {
		t.Fatalf("expected %d entries, got %d", DefaultCapacity, l.Len())
	}
}
