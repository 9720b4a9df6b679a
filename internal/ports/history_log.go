package ports

import "github.com/aalvaropc/unitcalc/internal/domain"

// HistoryLog is a bounded, most-recent-first log of committed conversions.
type HistoryLog interface {
	Record(entry domain.HistoryEntry)
	List() []domain.HistoryEntry
	Clear()
}
