package ports

// SessionStore owns one isolated HistoryLog per session id.
type SessionStore interface {
	Create() (id string, err error)
	Get(id string) (HistoryLog, error)
	Delete(id string) error
}
