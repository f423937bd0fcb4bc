package errlog

import (
	"time"

	"edusync/internal/domain"
	"edusync/internal/ports"
)

// Sink records sync failures as Sync Error Log documents so they survive
// the process and show up in the store next to the data they describe.
type Sink struct {
	store ports.Store
	now   func() time.Time
}

// NewSink creates a Sink writing to the given store
func NewSink(store ports.Store) *Sink {
	return &Sink{
		store: store,
		now:   time.Now,
	}
}

// Record writes one failure entry. Logging must never make a sync worse,
// so a store error here is swallowed.
func (s *Sink) Record(title, detail string) {
	_, _ = s.store.Create(domain.DocTypeSyncErrorLog, domain.Fields{
		"title":  title,
		"error":  detail,
		"seen":   false,
		"logged": s.now().UTC().Format(time.RFC3339),
	})
}

// Unseen returns the log entries not yet acknowledged, newest first
func (s *Sink) Unseen() ([]ports.Listed, error) {
	rows, err := s.store.List(domain.DocTypeSyncErrorLog, domain.Fields{"seen": false})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// MarkSeen acknowledges a log entry
func (s *Sink) MarkSeen(name string) error {
	return s.store.SetField(domain.DocTypeSyncErrorLog, name, "seen", true)
}
