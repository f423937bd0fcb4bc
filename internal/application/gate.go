package application

import (
	"edusync/internal/domain"
	"edusync/internal/ports"
)

// SyncGate decides whether an entity takes part in synchronization: the
// LMS integration must be enabled and the entity must not be explicitly
// opted out. Pure predicate; a store failure reads as "not eligible".
type SyncGate struct {
	store ports.Store
}

func NewSyncGate(store ports.Store) *SyncGate {
	return &SyncGate{store: store}
}

// IsEligible reports whether e should be synchronized.
func (g *SyncGate) IsEligible(e domain.Syncable) bool {
	if e.SyncDisabled() {
		return false
	}
	return g.Enabled()
}

// Enabled reports whether the integration as a whole is switched on.
func (g *SyncGate) Enabled() bool {
	f, err := g.store.Get(domain.DocTypeLMSSettings, domain.LMSSettingsName)
	if err != nil {
		return false
	}
	return f.Bool("enabled")
}
