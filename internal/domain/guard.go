package domain

// SyncGuard is the transient loop-prevention marker carried by every entity
// value. It is set in memory immediately before a cross-direction write and
// checked at the top of the opposite direction's handler; the field codecs
// never serialize it, so it dies with the in-memory value.
type SyncGuard struct {
	inFlight bool
}

// MarkSyncing flags the value as written by the sync engine itself.
func (g *SyncGuard) MarkSyncing() {
	g.inFlight = true
}

// SyncInFlight reports whether this value was produced by a sync write.
func (g *SyncGuard) SyncInFlight() bool {
	return g.inFlight
}

// Guarded is implemented by every entity type via the embedded SyncGuard.
type Guarded interface {
	MarkSyncing()
	SyncInFlight() bool
}
