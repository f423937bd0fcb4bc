package application

import "edusync/internal/domain"

// Mark flags an in-memory entity value as written by the sync engine. Set
// immediately before the cross-direction save so the opposite handler can
// recognize the write as its own echo.
func Mark(e domain.Guarded) {
	e.MarkSyncing()
}

// ShouldSkip is checked at the very top of every opposite-direction
// handler. True means the value being handled was produced by this engine
// and must not be echoed back.
func ShouldSkip(e domain.Guarded) bool {
	return e.SyncInFlight()
}
