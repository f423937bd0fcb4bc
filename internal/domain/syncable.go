package domain

// Syncable is implemented by every Education entity that can opt out of
// synchronization.
type Syncable interface {
	SyncDisabled() bool
}

func (p *Program) SyncDisabled() bool           { return p.DisableSync }
func (c *Course) SyncDisabled() bool            { return c.DisableSync }
func (t *Topic) SyncDisabled() bool             { return t.DisableSync }
func (a *Article) SyncDisabled() bool           { return a.DisableSync }
func (v *Video) SyncDisabled() bool             { return v.DisableSync }
func (e *ProgramEnrollment) SyncDisabled() bool { return false }
