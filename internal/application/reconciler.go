package application

import (
	"errors"

	"edusync/internal/domain"
	"edusync/internal/ports"
)

// RemovalPolicy states what happens to a child that dropped out of the
// desired set after its row is removed from the parent's collection. The
// asymmetry between levels is deliberate, observed behavior: program
// membership is association-only, the deeper levels cascade.
type RemovalPolicy int

const (
	// RemoveAssociationOnly drops the membership row; the child node
	// itself survives (Program ↔ Course level).
	RemoveAssociationOnly RemovalPolicy = iota

	// RemoveAndCascade deletes the orphaned child and its descendants
	// (Course ↔ Chapter and Topic ↔ Lesson levels).
	RemoveAndCascade
)

// Reconciler diffs a parent's current child collection against the desired
// set. It appends additions, removes sync-owned rows no longer desired,
// and returns the removables to the caller — destruction belongs to the
// CascadeDeleter, not here.
type Reconciler struct {
	store ports.Store
}

func NewReconciler(store ports.Store) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile applies desired to the named collection of the parent.
// childType is the doctype of collection entries, needed to read each
// candidate's synced_from_education flag: a manually added child is never
// implicitly removed, even when absent from desired.
//
// The parent is re-read from the store first. A nested resolve during this
// same operation may have appended to the collection already; diffing a
// stale in-memory copy would overwrite that append on save.
func (r *Reconciler) Reconcile(parentType, parentName, field string, desired []string, childType string) (added, removable []string, err error) {
	f, err := r.store.Get(parentType, parentName)
	if err != nil {
		return nil, nil, err
	}
	current := f.Strs(field)

	for _, want := range desired {
		if !domain.Contains(current, want) {
			added = append(added, want)
		}
	}

	for _, have := range current {
		if domain.Contains(desired, have) {
			continue
		}
		cf, err := r.store.Get(childType, have)
		if errors.Is(err, ErrNotFound) {
			// Stale row: the child is gone out-of-band. Drop the row;
			// the deleter downstream skips missing nodes anyway.
			removable = append(removable, have)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		if cf.Bool("synced_from_education") {
			removable = append(removable, have)
		}
	}

	if len(added) == 0 && len(removable) == 0 {
		return nil, nil, nil
	}

	next := current
	for _, name := range removable {
		next = domain.Remove(next, name)
	}
	for _, name := range added {
		next = domain.AppendUnique(next, name)
	}
	f[field] = next
	if err := r.store.Save(parentType, parentName, f); err != nil {
		return nil, nil, err
	}
	return added, removable, nil
}
