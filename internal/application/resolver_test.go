package application_test

import (
	"errors"
	"testing"

	"edusync/internal/application"
	"edusync/internal/domain"
)

func TestResolve_AdoptsSameTitledUnlinkedTarget(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	// A manually created LMS course with the same title, not linked to
	// anything, sits in the store already.
	existing := mustCreate(t, store, domain.DocTypeLMSCourse, domain.Fields{
		"title":     "Mechanics",
		"published": true,
	})
	seedCourse(t, store, "c1", "Mechanics")

	id, err := engine.SyncCourse(loadCourse(t, store, "c1"))
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if id != existing {
		t.Errorf("resolved to %q, want adoption of %q", id, existing)
	}
	rows, _ := store.List(domain.DocTypeLMSCourse, nil)
	if len(rows) != 1 {
		t.Errorf("adoption must not create a duplicate; found %d courses", len(rows))
	}
	f := mustGet(t, store, domain.DocTypeLMSCourse, existing)
	if f.Str("course") != "c1" {
		t.Errorf("adopted course back-link = %q, want c1", f.Str("course"))
	}
	if !f.Bool("published") {
		t.Error("adoption must not clobber fields the sync does not own")
	}
}

func TestResolve_SkipsLinkedCandidateDuringAdoption(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	// Same title, but already linked to another course: not adoptable.
	mustCreate(t, store, domain.DocTypeLMSCourse, domain.Fields{
		"title":  "Mechanics",
		"course": "other-course",
	})
	seedCourse(t, store, "c1", "Mechanics")

	id, err := engine.SyncCourse(loadCourse(t, store, "c1"))
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	rows, _ := store.List(domain.DocTypeLMSCourse, nil)
	if len(rows) != 2 {
		t.Fatalf("expected a second course to be created, found %d", len(rows))
	}
	if mustGet(t, store, domain.DocTypeLMSCourse, id).Str("course") != "c1" {
		t.Error("created course must back-link to c1")
	}
}

func TestResolve_OrphanedLinkFallsBack(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedCourse(t, store, "c1", "Mechanics")

	first, err := engine.SyncCourse(loadCourse(t, store, "c1"))
	if err != nil {
		t.Fatal(err)
	}
	// The linked target vanishes out-of-band.
	if err := store.Delete(domain.DocTypeLMSCourse, first); err != nil {
		t.Fatal(err)
	}

	second, err := engine.SyncCourse(loadCourse(t, store, "c1"))
	if err != nil {
		t.Fatalf("resync after orphaning: %v", err)
	}
	if second == first {
		t.Error("expected a fresh target after the old one was deleted")
	}
	if loadCourse(t, store, "c1").LMSCourse != second {
		t.Error("source link must point at the replacement")
	}
}

func TestResolve_MissingTitleIsTypedError(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	mustCreate(t, store, domain.DocTypeProgram, domain.Fields{"name": "p1"})

	_, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
