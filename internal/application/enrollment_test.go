package application_test

import (
	"testing"

	"edusync/internal/domain"
)

func TestSyncEnrollment_PublishedCoursesOnly(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedCourse(t, store, "c1", "Mechanics")
	seedCourse(t, store, "c2", "Optics")
	seedProgram(t, store, "p1", "Physics", "c1", "c2")
	id, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if err != nil {
		t.Fatal(err)
	}
	// Publish only c1's LMS course.
	lc1 := loadCourse(t, store, "c1").LMSCourse
	if err := store.SetField(domain.DocTypeLMSCourse, lc1, "published", true); err != nil {
		t.Fatal(err)
	}

	en := mustCreate(t, store, domain.DocTypeProgramEnrollment, domain.Fields{
		"student":   "ann@example.org",
		"program":   "p1",
		"submitted": true,
	})
	enrollment := domain.ProgramEnrollmentFromFields(en, mustGet(t, store, domain.DocTypeProgramEnrollment, en))

	if err := engine.SyncEnrollment(enrollment); err != nil {
		t.Fatalf("SyncEnrollment: %v", err)
	}

	members := mustGet(t, store, domain.DocTypeLMSProgram, id).Strs("members")
	if len(members) != 1 || members[0] != "ann@example.org" {
		t.Errorf("members = %v, want [ann@example.org]", members)
	}

	rows, _ := store.List(domain.DocTypeLMSEnrollment, map[string]any{"member": "ann@example.org"})
	if len(rows) != 1 {
		t.Fatalf("enrollments = %d, want 1 (published course only)", len(rows))
	}
	if rows[0].Fields.Str("lms_course") != lc1 {
		t.Errorf("enrolled in %q, want %q", rows[0].Fields.Str("lms_course"), lc1)
	}

	// Re-running adds nothing.
	if err := engine.SyncEnrollment(enrollment); err != nil {
		t.Fatal(err)
	}
	rows, _ = store.List(domain.DocTypeLMSEnrollment, map[string]any{"member": "ann@example.org"})
	if len(rows) != 1 {
		t.Errorf("re-sync duplicated enrollments: %d", len(rows))
	}
}

func TestResyncEnrollmentToLms(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedCourse(t, store, "c1", "Mechanics")
	seedCourse(t, store, "c2", "Optics")
	seedProgram(t, store, "p1", "Physics", "c1", "c2")
	if _, err := engine.SyncProgram(loadProgram(t, store, "p1")); err != nil {
		t.Fatal(err)
	}
	lc1 := loadCourse(t, store, "c1").LMSCourse
	lc2 := loadCourse(t, store, "c2").LMSCourse
	if err := store.SetField(domain.DocTypeLMSCourse, lc1, "published", true); err != nil {
		t.Fatal(err)
	}

	en := mustCreate(t, store, domain.DocTypeProgramEnrollment, domain.Fields{
		"student":   "bob@example.org",
		"program":   "p1",
		"submitted": true,
	})
	// Stale state: bob is enrolled in the unpublished course but not the
	// published one.
	mustCreate(t, store, domain.DocTypeLMSEnrollment, domain.Fields{
		"member":     "bob@example.org",
		"lms_course": lc2,
	})

	report, err := engine.ResyncEnrollmentToLms(en)
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if report.Added != 1 || report.Removed != 1 {
		t.Errorf("report = %+v, want Added=1 Removed=1", report)
	}

	rows, _ := store.List(domain.DocTypeLMSEnrollment, map[string]any{"member": "bob@example.org"})
	if len(rows) != 1 || rows[0].Fields.Str("lms_course") != lc1 {
		t.Errorf("enrollments after resync = %v, want only %s", rows, lc1)
	}

	// Second resync reports zero movement.
	report, err = engine.ResyncEnrollmentToLms(en)
	if err != nil {
		t.Fatal(err)
	}
	if report.Added != 0 || report.Removed != 0 {
		t.Errorf("idempotent resync moved enrollments: %+v", report)
	}
}
