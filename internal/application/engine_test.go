package application_test

import (
	"errors"
	"testing"

	"edusync/internal/adapters/memory"
	"edusync/internal/application"
	"edusync/internal/domain"
	"edusync/internal/ports"
)

type captureSink struct {
	records []string
}

func (s *captureSink) Record(title, detail string) {
	s.records = append(s.records, title+": "+detail)
}

func newTestEngine(t *testing.T) (*application.Engine, *memory.Store, *captureSink) {
	t.Helper()
	store := memory.NewStore()
	mustCreate(t, store, domain.DocTypeLMSSettings, domain.Fields{
		"name":    domain.LMSSettingsName,
		"enabled": true,
	})
	sink := &captureSink{}
	return application.NewEngine(store, sink), store, sink
}

func mustCreate(t *testing.T, store ports.Store, doctype string, fields domain.Fields) string {
	t.Helper()
	name, err := store.Create(doctype, fields)
	if err != nil {
		t.Fatalf("create %s: %v", doctype, err)
	}
	return name
}

func mustGet(t *testing.T, store ports.Store, doctype, name string) domain.Fields {
	t.Helper()
	f, err := store.Get(doctype, name)
	if err != nil {
		t.Fatalf("get %s %s: %v", doctype, name, err)
	}
	return f
}

func seedProgram(t *testing.T, store ports.Store, name, title string, courses ...string) {
	t.Helper()
	mustCreate(t, store, domain.DocTypeProgram, domain.Fields{
		"name":    name,
		"title":   title,
		"courses": courses,
	})
}

func seedCourse(t *testing.T, store ports.Store, name, title string, topics ...string) {
	t.Helper()
	mustCreate(t, store, domain.DocTypeCourse, domain.Fields{
		"name":   name,
		"title":  title,
		"topics": topics,
	})
}

func loadProgram(t *testing.T, store ports.Store, name string) *domain.Program {
	t.Helper()
	return domain.ProgramFromFields(name, mustGet(t, store, domain.DocTypeProgram, name))
}

func loadCourse(t *testing.T, store ports.Store, name string) *domain.Course {
	t.Helper()
	return domain.CourseFromFields(name, mustGet(t, store, domain.DocTypeCourse, name))
}

func loadTopic(t *testing.T, store ports.Store, name string) *domain.Topic {
	t.Helper()
	return domain.TopicFromFields(name, mustGet(t, store, domain.DocTypeTopic, name))
}

func TestSyncProgram_CreatesAndLinks(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedCourse(t, store, "c1", "Mechanics")
	seedCourse(t, store, "c2", "Optics")
	seedProgram(t, store, "p1", "Physics", "c1", "c2")

	id, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if err != nil {
		t.Fatalf("SyncProgram: %v", err)
	}

	lp := mustGet(t, store, domain.DocTypeLMSProgram, id)
	if lp.Str("title") != "Physics" {
		t.Errorf("title = %q, want Physics", lp.Str("title"))
	}
	if !lp.Bool("synced_from_education") {
		t.Error("expected synced_from_education on created LMS Program")
	}
	if lp.Str("program") != "p1" {
		t.Errorf("back-link = %q, want p1", lp.Str("program"))
	}
	if got := loadProgram(t, store, "p1").LMSProgram; got != id {
		t.Errorf("source link = %q, want %q", got, id)
	}
	if got := len(lp.Strs("program_courses")); got != 2 {
		t.Errorf("program_courses has %d entries, want 2", got)
	}
	// Both courses were linked on the way.
	for _, c := range []string{"c1", "c2"} {
		if loadCourse(t, store, c).LMSCourse == "" {
			t.Errorf("course %s left unlinked", c)
		}
	}
}

func TestSyncProgram_Idempotent(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedCourse(t, store, "c1", "Mechanics")
	seedProgram(t, store, "p1", "Physics", "c1")

	first, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	second, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}

	if first != second {
		t.Errorf("resolve not stable: %q then %q", first, second)
	}
	rows, err := store.List(domain.DocTypeLMSProgram, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected exactly one LMS Program, found %d", len(rows))
	}
}

// Dropping a course from the program removes the membership row only,
// and a third run changes nothing.
func TestSyncProgram_AssociationOnlyRemoval(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedCourse(t, store, "c1", "Mechanics")
	seedCourse(t, store, "c2", "Optics")
	seedProgram(t, store, "p1", "Physics", "c1", "c2")

	id, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if err != nil {
		t.Fatalf("initial sync: %v", err)
	}
	lc2 := loadCourse(t, store, "c2").LMSCourse

	// Drop c2 from the program's course list.
	f := mustGet(t, store, domain.DocTypeProgram, "p1")
	f["courses"] = []string{"c1"}
	if err := store.Save(domain.DocTypeProgram, "p1", f); err != nil {
		t.Fatal(err)
	}

	if _, err := engine.UpdateProgram(loadProgram(t, store, "p1")); err != nil {
		t.Fatalf("update: %v", err)
	}

	courses := mustGet(t, store, domain.DocTypeLMSProgram, id).Strs("program_courses")
	if len(courses) != 1 || courses[0] != loadCourse(t, store, "c1").LMSCourse {
		t.Errorf("program_courses = %v, want just c1's LMS course", courses)
	}
	if ok, _ := store.Exists(domain.DocTypeLMSCourse, lc2); !ok {
		t.Error("LMS Course c2' must survive association removal")
	}

	before := mustGet(t, store, domain.DocTypeLMSProgram, id)
	if _, err := engine.UpdateProgram(loadProgram(t, store, "p1")); err != nil {
		t.Fatalf("third run: %v", err)
	}
	after := mustGet(t, store, domain.DocTypeLMSProgram, id)
	if len(before.Strs("program_courses")) != len(after.Strs("program_courses")) {
		t.Error("third run must leave state unchanged")
	}
}

func TestSyncCourse_CascadesRemovedChapter(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	mustCreate(t, store, domain.DocTypeTopic, domain.Fields{"name": "t1", "title": "Kinematics"})
	mustCreate(t, store, domain.DocTypeTopic, domain.Fields{"name": "t2", "title": "Dynamics"})
	seedCourse(t, store, "c1", "Mechanics", "t1", "t2")

	id, err := engine.SyncCourse(loadCourse(t, store, "c1"))
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	ch2 := loadTopic(t, store, "t2").Chapter
	if ch2 == "" {
		t.Fatal("t2 left unlinked")
	}

	f := mustGet(t, store, domain.DocTypeCourse, "c1")
	f["topics"] = []string{"t1"}
	if err := store.Save(domain.DocTypeCourse, "c1", f); err != nil {
		t.Fatal(err)
	}

	if _, err := engine.UpdateCourse(loadCourse(t, store, "c1")); err != nil {
		t.Fatalf("update: %v", err)
	}

	if ok, _ := store.Exists(domain.DocTypeChapter, ch2); ok {
		t.Error("orphaned synced chapter must be deleted, not just disassociated")
	}
	if got := loadTopic(t, store, "t2").Chapter; got != "" {
		t.Errorf("t2's back-link = %q, want cleared", got)
	}
	chapters := mustGet(t, store, domain.DocTypeLMSCourse, id).Strs("chapters")
	if len(chapters) != 1 {
		t.Errorf("chapters = %v, want one entry", chapters)
	}
}

func TestDeleteProgram_RefusedWithMembers(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedProgram(t, store, "p1", "Physics")

	id, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetField(domain.DocTypeLMSProgram, id, "members", []string{"ann@example.org"}); err != nil {
		t.Fatal(err)
	}

	err = engine.DeleteProgram(loadProgram(t, store, "p1"))
	if !errors.Is(err, application.ErrRuleViolation) {
		t.Fatalf("expected rule violation, got %v", err)
	}
	if ok, _ := store.Exists(domain.DocTypeLMSProgram, id); !ok {
		t.Error("refused delete must leave the LMS Program intact")
	}
}

func TestDeleteProgram_Clean(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedProgram(t, store, "p1", "Physics")

	id, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if err != nil {
		t.Fatal(err)
	}
	if err := engine.DeleteProgram(loadProgram(t, store, "p1")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := store.Exists(domain.DocTypeLMSProgram, id); ok {
		t.Error("LMS Program should be gone")
	}
	if got := loadProgram(t, store, "p1").LMSProgram; got != "" {
		t.Errorf("source link = %q, want cleared", got)
	}
}

func TestSyncGateDisabled(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	mustCreate(t, store, domain.DocTypeProgram, domain.Fields{
		"name":         "p1",
		"title":        "Physics",
		"disable_sync": true,
	})

	_, err := engine.SyncProgram(loadProgram(t, store, "p1"))
	if !errors.Is(err, application.ErrSyncDisabled) {
		t.Fatalf("expected ErrSyncDisabled, got %v", err)
	}

	// Integration-wide switch.
	if err := store.SetField(domain.DocTypeLMSSettings, domain.LMSSettingsName, "enabled", false); err != nil {
		t.Fatal(err)
	}
	seedProgram(t, store, "p2", "Chemistry")
	if _, err := engine.SyncProgram(loadProgram(t, store, "p2")); !errors.Is(err, application.ErrSyncDisabled) {
		t.Fatalf("expected ErrSyncDisabled with integration off, got %v", err)
	}
}
