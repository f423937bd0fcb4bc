package docstore_test

import (
	"errors"
	"path/filepath"
	"testing"

	"edusync/internal/adapters/docstore"
	"edusync/internal/application"
	"edusync/internal/domain"
)

func openStore(t *testing.T) *docstore.Store {
	t.Helper()
	store := docstore.NewStore()
	if err := store.Open(filepath.Join(t.TempDir(), "edusync.db")); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_CreateAndGet(t *testing.T) {
	store := openStore(t)

	name, err := store.Create(domain.DocTypeProgram, domain.Fields{
		"title":   "Physics 101",
		"courses": []string{"mechanics"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if name == "" {
		t.Fatal("Create() returned empty name")
	}

	f, err := store.Get(domain.DocTypeProgram, name)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if f.Str("title") != "Physics 101" {
		t.Errorf("title = %q, want %q", f.Str("title"), "Physics 101")
	}
	if got := f.Strs("courses"); len(got) != 1 || got[0] != "mechanics" {
		t.Errorf("courses = %v, want [mechanics]", got)
	}
}

func TestStore_ExplicitNameAndDuplicate(t *testing.T) {
	store := openStore(t)

	name, err := store.Create(domain.DocTypeCourse, domain.Fields{"name": "mechanics", "title": "Mechanics"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if name != "mechanics" {
		t.Errorf("Create() name = %q, want mechanics", name)
	}

	if _, err := store.Create(domain.DocTypeCourse, domain.Fields{"name": "mechanics"}); err == nil {
		t.Error("Create() with duplicate name succeeded, want error")
	}
}

func TestStore_MissingDocumentIsNotFound(t *testing.T) {
	store := openStore(t)

	_, err := store.Get(domain.DocTypeTopic, "nope")
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if err := store.Save(domain.DocTypeTopic, "nope", domain.Fields{}); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Save() error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(domain.DocTypeTopic, "nope"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_SetFieldAndListFilters(t *testing.T) {
	store := openStore(t)

	if _, err := store.Create(domain.DocTypeLMSCourse, domain.Fields{
		"name": "lms-mechanics", "title": "Mechanics", "published": true,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(domain.DocTypeLMSCourse, domain.Fields{
		"name": "lms-optics", "title": "Optics", "published": false, "course": "optics",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.SetField(domain.DocTypeLMSCourse, "lms-mechanics", "course", "mechanics"); err != nil {
		t.Fatalf("SetField() error = %v", err)
	}

	published, err := store.List(domain.DocTypeLMSCourse, map[string]any{"published": true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(published) != 1 || published[0].Name != "lms-mechanics" {
		t.Fatalf("List(published) = %v, want only lms-mechanics", published)
	}
	if published[0].Fields.Str("course") != "mechanics" {
		t.Errorf("course = %q after SetField, want mechanics", published[0].Fields.Str("course"))
	}

	// A document without a course field matches the empty-string filter.
	if _, err := store.Create(domain.DocTypeLMSCourse, domain.Fields{
		"name": "lms-waves", "title": "Waves",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	unlinked, err := store.List(domain.DocTypeLMSCourse, map[string]any{"course": ""})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(unlinked) != 1 || unlinked[0].Name != "lms-waves" {
		t.Fatalf("List(course=\"\") = %v, want only lms-waves", unlinked)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edusync.db")

	store := docstore.NewStore()
	if err := store.Open(path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := store.Create(domain.DocTypeProgram, domain.Fields{"name": "physics-101", "title": "Physics 101"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := docstore.NewStore()
	if err := reopened.Open(path); err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	f, err := reopened.Get(domain.DocTypeProgram, "physics-101")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if f.Str("title") != "Physics 101" {
		t.Errorf("title = %q after reopen, want Physics 101", f.Str("title"))
	}
}
