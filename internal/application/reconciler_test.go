package application_test

import (
	"reflect"
	"testing"

	"edusync/internal/application"
	"edusync/internal/domain"
)

func TestReconcile_PreservesManualChildren(t *testing.T) {
	_, store, _ := newTestEngine(t)
	r := application.NewReconciler(store)

	mkLesson := func(name string, synced bool) {
		mustCreate(t, store, domain.DocTypeLesson, domain.Fields{
			"name":                  name,
			"title":                 name,
			"synced_from_education": synced,
		})
	}
	mkLesson("A", true)
	mkLesson("B", true)
	mkLesson("C", false) // manually authored
	chapter := mustCreate(t, store, domain.DocTypeChapter, domain.Fields{
		"title":   "Ch",
		"lessons": []string{"A", "B", "C"},
	})

	added, removable, err := r.Reconcile(domain.DocTypeChapter, chapter, "lessons", []string{"A"}, domain.DocTypeLesson)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if len(added) != 0 {
		t.Errorf("added = %v, want none", added)
	}
	if !reflect.DeepEqual(removable, []string{"B"}) {
		t.Errorf("removable = %v, want [B] — the manual child C must be preserved", removable)
	}

	lessons := mustGet(t, store, domain.DocTypeChapter, chapter).Strs("lessons")
	if !reflect.DeepEqual(lessons, []string{"A", "C"}) {
		t.Errorf("collection = %v, want [A C]", lessons)
	}
}

func TestReconcile_AppendsWithoutReordering(t *testing.T) {
	_, store, _ := newTestEngine(t)
	r := application.NewReconciler(store)

	for _, n := range []string{"A", "B", "D"} {
		mustCreate(t, store, domain.DocTypeLesson, domain.Fields{
			"name": n, "title": n, "synced_from_education": true,
		})
	}
	chapter := mustCreate(t, store, domain.DocTypeChapter, domain.Fields{
		"title":   "Ch",
		"lessons": []string{"A", "B"},
	})

	added, removable, err := r.Reconcile(domain.DocTypeChapter, chapter, "lessons", []string{"B", "D", "A"}, domain.DocTypeLesson)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(added, []string{"D"}) {
		t.Errorf("added = %v, want [D]", added)
	}
	if len(removable) != 0 {
		t.Errorf("removable = %v, want none", removable)
	}
	lessons := mustGet(t, store, domain.DocTypeChapter, chapter).Strs("lessons")
	if !reflect.DeepEqual(lessons, []string{"A", "B", "D"}) {
		t.Errorf("collection = %v, want existing order kept with D appended", lessons)
	}
}

func TestReconcile_StaleRowDropped(t *testing.T) {
	_, store, _ := newTestEngine(t)
	r := application.NewReconciler(store)

	mustCreate(t, store, domain.DocTypeLesson, domain.Fields{
		"name": "A", "title": "A", "synced_from_education": true,
	})
	// "ghost" was deleted out-of-band; its row lingers.
	chapter := mustCreate(t, store, domain.DocTypeChapter, domain.Fields{
		"title":   "Ch",
		"lessons": []string{"A", "ghost"},
	})

	_, removable, err := r.Reconcile(domain.DocTypeChapter, chapter, "lessons", []string{"A"}, domain.DocTypeLesson)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(removable, []string{"ghost"}) {
		t.Errorf("removable = %v, want the stale row", removable)
	}
	lessons := mustGet(t, store, domain.DocTypeChapter, chapter).Strs("lessons")
	if !reflect.DeepEqual(lessons, []string{"A"}) {
		t.Errorf("collection = %v, want [A]", lessons)
	}
}

func TestReconcile_NoChangeNoSave(t *testing.T) {
	_, store, _ := newTestEngine(t)
	r := application.NewReconciler(store)

	mustCreate(t, store, domain.DocTypeLesson, domain.Fields{
		"name": "A", "title": "A", "synced_from_education": true,
	})
	chapter := mustCreate(t, store, domain.DocTypeChapter, domain.Fields{
		"title":   "Ch",
		"lessons": []string{"A"},
	})

	added, removable, err := r.Reconcile(domain.DocTypeChapter, chapter, "lessons", []string{"A"}, domain.DocTypeLesson)
	if err != nil {
		t.Fatal(err)
	}
	if added != nil || removable != nil {
		t.Errorf("in-sync reconcile returned added=%v removable=%v", added, removable)
	}
}
