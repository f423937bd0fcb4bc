package application

import (
	"fmt"

	"edusync/internal/domain"
	"edusync/internal/ports"
)

// Engine ties the sync primitives together and exposes the operations the
// front-ends (CLI, TUI, MCP) and document-lifecycle hooks call.
type Engine struct {
	store      ports.Store
	sink       ports.ErrorSink
	gate       *SyncGate
	resolver   *Resolver
	reconciler *Reconciler
	deleter    *CascadeDeleter
}

func NewEngine(store ports.Store, sink ports.ErrorSink) *Engine {
	e := &Engine{
		store:      store,
		sink:       sink,
		gate:       NewSyncGate(store),
		resolver:   NewResolver(store),
		reconciler: NewReconciler(store),
		deleter:    NewCascadeDeleter(store),
	}
	// Every forward save of a learning document fires the learning-side
	// lifecycle hook, exactly as an external edit would. The guard on the
	// in-memory value is what keeps this from ping-ponging.
	e.resolver.notify = e.learningSaved
	return e
}

// Store exposes the underlying document store to front-ends that render
// raw documents (tree, list).
func (e *Engine) Store() ports.Store {
	return e.store
}

// Gate exposes the eligibility predicate.
func (e *Engine) Gate() *SyncGate {
	return e.gate
}

// learningSaved dispatches a just-saved learning document to the matching
// reverse handler, with the loop guard already set. A reverse failure here
// is recorded, never propagated: it must not abort the forward write that
// triggered it.
func (e *Engine) learningSaved(doctype, name string, f domain.Fields) {
	var err error
	switch doctype {
	case domain.DocTypeLesson:
		l := domain.LessonFromFields(name, f)
		Mark(l)
		err = e.SyncLessonToEducation(l)
	case domain.DocTypeChapter:
		c := domain.ChapterFromFields(name, f)
		Mark(c)
		err = e.SyncChapterToEducation(c)
	case domain.DocTypeLMSCourse:
		c := domain.LMSCourseFromFields(name, f)
		Mark(c)
		err = e.SyncCourseToEducation(c)
	case domain.DocTypeLMSProgram:
		p := domain.LMSProgramFromFields(name, f)
		Mark(p)
		err = e.SyncProgramToEducation(p)
	}
	if err != nil {
		e.record(doctype, name, err)
	}
}

func (e *Engine) record(doctype, name string, err error) {
	if e.sink != nil {
		e.sink.Record(fmt.Sprintf("Sync failed: %s %s", doctype, name), err.Error())
	}
}
