package application

import (
	"errors"

	"edusync/internal/domain"
)

// Document-lifecycle hook boundaries. A sync failure must never abort the
// document operation that triggered it, so these wrappers record anything
// that is not a rule violation and return normally. Rule violations guard
// deletes the user must see; only those propagate.

// ProgramChanged handles a Program create/update event.
func (e *Engine) ProgramChanged(p *domain.Program) {
	if _, err := e.SyncProgram(p); err != nil {
		e.recordHookErr(domain.DocTypeProgram, p.Name, err)
	}
}

// ProgramDeleted handles a Program delete event.
func (e *Engine) ProgramDeleted(p *domain.Program) error {
	return e.hookDelete(domain.DocTypeProgram, p.Name, e.DeleteProgram(p))
}

// CourseChanged handles a Course create/update event.
func (e *Engine) CourseChanged(c *domain.Course) {
	if _, err := e.SyncCourse(c); err != nil {
		e.recordHookErr(domain.DocTypeCourse, c.Name, err)
	}
}

// CourseDeleted handles a Course delete event.
func (e *Engine) CourseDeleted(c *domain.Course) error {
	return e.hookDelete(domain.DocTypeCourse, c.Name, e.DeleteCourse(c))
}

// TopicChanged handles a Topic create/update event.
func (e *Engine) TopicChanged(t *domain.Topic) {
	if _, err := e.SyncTopic(t); err != nil {
		e.recordHookErr(domain.DocTypeTopic, t.Name, err)
	}
}

// TopicDeleted handles a Topic delete event.
func (e *Engine) TopicDeleted(t *domain.Topic) error {
	return e.hookDelete(domain.DocTypeTopic, t.Name, e.DeleteTopic(t))
}

// ArticleChanged handles an Article create/update event.
func (e *Engine) ArticleChanged(a *domain.Article) {
	if _, err := e.SyncArticle(a); err != nil {
		e.recordHookErr(domain.DocTypeArticle, a.Name, err)
	}
}

// VideoChanged handles a Video create/update event.
func (e *Engine) VideoChanged(v *domain.Video) {
	if _, err := e.SyncVideo(v); err != nil {
		e.recordHookErr(domain.DocTypeVideo, v.Name, err)
	}
}

// EnrollmentSubmitted handles a Program Enrollment submission event.
func (e *Engine) EnrollmentSubmitted(en *domain.ProgramEnrollment) {
	if err := e.SyncEnrollment(en); err != nil {
		e.recordHookErr(domain.DocTypeProgramEnrollment, en.Name, err)
	}
}

func (e *Engine) hookDelete(doctype, name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrRuleViolation) {
		return err
	}
	e.recordHookErr(doctype, name, err)
	return nil
}

// recordHookErr records a background failure; an explicit opt-out is not
// a failure.
func (e *Engine) recordHookErr(doctype, name string, err error) {
	if errors.Is(err, ErrSyncDisabled) {
		return
	}
	e.record(doctype, name, err)
}
