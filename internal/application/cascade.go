package application

import (
	"edusync/internal/domain"
	"edusync/internal/ports"
)

// CascadeDeleter destroys a target subtree bottom-up: lessons before their
// chapter, chapters before their course. Source back-links are cleared via
// direct field writes, not full saves, so no source-side validation
// re-fires. Children already deleted out-of-band are skipped; deletion is
// tolerant of partial prior state.
type CascadeDeleter struct {
	store ports.Store
}

func NewCascadeDeleter(store ports.Store) *CascadeDeleter {
	return &CascadeDeleter{store: store}
}

// DeleteLesson removes one lesson and clears its content back-link.
func (d *CascadeDeleter) DeleteLesson(name string) error {
	ok, err := d.store.Exists(domain.DocTypeLesson, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	l, err := loadLesson(d.store, name)
	if err != nil {
		return err
	}
	if err := d.clearContentLink(l); err != nil {
		return err
	}
	return d.store.Delete(domain.DocTypeLesson, name)
}

// DeleteChapter removes a chapter's lessons, then the chapter, clearing
// the topic back-link.
func (d *CascadeDeleter) DeleteChapter(name string) error {
	ok, err := d.store.Exists(domain.DocTypeChapter, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	c, err := loadChapter(d.store, name)
	if err != nil {
		return err
	}
	for _, lesson := range c.Lessons {
		if err := d.DeleteLesson(lesson); err != nil {
			return err
		}
	}
	if c.Topic != "" {
		if err := d.clearLink(domain.DocTypeTopic, c.Topic, "chapter"); err != nil {
			return err
		}
	}
	return d.store.Delete(domain.DocTypeChapter, name)
}

// DeleteLMSCourse removes the course's chapters (each with its lessons),
// then the course itself, clearing the course back-link. Called only when
// the Course itself is deleted — losing program membership alone never
// reaches here.
func (d *CascadeDeleter) DeleteLMSCourse(name string) error {
	ok, err := d.store.Exists(domain.DocTypeLMSCourse, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	c, err := loadLMSCourse(d.store, name)
	if err != nil {
		return err
	}
	for _, chapter := range c.Chapters {
		if err := d.DeleteChapter(chapter); err != nil {
			return err
		}
	}
	if c.Course != "" {
		if err := d.clearLink(domain.DocTypeCourse, c.Course, "lms_course"); err != nil {
			return err
		}
	}
	return d.store.Delete(domain.DocTypeLMSCourse, name)
}

// DeleteLMSProgram removes the program node and clears the program
// back-link. Member courses survive: program membership is association-
// only, and its rows die with the program document.
func (d *CascadeDeleter) DeleteLMSProgram(name string) error {
	ok, err := d.store.Exists(domain.DocTypeLMSProgram, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	p, err := loadLMSProgram(d.store, name)
	if err != nil {
		return err
	}
	if p.Program != "" {
		if err := d.clearLink(domain.DocTypeProgram, p.Program, "lms_program"); err != nil {
			return err
		}
	}
	return d.store.Delete(domain.DocTypeLMSProgram, name)
}

func (d *CascadeDeleter) clearContentLink(l *domain.Lesson) error {
	if l.Content == "" || l.ContentKind == "" {
		return nil
	}
	return d.clearLink(l.ContentKind, l.Content, "lesson")
}

// clearLink blanks a source link field when the source still exists.
func (d *CascadeDeleter) clearLink(doctype, name, field string) error {
	ok, err := d.store.Exists(doctype, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return d.store.SetField(doctype, name, field, "")
}
