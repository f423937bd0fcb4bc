package application

import (
	"strings"

	"edusync/internal/domain"
	"edusync/internal/markup"
)

// Reverse direction: Learning → Education. Every handler starts with the
// loop-guard check, then suppresses no-op writes through the normalizer.
// Write-backs use direct field writes so no education-side lifecycle hook
// re-fires.

// SyncLessonToEducation writes a lesson edit back onto its source content.
// Lessons without a content back-link are manually authored; nothing to do.
func (e *Engine) SyncLessonToEducation(l *domain.Lesson) error {
	if ShouldSkip(l) {
		return nil
	}
	if !e.gate.Enabled() {
		return nil
	}
	if l.Content == "" {
		return nil
	}
	switch l.ContentKind {
	case domain.ContentKindArticle:
		return e.lessonToArticle(l)
	case domain.ContentKindVideo:
		return e.lessonToVideo(l)
	default:
		return &ValidationError{Field: "content_kind", Message: "unknown content kind " + l.ContentKind}
	}
}

func (e *Engine) lessonToArticle(l *domain.Lesson) error {
	a, err := loadArticle(e.store, l.Content)
	if err != nil {
		return err
	}
	if titleChanged(a.Title, l.Title) {
		if err := e.store.SetField(domain.DocTypeArticle, a.Name, "title", l.Title); err != nil {
			return err
		}
	}
	if HasMeaningfulChange(a.Content, l.Body) {
		return e.store.SetField(domain.DocTypeArticle, a.Name, "content", markup.ToRich(l.Body))
	}
	return nil
}

func (e *Engine) lessonToVideo(l *domain.Lesson) error {
	v, err := loadVideo(e.store, l.Content)
	if err != nil {
		return err
	}
	if titleChanged(v.Title, l.Title) {
		if err := e.store.SetField(domain.DocTypeVideo, v.Name, "title", l.Title); err != nil {
			return err
		}
	}
	url, desc := splitVideoBody(l.Body)
	if v.URL == "" {
		// The forward composition only prepends a URL line when the video
		// has one. Without it the whole body is description, even when the
		// first line happens to look like a link.
		url, desc = "", strings.TrimSpace(l.Body)
	}
	if url != "" && url != v.URL {
		if err := e.store.SetField(domain.DocTypeVideo, v.Name, "url", url); err != nil {
			return err
		}
	}
	if HasMeaningfulChange(v.Description, desc) {
		return e.store.SetField(domain.DocTypeVideo, v.Name, "description", markup.ToRich(desc))
	}
	return nil
}

// splitVideoBody undoes the forward composition: a URL first line followed
// by the converted description.
func splitVideoBody(body string) (url, desc string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ""
	}
	head, rest, _ := strings.Cut(body, "\n")
	if strings.HasPrefix(head, "http://") || strings.HasPrefix(head, "https://") {
		return strings.TrimSpace(head), strings.TrimSpace(rest)
	}
	return "", body
}

// SyncChapterToEducation writes a chapter title edit back to its topic.
func (e *Engine) SyncChapterToEducation(c *domain.Chapter) error {
	if ShouldSkip(c) {
		return nil
	}
	if !e.gate.Enabled() {
		return nil
	}
	if c.Topic == "" {
		return nil
	}
	t, err := loadTopic(e.store, c.Topic)
	if err != nil {
		return err
	}
	if titleChanged(t.Title, c.Title) {
		return e.store.SetField(domain.DocTypeTopic, t.Name, "title", c.Title)
	}
	return nil
}

// SyncCourseToEducation writes LMS course edits back to the course,
// converting the plain description back to rich text.
func (e *Engine) SyncCourseToEducation(c *domain.LMSCourse) error {
	if ShouldSkip(c) {
		return nil
	}
	if !e.gate.Enabled() {
		return nil
	}
	if c.Course == "" {
		return nil
	}
	src, err := loadCourse(e.store, c.Course)
	if err != nil {
		return err
	}
	if titleChanged(src.Title, c.Title) {
		if err := e.store.SetField(domain.DocTypeCourse, src.Name, "title", c.Title); err != nil {
			return err
		}
	}
	if HasMeaningfulChange(src.Description, c.Description) {
		return e.store.SetField(domain.DocTypeCourse, src.Name, "description", markup.ToRich(c.Description))
	}
	return nil
}

// SyncProgramToEducation writes LMS program edits back to the program.
func (e *Engine) SyncProgramToEducation(p *domain.LMSProgram) error {
	if ShouldSkip(p) {
		return nil
	}
	if !e.gate.Enabled() {
		return nil
	}
	if p.Program == "" {
		return nil
	}
	src, err := loadProgram(e.store, p.Program)
	if err != nil {
		return err
	}
	if titleChanged(src.Title, p.Title) {
		if err := e.store.SetField(domain.DocTypeProgram, src.Name, "title", p.Title); err != nil {
			return err
		}
	}
	if HasMeaningfulChange(src.Description, p.Description) {
		return e.store.SetField(domain.DocTypeProgram, src.Name, "description", p.Description)
	}
	return nil
}
