package application

import (
	"strconv"

	"edusync/internal/domain"
)

// Forward direction: Education → Learning. Each handler covers the entity
// and its immediate children only; deeper levels have their own handlers
// and the orchestrator drives full-tree backfills.

// SyncProgram creates or links the LMS Program and reconciles its course
// membership. Courses dropped from the program lose their membership row
// only; the LMS Course document survives.
func (e *Engine) SyncProgram(p *domain.Program) (string, error) {
	if !e.gate.IsEligible(p) {
		return "", ErrSyncDisabled
	}
	id, err := e.resolver.ResolveProgram(p)
	if err != nil {
		return "", err
	}

	var desired []string
	for _, courseName := range p.Courses {
		c, err := loadCourse(e.store, courseName)
		if err != nil {
			return "", err
		}
		if c.SyncDisabled() {
			continue
		}
		cid, err := e.resolver.ResolveCourse(c)
		if err != nil {
			return "", err
		}
		desired = append(desired, cid)
	}

	// Association-only level: removed rows are not cascaded.
	if _, _, err := e.reconciler.Reconcile(domain.DocTypeLMSProgram, id, "program_courses", desired, domain.DocTypeLMSCourse); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateProgram re-runs program sync; the resolver's link short-circuit
// makes this the update path.
func (e *Engine) UpdateProgram(p *domain.Program) (string, error) {
	return e.SyncProgram(p)
}

// DeleteProgram removes the linked LMS Program. Refused while the LMS
// Program still has members.
func (e *Engine) DeleteProgram(p *domain.Program) error {
	if p.LMSProgram == "" {
		return nil
	}
	ok, err := e.store.Exists(domain.DocTypeLMSProgram, p.LMSProgram)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	lp, err := loadLMSProgram(e.store, p.LMSProgram)
	if err != nil {
		return err
	}
	if len(lp.Members) > 0 {
		return &RuleViolationError{
			DocType: domain.DocTypeLMSProgram,
			Name:    lp.Name,
			Reason:  pluralReason(len(lp.Members), "active member"),
		}
	}
	return e.deleter.DeleteLMSProgram(lp.Name)
}

// SyncCourse creates or links the LMS Course and reconciles its chapters
// against the course's topics. Orphaned synced chapters are cascaded.
func (e *Engine) SyncCourse(c *domain.Course) (string, error) {
	if !e.gate.IsEligible(c) {
		return "", ErrSyncDisabled
	}
	id, err := e.resolver.ResolveCourse(c)
	if err != nil {
		return "", err
	}

	var desired []string
	for _, topicName := range c.Topics {
		t, err := loadTopic(e.store, topicName)
		if err != nil {
			return "", err
		}
		if t.SyncDisabled() {
			continue
		}
		// May append to the course's chapter collection as a side
		// effect; the reconciler re-reads before diffing.
		tid, err := e.resolver.ResolveTopic(t, id)
		if err != nil {
			return "", err
		}
		desired = append(desired, tid)
	}

	_, removable, err := e.reconciler.Reconcile(domain.DocTypeLMSCourse, id, "chapters", desired, domain.DocTypeChapter)
	if err != nil {
		return "", err
	}
	for _, chapter := range removable {
		if err := e.deleter.DeleteChapter(chapter); err != nil {
			return "", err
		}
	}
	return id, nil
}

// UpdateCourse re-runs course sync.
func (e *Engine) UpdateCourse(c *domain.Course) (string, error) {
	return e.SyncCourse(c)
}

// DeleteCourse removes the linked LMS Course and its subtree. Refused
// while enrollments against the LMS Course exist.
func (e *Engine) DeleteCourse(c *domain.Course) error {
	if c.LMSCourse == "" {
		return nil
	}
	ok, err := e.store.Exists(domain.DocTypeLMSCourse, c.LMSCourse)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	enrollments, err := e.store.List(domain.DocTypeLMSEnrollment, map[string]any{"lms_course": c.LMSCourse})
	if err != nil {
		return err
	}
	if len(enrollments) > 0 {
		return &RuleViolationError{
			DocType: domain.DocTypeLMSCourse,
			Name:    c.LMSCourse,
			Reason:  pluralReason(len(enrollments), "active enrollment"),
		}
	}
	if err := e.removeCourseMemberships(c.LMSCourse); err != nil {
		return err
	}
	return e.deleter.DeleteLMSCourse(c.LMSCourse)
}

// SyncTopic creates or links the Chapter inside the owning course's LMS
// Course and reconciles its lessons. Orphaned synced lessons are cascaded.
func (e *Engine) SyncTopic(t *domain.Topic) (string, error) {
	if !e.gate.IsEligible(t) {
		return "", ErrSyncDisabled
	}
	course, err := findOwningCourse(e.store, t.Name)
	if err != nil {
		return "", err
	}
	if course.LMSCourse == "" {
		// Later levels depend on earlier links; the course must sync first.
		return "", &NotFoundError{DocType: domain.DocTypeLMSCourse, Name: "(course " + course.Name + " not linked)"}
	}
	id, err := e.resolver.ResolveTopic(t, course.LMSCourse)
	if err != nil {
		return "", err
	}

	var desired []string
	for _, ref := range t.Contents {
		lid, err := e.resolveContentRef(ref, id)
		if err != nil {
			return "", err
		}
		if lid != "" {
			desired = append(desired, lid)
		}
	}

	_, removable, err := e.reconciler.Reconcile(domain.DocTypeChapter, id, "lessons", desired, domain.DocTypeLesson)
	if err != nil {
		return "", err
	}
	for _, lesson := range removable {
		if err := e.deleter.DeleteLesson(lesson); err != nil {
			return "", err
		}
	}
	return id, nil
}

// UpdateTopic re-runs topic sync.
func (e *Engine) UpdateTopic(t *domain.Topic) (string, error) {
	return e.SyncTopic(t)
}

// DeleteTopic removes the linked Chapter subtree and its membership row.
func (e *Engine) DeleteTopic(t *domain.Topic) error {
	if t.Chapter == "" {
		return nil
	}
	ok, err := e.store.Exists(domain.DocTypeChapter, t.Chapter)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	ch, err := loadChapter(e.store, t.Chapter)
	if err != nil {
		return err
	}
	if ch.LMSCourse != "" {
		if err := e.removeFromCollection(domain.DocTypeLMSCourse, ch.LMSCourse, "chapters", ch.Name); err != nil {
			return err
		}
	}
	return e.deleter.DeleteChapter(ch.Name)
}

// SyncArticle creates or links the Lesson for an article. The owning
// topic's chapter must already exist.
func (e *Engine) SyncArticle(a *domain.Article) (string, error) {
	if !e.gate.IsEligible(a) {
		return "", ErrSyncDisabled
	}
	chapter, err := e.chapterOf(domain.ContentKindArticle, a.Name)
	if err != nil {
		return "", err
	}
	return e.resolver.ResolveArticle(a, chapter)
}

// UpdateArticle re-runs article sync.
func (e *Engine) UpdateArticle(a *domain.Article) (string, error) {
	return e.SyncArticle(a)
}

// DeleteArticle removes the linked Lesson and its membership row.
func (e *Engine) DeleteArticle(a *domain.Article) error {
	return e.deleteContentLesson(a.Lesson)
}

// SyncVideo creates or links the Lesson for a video.
func (e *Engine) SyncVideo(v *domain.Video) (string, error) {
	if !e.gate.IsEligible(v) {
		return "", ErrSyncDisabled
	}
	chapter, err := e.chapterOf(domain.ContentKindVideo, v.Name)
	if err != nil {
		return "", err
	}
	return e.resolver.ResolveVideo(v, chapter)
}

// UpdateVideo re-runs video sync.
func (e *Engine) UpdateVideo(v *domain.Video) (string, error) {
	return e.SyncVideo(v)
}

// DeleteVideo removes the linked Lesson and its membership row.
func (e *Engine) DeleteVideo(v *domain.Video) error {
	return e.deleteContentLesson(v.Lesson)
}

func (e *Engine) resolveContentRef(ref domain.ContentRef, chapter string) (string, error) {
	switch ref.Kind {
	case domain.ContentKindArticle:
		a, err := loadArticle(e.store, ref.Name)
		if err != nil {
			return "", err
		}
		if a.SyncDisabled() {
			return "", nil
		}
		return e.resolver.ResolveArticle(a, chapter)
	case domain.ContentKindVideo:
		v, err := loadVideo(e.store, ref.Name)
		if err != nil {
			return "", err
		}
		if v.SyncDisabled() {
			return "", nil
		}
		return e.resolver.ResolveVideo(v, chapter)
	default:
		return "", &ValidationError{Field: "contents", Message: "unknown content kind " + ref.Kind}
	}
}

func (e *Engine) chapterOf(kind, contentName string) (string, error) {
	t, err := findOwningTopic(e.store, kind, contentName)
	if err != nil {
		return "", err
	}
	if t.Chapter == "" {
		return "", &NotFoundError{DocType: domain.DocTypeChapter, Name: "(topic " + t.Name + " not linked)"}
	}
	return t.Chapter, nil
}

func (e *Engine) deleteContentLesson(lesson string) error {
	if lesson == "" {
		return nil
	}
	ok, err := e.store.Exists(domain.DocTypeLesson, lesson)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	l, err := loadLesson(e.store, lesson)
	if err != nil {
		return err
	}
	if l.Chapter != "" {
		if err := e.removeFromCollection(domain.DocTypeChapter, l.Chapter, "lessons", l.Name); err != nil {
			return err
		}
	}
	return e.deleter.DeleteLesson(l.Name)
}

// removeFromCollection drops one membership row, loading the parent fresh
// and saving only when the row was present.
func (e *Engine) removeFromCollection(doctype, name, field, child string) error {
	ok, err := e.store.Exists(doctype, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	f, err := e.store.Get(doctype, name)
	if err != nil {
		return err
	}
	current := f.Strs(field)
	if !domain.Contains(current, child) {
		return nil
	}
	f[field] = domain.Remove(current, child)
	return e.store.Save(doctype, name, f)
}

// removeCourseMemberships drops a vanishing LMS Course from every LMS
// Program that lists it.
func (e *Engine) removeCourseMemberships(lmsCourse string) error {
	rows, err := e.store.List(domain.DocTypeLMSProgram, nil)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if domain.Contains(row.Fields.Strs("program_courses"), lmsCourse) {
			if err := e.removeFromCollection(domain.DocTypeLMSProgram, row.Name, "program_courses", lmsCourse); err != nil {
				return err
			}
		}
	}
	return nil
}

func pluralReason(n int, noun string) string {
	if n == 1 {
		return "1 " + noun + " exists"
	}
	return strconv.Itoa(n) + " " + noun + "s exist"
}
