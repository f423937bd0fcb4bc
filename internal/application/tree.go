package application

import (
	"sort"

	"edusync/internal/domain"
	"edusync/internal/ports"
)

// EducationTree builds the navigation tree of the Education hierarchy with
// link badges. The synthetic root carries every program.
func (e *Engine) EducationTree() (*domain.TreeNode, error) {
	root := &domain.TreeNode{DocType: "root", Title: "Education", IsExpanded: true}

	rows, err := e.store.List(domain.DocTypeProgram, nil)
	if err != nil {
		return nil, err
	}
	sortListed(rows)

	for _, row := range rows {
		p := domain.ProgramFromFields(row.Name, row.Fields)
		pn := &domain.TreeNode{
			DocType: domain.DocTypeProgram,
			Name:    p.Name,
			Title:   p.Title,
			Linked:  p.LMSProgram != "",
		}
		root.AddChild(pn)

		for _, courseName := range p.Courses {
			c, err := loadCourse(e.store, courseName)
			if err != nil {
				continue // stale membership row; tree stays best-effort
			}
			cn := &domain.TreeNode{
				DocType: domain.DocTypeCourse,
				Name:    c.Name,
				Title:   c.Title,
				Linked:  c.LMSCourse != "",
			}
			pn.AddChild(cn)

			for _, topicName := range c.Topics {
				t, err := loadTopic(e.store, topicName)
				if err != nil {
					continue
				}
				tn := &domain.TreeNode{
					DocType: domain.DocTypeTopic,
					Name:    t.Name,
					Title:   t.Title,
					Linked:  t.Chapter != "",
				}
				cn.AddChild(tn)

				for _, ref := range t.Contents {
					f, err := e.store.Get(ref.Kind, ref.Name)
					if err != nil {
						continue
					}
					tn.AddChild(&domain.TreeNode{
						DocType: ref.Kind,
						Name:    ref.Name,
						Title:   f.Str("title"),
						Linked:  f.Str("lesson") != "",
					})
				}
			}
		}
	}
	return root, nil
}

// LearningTree builds the navigation tree of the Learning hierarchy, with
// sync-ownership badges. Courses outside any program still appear, under
// the root, so manually curated courses are visible.
func (e *Engine) LearningTree() (*domain.TreeNode, error) {
	root := &domain.TreeNode{DocType: "root", Title: "Learning", IsExpanded: true}

	programs, err := e.store.List(domain.DocTypeLMSProgram, nil)
	if err != nil {
		return nil, err
	}
	sortListed(programs)

	seen := map[string]bool{}
	for _, row := range programs {
		p := domain.LMSProgramFromFields(row.Name, row.Fields)
		pn := &domain.TreeNode{
			DocType:   domain.DocTypeLMSProgram,
			Name:      p.Name,
			Title:     p.Title,
			Linked:    p.Program != "",
			SyncOwned: p.SyncedFromEducation,
		}
		root.AddChild(pn)
		for _, courseID := range p.ProgramCourses {
			seen[courseID] = true
			if cn, err := e.lmsCourseNode(courseID); err == nil {
				pn.AddChild(cn)
			}
		}
	}

	courses, err := e.store.List(domain.DocTypeLMSCourse, nil)
	if err != nil {
		return nil, err
	}
	sortListed(courses)
	for _, row := range courses {
		if seen[row.Name] {
			continue
		}
		if cn, err := e.lmsCourseNode(row.Name); err == nil {
			root.AddChild(cn)
		}
	}
	return root, nil
}

func (e *Engine) lmsCourseNode(name string) (*domain.TreeNode, error) {
	c, err := loadLMSCourse(e.store, name)
	if err != nil {
		return nil, err
	}
	cn := &domain.TreeNode{
		DocType:   domain.DocTypeLMSCourse,
		Name:      c.Name,
		Title:     c.Title,
		Linked:    c.Course != "",
		SyncOwned: c.SyncedFromEducation,
	}
	for _, chapterID := range c.Chapters {
		ch, err := loadChapter(e.store, chapterID)
		if err != nil {
			continue
		}
		chn := &domain.TreeNode{
			DocType:   domain.DocTypeChapter,
			Name:      ch.Name,
			Title:     ch.Title,
			Linked:    ch.Topic != "",
			SyncOwned: ch.SyncedFromEducation,
		}
		cn.AddChild(chn)
		for _, lessonID := range ch.Lessons {
			l, err := loadLesson(e.store, lessonID)
			if err != nil {
				continue
			}
			chn.AddChild(&domain.TreeNode{
				DocType:   domain.DocTypeLesson,
				Name:      l.Name,
				Title:     l.Title,
				Linked:    l.Content != "",
				SyncOwned: l.SyncedFromEducation,
			})
		}
	}
	return cn, nil
}

func sortListed(rows []ports.Listed) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
}
