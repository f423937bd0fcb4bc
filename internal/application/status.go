package application

import "edusync/internal/domain"

// LevelStatus is the linked/unlinked tally of one hierarchy level.
type LevelStatus struct {
	Total  int
	Linked int
}

// Status reports per-level link coverage, read-only.
func (e *Engine) Status() (map[domain.Level]LevelStatus, error) {
	out := make(map[domain.Level]LevelStatus)

	levels := []struct {
		level     domain.Level
		doctype   string
		linkField string
	}{
		{domain.LevelProgram, domain.DocTypeProgram, "lms_program"},
		{domain.LevelCourse, domain.DocTypeCourse, "lms_course"},
		{domain.LevelTopic, domain.DocTypeTopic, "chapter"},
		{domain.LevelContent, domain.DocTypeArticle, "lesson"},
		{domain.LevelContent, domain.DocTypeVideo, "lesson"},
	}

	for _, lv := range levels {
		rows, err := e.store.List(lv.doctype, nil)
		if err != nil {
			return nil, err
		}
		st := out[lv.level]
		for _, row := range rows {
			st.Total++
			if row.Fields.Str(lv.linkField) != "" {
				st.Linked++
			}
		}
		out[lv.level] = st
	}
	return out, nil
}
