package application

import (
	"errors"

	"edusync/internal/domain"
)

// LevelCount is one level's outcome tally in a backfill report.
type LevelCount struct {
	Synced  int
	Skipped int
	Failed  int
}

// Report aggregates a full backfill run.
type Report struct {
	Counts map[domain.Level]LevelCount
	Errors []SyncFailure
}

// RunAll walks the hierarchy in dependency order — Programs, Courses,
// Topics, Content — syncing every entity that lacks a link. One bad node
// records an error and the batch moves on; each entity's store writes are
// committed as they happen, so later levels see earlier levels' links.
func (e *Engine) RunAll() (*Report, error) {
	if !e.gate.Enabled() {
		return nil, ErrSyncDisabled
	}
	report := &Report{Counts: make(map[domain.Level]LevelCount)}

	e.runLevel(report, domain.LevelProgram, domain.DocTypeProgram, func(name string, f domain.Fields) (bool, error) {
		p := domain.ProgramFromFields(name, f)
		if p.LMSProgram != "" {
			return false, nil
		}
		_, err := e.SyncProgram(p)
		return true, err
	})

	e.runLevel(report, domain.LevelCourse, domain.DocTypeCourse, func(name string, f domain.Fields) (bool, error) {
		c := domain.CourseFromFields(name, f)
		if c.LMSCourse != "" {
			return false, nil
		}
		_, err := e.SyncCourse(c)
		return true, err
	})

	e.runLevel(report, domain.LevelTopic, domain.DocTypeTopic, func(name string, f domain.Fields) (bool, error) {
		t := domain.TopicFromFields(name, f)
		if t.Chapter != "" {
			return false, nil
		}
		_, err := e.SyncTopic(t)
		return true, err
	})

	e.runLevel(report, domain.LevelContent, domain.DocTypeArticle, func(name string, f domain.Fields) (bool, error) {
		a := domain.ArticleFromFields(name, f)
		if a.Lesson != "" {
			return false, nil
		}
		_, err := e.SyncArticle(a)
		return true, err
	})

	e.runLevel(report, domain.LevelContent, domain.DocTypeVideo, func(name string, f domain.Fields) (bool, error) {
		v := domain.VideoFromFields(name, f)
		if v.Lesson != "" {
			return false, nil
		}
		_, err := e.SyncVideo(v)
		return true, err
	})

	return report, nil
}

// runLevel iterates one document type, applying sync to each entity and
// containing failures at the entity boundary.
func (e *Engine) runLevel(report *Report, level domain.Level, doctype string, sync func(name string, f domain.Fields) (attempted bool, err error)) {
	count := report.Counts[level]
	defer func() { report.Counts[level] = count }()

	rows, err := e.store.List(doctype, nil)
	if err != nil {
		report.Errors = append(report.Errors, SyncFailure{DocType: doctype, Name: "*", Message: err.Error()})
		count.Failed++
		return
	}

	for _, row := range rows {
		attempted, err := sync(row.Name, row.Fields)
		switch {
		case !attempted:
			count.Skipped++
		case err == nil:
			count.Synced++
		case errors.Is(err, ErrSyncDisabled):
			count.Skipped++
		default:
			count.Failed++
			report.Errors = append(report.Errors, SyncFailure{
				DocType: doctype,
				Name:    row.Name,
				Message: err.Error(),
			})
		}
	}
}
