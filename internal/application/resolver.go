package application

import (
	"fmt"

	"edusync/internal/domain"
	"edusync/internal/markup"
	"edusync/internal/ports"
)

// Resolver maps one source entity to exactly one target entity: reuse the
// existing link, adopt a same-titled unlinked node in the same parent
// context, or create a new node — in that order. Resolution is idempotent:
// a second call with unchanged fields short-circuits on the link and
// creates nothing.
type Resolver struct {
	store  ports.Store
	notify func(doctype, name string, f domain.Fields)
}

func NewResolver(store ports.Store) *Resolver {
	return &Resolver{store: store}
}

// resolution carries the per-level wiring of the shared algorithm.
type resolution struct {
	targetType    string
	linked        string         // current source→target link, "" when unlinked
	adoptFilter   map[string]any // locates same-titled candidates in the parent context
	backlinkField string         // must be empty on an adoption candidate
	backlink      domain.Fields  // back-link values written onto the target
	apply         func(domain.Fields) domain.Fields
	create        func() domain.Fields
	setSourceLink func(target string) error
	parent        *parentCollection
}

// parentCollection names the ordered child collection a created target is
// appended to.
type parentCollection struct {
	doctype string
	name    string
	field   string
}

func (r *Resolver) resolve(res resolution) (string, error) {
	// 1. Existing link still valid: plain update.
	if res.linked != "" {
		ok, err := r.store.Exists(res.targetType, res.linked)
		if err != nil {
			return "", err
		}
		if ok {
			f, err := r.store.Get(res.targetType, res.linked)
			if err != nil {
				return "", err
			}
			f = res.apply(f)
			for k, v := range res.backlink {
				f[k] = v
			}
			f["synced_from_education"] = true
			if err := r.store.Save(res.targetType, res.linked, f); err != nil {
				return "", err
			}
			r.saved(res.targetType, res.linked, f)
			return res.linked, nil
		}
		// Target deleted out-of-band: fall through to adoption/creation.
	}

	// 2. Adopt a same-titled, unlinked node in the same parent context.
	// Title collisions pick the first match; acceptable for idempotent
	// backfills, known limitation otherwise.
	rows, err := r.store.List(res.targetType, res.adoptFilter)
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		if row.Fields.Str(res.backlinkField) != "" {
			continue
		}
		f := res.apply(row.Fields)
		for k, v := range res.backlink {
			f[k] = v
		}
		f["synced_from_education"] = true
		if err := r.store.Save(res.targetType, row.Name, f); err != nil {
			return "", err
		}
		if err := res.setSourceLink(row.Name); err != nil {
			return "", err
		}
		r.saved(res.targetType, row.Name, f)
		return row.Name, nil
	}

	// 3. Create a new target node.
	f := res.create()
	for k, v := range res.backlink {
		f[k] = v
	}
	f["synced_from_education"] = true
	name, err := r.store.Create(res.targetType, f)
	if err != nil {
		return "", err
	}
	if err := res.setSourceLink(name); err != nil {
		return "", err
	}
	if res.parent != nil {
		if err := r.appendToParent(res.parent, name); err != nil {
			return "", err
		}
	}
	r.saved(res.targetType, name, f)
	return name, nil
}

// appendToParent re-reads the parent and appends the child if absent. The
// re-read matters: the parent may have been mutated earlier in this same
// logical operation.
func (r *Resolver) appendToParent(p *parentCollection, child string) error {
	f, err := r.store.Get(p.doctype, p.name)
	if err != nil {
		return err
	}
	current := f.Strs(p.field)
	if domain.Contains(current, child) {
		return nil
	}
	f[p.field] = domain.AppendUnique(current, child)
	return r.store.Save(p.doctype, p.name, f)
}

func (r *Resolver) saved(doctype, name string, f domain.Fields) {
	if r.notify != nil {
		r.notify(doctype, name, f)
	}
}

// ResolveProgram maps a Program to its LMS Program.
func (r *Resolver) ResolveProgram(p *domain.Program) (string, error) {
	if p.Title == "" {
		return "", &ValidationError{Field: "title", Message: "program title is required"}
	}
	return r.resolve(resolution{
		targetType:    domain.DocTypeLMSProgram,
		linked:        p.LMSProgram,
		adoptFilter:   map[string]any{"title": p.Title},
		backlinkField: "program",
		backlink:      domain.Fields{"program": p.Name},
		apply: func(f domain.Fields) domain.Fields {
			f["title"] = p.Title
			f["description"] = p.Description
			return f
		},
		create: func() domain.Fields {
			return domain.Fields{
				"title":           p.Title,
				"description":     p.Description,
				"program_courses": []string{},
				"members":         []string{},
			}
		},
		setSourceLink: func(target string) error {
			return r.store.SetField(domain.DocTypeProgram, p.Name, "lms_program", target)
		},
	})
}

// ResolveCourse maps a Course to its LMS Course. The rich-text description
// is converted to plain markup on the way over.
func (r *Resolver) ResolveCourse(c *domain.Course) (string, error) {
	if c.Title == "" {
		return "", &ValidationError{Field: "title", Message: "course title is required"}
	}
	body := markup.ToPlain(c.Description)
	return r.resolve(resolution{
		targetType:    domain.DocTypeLMSCourse,
		linked:        c.LMSCourse,
		adoptFilter:   map[string]any{"title": c.Title},
		backlinkField: "course",
		backlink:      domain.Fields{"course": c.Name},
		apply: func(f domain.Fields) domain.Fields {
			f["title"] = c.Title
			f["description"] = body
			return f
		},
		create: func() domain.Fields {
			return domain.Fields{
				"title":       c.Title,
				"description": body,
				"chapters":    []string{},
				"published":   false,
			}
		},
		setSourceLink: func(target string) error {
			return r.store.SetField(domain.DocTypeCourse, c.Name, "lms_course", target)
		},
	})
}

// ResolveTopic maps a Topic to a Chapter inside the given LMS Course. A
// created chapter is appended to the course's chapter collection.
func (r *Resolver) ResolveTopic(t *domain.Topic, lmsCourse string) (string, error) {
	if t.Title == "" {
		return "", &ValidationError{Field: "title", Message: "topic title is required"}
	}
	if lmsCourse == "" {
		return "", &NotFoundError{DocType: domain.DocTypeLMSCourse, Name: fmt.Sprintf("(for topic %s)", t.Name)}
	}
	return r.resolve(resolution{
		targetType:    domain.DocTypeChapter,
		linked:        t.Chapter,
		adoptFilter:   map[string]any{"title": t.Title, "lms_course": lmsCourse},
		backlinkField: "topic",
		backlink:      domain.Fields{"topic": t.Name},
		apply: func(f domain.Fields) domain.Fields {
			f["title"] = t.Title
			return f
		},
		create: func() domain.Fields {
			return domain.Fields{
				"title":      t.Title,
				"lms_course": lmsCourse,
				"lessons":    []string{},
			}
		},
		setSourceLink: func(target string) error {
			return r.store.SetField(domain.DocTypeTopic, t.Name, "chapter", target)
		},
		parent: &parentCollection{
			doctype: domain.DocTypeLMSCourse,
			name:    lmsCourse,
			field:   "chapters",
		},
	})
}

// ResolveArticle maps an Article to a Lesson inside the given Chapter.
func (r *Resolver) ResolveArticle(a *domain.Article, chapter string) (string, error) {
	if a.Title == "" {
		return "", &ValidationError{Field: "title", Message: "article title is required"}
	}
	if chapter == "" {
		return "", &NotFoundError{DocType: domain.DocTypeChapter, Name: fmt.Sprintf("(for article %s)", a.Name)}
	}
	body := markup.ToPlain(a.Content)
	return r.resolveContent(domain.ContentKindArticle, a.Name, a.Title, a.Lesson, body, chapter,
		func(target string) error {
			return r.store.SetField(domain.DocTypeArticle, a.Name, "lesson", target)
		})
}

// ResolveVideo maps a Video to a Lesson inside the given Chapter. The
// lesson body carries the URL followed by the converted description.
func (r *Resolver) ResolveVideo(v *domain.Video, chapter string) (string, error) {
	if v.Title == "" {
		return "", &ValidationError{Field: "title", Message: "video title is required"}
	}
	if chapter == "" {
		return "", &NotFoundError{DocType: domain.DocTypeChapter, Name: fmt.Sprintf("(for video %s)", v.Name)}
	}
	body := v.URL
	if desc := markup.ToPlain(v.Description); desc != "" {
		body += "\n\n" + desc
	}
	return r.resolveContent(domain.ContentKindVideo, v.Name, v.Title, v.Lesson, body, chapter,
		func(target string) error {
			return r.store.SetField(domain.DocTypeVideo, v.Name, "lesson", target)
		})
}

func (r *Resolver) resolveContent(kind, name, title, linked, body, chapter string, setLink func(string) error) (string, error) {
	return r.resolve(resolution{
		targetType:    domain.DocTypeLesson,
		linked:        linked,
		adoptFilter:   map[string]any{"title": title, "chapter": chapter},
		backlinkField: "content",
		backlink:      domain.Fields{"content": name, "content_kind": kind},
		apply: func(f domain.Fields) domain.Fields {
			f["title"] = title
			f["body"] = body
			return f
		},
		create: func() domain.Fields {
			return domain.Fields{
				"title":   title,
				"body":    body,
				"chapter": chapter,
			}
		},
		setSourceLink: setLink,
		parent: &parentCollection{
			doctype: domain.DocTypeChapter,
			name:    chapter,
			field:   "lessons",
		},
	})
}
