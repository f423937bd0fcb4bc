package domain

// Program is the root of the Education hierarchy. Its ordered course list
// is the source of truth for LMS Program membership.
type Program struct {
	SyncGuard

	Name        string // document name (identity)
	Title       string
	Description string   // rich text
	Courses     []string // ordered Course names
	LMSProgram  string   // link to the synced LMS Program, "" when unlinked
	DisableSync bool
}

func (p *Program) Fields() Fields {
	return Fields{
		"title":        p.Title,
		"description":  p.Description,
		"courses":      p.Courses,
		"lms_program":  p.LMSProgram,
		"disable_sync": p.DisableSync,
	}
}

func ProgramFromFields(name string, f Fields) *Program {
	return &Program{
		Name:        name,
		Title:       f.Str("title"),
		Description: f.Str("description"),
		Courses:     f.Strs("courses"),
		LMSProgram:  f.Str("lms_program"),
		DisableSync: f.Bool("disable_sync"),
	}
}

// Course is the second level. Topics hang off it; the LMS counterpart is an
// LMS Course whose chapters mirror the topics.
type Course struct {
	SyncGuard

	Name        string
	Title       string
	Description string
	Topics      []string // ordered Topic names
	LMSCourse   string
	DisableSync bool
}

func (c *Course) Fields() Fields {
	return Fields{
		"title":        c.Title,
		"description":  c.Description,
		"topics":       c.Topics,
		"lms_course":   c.LMSCourse,
		"disable_sync": c.DisableSync,
	}
}

func CourseFromFields(name string, f Fields) *Course {
	return &Course{
		Name:        name,
		Title:       f.Str("title"),
		Description: f.Str("description"),
		Topics:      f.Strs("topics"),
		LMSCourse:   f.Str("lms_course"),
		DisableSync: f.Bool("disable_sync"),
	}
}

// Topic groups Content items; it maps to a Chapter on the learning side.
type Topic struct {
	SyncGuard

	Name        string
	Title       string
	Contents    []ContentRef // ordered, typed (Article/Video)
	Chapter     string
	DisableSync bool
}

func (t *Topic) Fields() Fields {
	return Fields{
		"title":        t.Title,
		"contents":     refFields(t.Contents),
		"chapter":      t.Chapter,
		"disable_sync": t.DisableSync,
	}
}

func TopicFromFields(name string, f Fields) *Topic {
	return &Topic{
		Name:        name,
		Title:       f.Str("title"),
		Contents:    f.ContentRefs("contents"),
		Chapter:     f.Str("chapter"),
		DisableSync: f.Bool("disable_sync"),
	}
}

// Article is rich-text Content; its body is converted to plain markup when
// written into the linked Lesson.
type Article struct {
	SyncGuard

	Name        string
	Title       string
	Content     string // rich text body
	Lesson      string
	DisableSync bool
}

func (a *Article) Fields() Fields {
	return Fields{
		"title":        a.Title,
		"content":      a.Content,
		"lesson":       a.Lesson,
		"disable_sync": a.DisableSync,
	}
}

func ArticleFromFields(name string, f Fields) *Article {
	return &Article{
		Name:        name,
		Title:       f.Str("title"),
		Content:     f.Str("content"),
		Lesson:      f.Str("lesson"),
		DisableSync: f.Bool("disable_sync"),
	}
}

// Video is URL Content; the lesson body carries the URL plus description.
type Video struct {
	SyncGuard

	Name        string
	Title       string
	URL         string
	Description string
	Lesson      string
	DisableSync bool
}

func (v *Video) Fields() Fields {
	return Fields{
		"title":        v.Title,
		"url":          v.URL,
		"description":  v.Description,
		"lesson":       v.Lesson,
		"disable_sync": v.DisableSync,
	}
}

func VideoFromFields(name string, f Fields) *Video {
	return &Video{
		Name:        name,
		Title:       f.Str("title"),
		URL:         f.Str("url"),
		Description: f.Str("description"),
		Lesson:      f.Str("lesson"),
		DisableSync: f.Bool("disable_sync"),
	}
}

// ProgramEnrollment records a student's submitted enrollment in a Program.
type ProgramEnrollment struct {
	SyncGuard

	Name        string
	Student     string // member identifier (email)
	StudentName string
	Program     string
	Submitted   bool
}

func (e *ProgramEnrollment) Fields() Fields {
	return Fields{
		"student":      e.Student,
		"student_name": e.StudentName,
		"program":      e.Program,
		"submitted":    e.Submitted,
	}
}

func ProgramEnrollmentFromFields(name string, f Fields) *ProgramEnrollment {
	return &ProgramEnrollment{
		Name:        name,
		Student:     f.Str("student"),
		StudentName: f.Str("student_name"),
		Program:     f.Str("program"),
		Submitted:   f.Bool("submitted"),
	}
}
