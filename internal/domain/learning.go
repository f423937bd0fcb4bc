package domain

// LMSProgram mirrors a Program. program_courses holds the ordered LMS Course
// names; members are enrolled students.
type LMSProgram struct {
	SyncGuard

	Name                string
	Title               string
	Description         string
	ProgramCourses      []string // ordered LMS Course names
	Members             []string
	Program             string // back-link to the source Program
	SyncedFromEducation bool
}

func (p *LMSProgram) Fields() Fields {
	return Fields{
		"title":                 p.Title,
		"description":           p.Description,
		"program_courses":       p.ProgramCourses,
		"members":               p.Members,
		"program":               p.Program,
		"synced_from_education": p.SyncedFromEducation,
	}
}

func LMSProgramFromFields(name string, f Fields) *LMSProgram {
	return &LMSProgram{
		Name:                name,
		Title:               f.Str("title"),
		Description:         f.Str("description"),
		ProgramCourses:      f.Strs("program_courses"),
		Members:             f.Strs("members"),
		Program:             f.Str("program"),
		SyncedFromEducation: f.Bool("synced_from_education"),
	}
}

// LMSCourse mirrors a Course. A course must be published before enrollments
// are created against it.
type LMSCourse struct {
	SyncGuard

	Name                string
	Title               string
	Description         string // plain markup
	Chapters            []string
	Published           bool
	Course              string
	SyncedFromEducation bool
}

func (c *LMSCourse) Fields() Fields {
	return Fields{
		"title":                 c.Title,
		"description":           c.Description,
		"chapters":              c.Chapters,
		"published":             c.Published,
		"course":                c.Course,
		"synced_from_education": c.SyncedFromEducation,
	}
}

func LMSCourseFromFields(name string, f Fields) *LMSCourse {
	return &LMSCourse{
		Name:                name,
		Title:               f.Str("title"),
		Description:         f.Str("description"),
		Chapters:            f.Strs("chapters"),
		Published:           f.Bool("published"),
		Course:              f.Str("course"),
		SyncedFromEducation: f.Bool("synced_from_education"),
	}
}

// Chapter mirrors a Topic inside one LMS Course.
type Chapter struct {
	SyncGuard

	Name                string
	Title               string
	LMSCourse           string // owning course
	Lessons             []string
	Topic               string
	SyncedFromEducation bool
}

func (c *Chapter) Fields() Fields {
	return Fields{
		"title":                 c.Title,
		"lms_course":            c.LMSCourse,
		"lessons":               c.Lessons,
		"topic":                 c.Topic,
		"synced_from_education": c.SyncedFromEducation,
	}
}

func ChapterFromFields(name string, f Fields) *Chapter {
	return &Chapter{
		Name:                name,
		Title:               f.Str("title"),
		LMSCourse:           f.Str("lms_course"),
		Lessons:             f.Strs("lessons"),
		Topic:               f.Str("topic"),
		SyncedFromEducation: f.Bool("synced_from_education"),
	}
}

// Lesson mirrors one Content item. ContentKind records whether the source
// is an Article or a Video, since both land in the same target type.
type Lesson struct {
	SyncGuard

	Name                string
	Title               string
	Body                string // plain markup
	Chapter             string // owning chapter
	Content             string // back-link to the source Content name
	ContentKind         string // Article or Video
	SyncedFromEducation bool
}

func (l *Lesson) Fields() Fields {
	return Fields{
		"title":                 l.Title,
		"body":                  l.Body,
		"chapter":               l.Chapter,
		"content":               l.Content,
		"content_kind":          l.ContentKind,
		"synced_from_education": l.SyncedFromEducation,
	}
}

func LessonFromFields(name string, f Fields) *Lesson {
	return &Lesson{
		Name:                name,
		Title:               f.Str("title"),
		Body:                f.Str("body"),
		Chapter:             f.Str("chapter"),
		Content:             f.Str("content"),
		ContentKind:         f.Str("content_kind"),
		SyncedFromEducation: f.Bool("synced_from_education"),
	}
}

// LMSEnrollment is one member's enrollment in one LMS Course.
type LMSEnrollment struct {
	Name      string
	Member    string
	LMSCourse string
}

func (e *LMSEnrollment) Fields() Fields {
	return Fields{
		"member":     e.Member,
		"lms_course": e.LMSCourse,
	}
}

func LMSEnrollmentFromFields(name string, f Fields) *LMSEnrollment {
	return &LMSEnrollment{
		Name:      name,
		Member:    f.Str("member"),
		LMSCourse: f.Str("lms_course"),
	}
}

// LMSSettings is the singleton gating the whole integration.
type LMSSettings struct {
	Enabled bool
}

// LMSSettingsName is the fixed document name of the settings singleton.
const LMSSettingsName = "LMS Settings"

func (s *LMSSettings) Fields() Fields {
	return Fields{"enabled": s.Enabled}
}

func LMSSettingsFromFields(f Fields) *LMSSettings {
	return &LMSSettings{Enabled: f.Bool("enabled")}
}
