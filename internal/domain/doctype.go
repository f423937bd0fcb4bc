package domain

// Document type names for the Education hierarchy
const (
	DocTypeProgram           = "Program"
	DocTypeCourse            = "Course"
	DocTypeTopic             = "Topic"
	DocTypeArticle           = "Article"
	DocTypeVideo             = "Video"
	DocTypeProgramEnrollment = "Program Enrollment"
)

// Document type names for the Learning (LMS) hierarchy
const (
	DocTypeLMSProgram    = "LMS Program"
	DocTypeLMSCourse     = "LMS Course"
	DocTypeChapter       = "Chapter"
	DocTypeLesson        = "Lesson"
	DocTypeLMSEnrollment = "LMS Enrollment"
	DocTypeLMSSettings   = "LMS Settings"
	DocTypeSyncErrorLog  = "Sync Error Log"
)

// Level represents one level of the synchronized hierarchy
type Level int

const (
	LevelProgram Level = iota
	LevelCourse
	LevelTopic
	LevelContent
)

func (l Level) String() string {
	switch l {
	case LevelProgram:
		return "Program"
	case LevelCourse:
		return "Course"
	case LevelTopic:
		return "Topic"
	case LevelContent:
		return "Content"
	default:
		return "Unknown"
	}
}

// Levels lists all hierarchy levels in dependency order: a later level's
// sync requires the earlier levels' links to already exist.
func Levels() []Level {
	return []Level{LevelProgram, LevelCourse, LevelTopic, LevelContent}
}

// ContentKind disambiguates the two Content document types
const (
	ContentKindArticle = DocTypeArticle
	ContentKindVideo   = DocTypeVideo
)

// ContentRef is one typed entry of a Topic's content collection
type ContentRef struct {
	Kind string // Article or Video
	Name string
}
