package application

import (
	"edusync/internal/domain"
	"edusync/internal/ports"
)

// Typed accessors over the generic store port. Every load re-reads the
// latest persisted state; nothing in the engine holds a document across a
// nested call that might itself persist it.

func loadProgram(s ports.Store, name string) (*domain.Program, error) {
	f, err := s.Get(domain.DocTypeProgram, name)
	if err != nil {
		return nil, err
	}
	return domain.ProgramFromFields(name, f), nil
}

func loadCourse(s ports.Store, name string) (*domain.Course, error) {
	f, err := s.Get(domain.DocTypeCourse, name)
	if err != nil {
		return nil, err
	}
	return domain.CourseFromFields(name, f), nil
}

func loadTopic(s ports.Store, name string) (*domain.Topic, error) {
	f, err := s.Get(domain.DocTypeTopic, name)
	if err != nil {
		return nil, err
	}
	return domain.TopicFromFields(name, f), nil
}

func loadArticle(s ports.Store, name string) (*domain.Article, error) {
	f, err := s.Get(domain.DocTypeArticle, name)
	if err != nil {
		return nil, err
	}
	return domain.ArticleFromFields(name, f), nil
}

func loadVideo(s ports.Store, name string) (*domain.Video, error) {
	f, err := s.Get(domain.DocTypeVideo, name)
	if err != nil {
		return nil, err
	}
	return domain.VideoFromFields(name, f), nil
}

func loadLMSProgram(s ports.Store, name string) (*domain.LMSProgram, error) {
	f, err := s.Get(domain.DocTypeLMSProgram, name)
	if err != nil {
		return nil, err
	}
	return domain.LMSProgramFromFields(name, f), nil
}

func loadLMSCourse(s ports.Store, name string) (*domain.LMSCourse, error) {
	f, err := s.Get(domain.DocTypeLMSCourse, name)
	if err != nil {
		return nil, err
	}
	return domain.LMSCourseFromFields(name, f), nil
}

func loadChapter(s ports.Store, name string) (*domain.Chapter, error) {
	f, err := s.Get(domain.DocTypeChapter, name)
	if err != nil {
		return nil, err
	}
	return domain.ChapterFromFields(name, f), nil
}

func loadLesson(s ports.Store, name string) (*domain.Lesson, error) {
	f, err := s.Get(domain.DocTypeLesson, name)
	if err != nil {
		return nil, err
	}
	return domain.LessonFromFields(name, f), nil
}

func loadProgramEnrollment(s ports.Store, name string) (*domain.ProgramEnrollment, error) {
	f, err := s.Get(domain.DocTypeProgramEnrollment, name)
	if err != nil {
		return nil, err
	}
	return domain.ProgramEnrollmentFromFields(name, f), nil
}

// findOwningCourse returns the first Course whose topic collection holds
// the given topic. Topics carry no parent field of their own; membership
// lives in the course's ordered collection.
func findOwningCourse(s ports.Store, topicName string) (*domain.Course, error) {
	rows, err := s.List(domain.DocTypeCourse, nil)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		c := domain.CourseFromFields(row.Name, row.Fields)
		if domain.Contains(c.Topics, topicName) {
			return c, nil
		}
	}
	return nil, &NotFoundError{DocType: domain.DocTypeCourse, Name: "course of topic " + topicName}
}

// findOwningTopic returns the first Topic whose content collection holds
// the given content item.
func findOwningTopic(s ports.Store, kind, contentName string) (*domain.Topic, error) {
	rows, err := s.List(domain.DocTypeTopic, nil)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		t := domain.TopicFromFields(row.Name, row.Fields)
		for _, ref := range t.Contents {
			if ref.Kind == kind && ref.Name == contentName {
				return t, nil
			}
		}
	}
	return nil, &NotFoundError{DocType: domain.DocTypeTopic, Name: "topic of " + kind + " " + contentName}
}
