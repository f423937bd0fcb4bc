// Package fixture loads an Education tree from a YAML file into the
// document store. It exists for seeding demo and test environments; the
// documents it creates go through the same lifecycle hooks a real edit
// would fire.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"edusync/internal/application"
	"edusync/internal/domain"
)

type fixtureFile struct {
	Programs    []programNode    `yaml:"programs"`
	Enrollments []enrollmentNode `yaml:"enrollments"`
}

type programNode struct {
	Name        string       `yaml:"name"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	DisableSync bool         `yaml:"disable_sync"`
	Courses     []courseNode `yaml:"courses"`
}

type courseNode struct {
	Name        string      `yaml:"name"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	DisableSync bool        `yaml:"disable_sync"`
	Topics      []topicNode `yaml:"topics"`
}

type topicNode struct {
	Name        string        `yaml:"name"`
	Title       string        `yaml:"title"`
	DisableSync bool          `yaml:"disable_sync"`
	Contents    []contentNode `yaml:"contents"`
}

type contentNode struct {
	Kind        string `yaml:"kind"` // Article or Video
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Content     string `yaml:"content"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	DisableSync bool   `yaml:"disable_sync"`
}

type enrollmentNode struct {
	Name        string `yaml:"name"`
	Student     string `yaml:"student"`
	StudentName string `yaml:"student_name"`
	Program     string `yaml:"program"`
	Submitted   bool   `yaml:"submitted"`
}

// Result reports what an import created
type Result struct {
	Programs    int
	Courses     int
	Topics      int
	Contents    int
	Enrollments int
}

// Importer loads fixture files through the sync engine
type Importer struct {
	engine *application.Engine
	sync   bool
}

// NewImporter creates an Importer. When sync is true, every imported
// program fires the same change hook a saved document would.
func NewImporter(engine *application.Engine, sync bool) *Importer {
	return &Importer{engine: engine, sync: sync}
}

// Import loads one YAML fixture file
func (im *Importer) Import(path string) (*Result, error) {
	if err := application.ValidateRequired("file", path); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}

	result := &Result{}
	store := im.engine.Store()

	for _, pn := range file.Programs {
		var courseNames []string
		for _, cn := range pn.Courses {
			var refs []domain.ContentRef
			var topicNames []string
			for _, tn := range cn.Topics {
				refs = refs[:0]
				for _, xn := range tn.Contents {
					ref, err := im.createContent(xn)
					if err != nil {
						return nil, err
					}
					refs = append(refs, ref)
					result.Contents++
				}
				topic := &domain.Topic{
					Name:        tn.Name,
					Title:       tn.Title,
					Contents:    append([]domain.ContentRef(nil), refs...),
					DisableSync: tn.DisableSync,
				}
				name, err := store.Create(domain.DocTypeTopic, withName(topic.Fields(), tn.Name))
				if err != nil {
					return nil, fmt.Errorf("failed to create topic %s: %w", tn.Title, err)
				}
				topicNames = append(topicNames, name)
				result.Topics++
			}
			course := &domain.Course{
				Name:        cn.Name,
				Title:       cn.Title,
				Description: cn.Description,
				Topics:      topicNames,
				DisableSync: cn.DisableSync,
			}
			name, err := store.Create(domain.DocTypeCourse, withName(course.Fields(), cn.Name))
			if err != nil {
				return nil, fmt.Errorf("failed to create course %s: %w", cn.Title, err)
			}
			courseNames = append(courseNames, name)
			result.Courses++
		}
		program := &domain.Program{
			Name:        pn.Name,
			Title:       pn.Title,
			Description: pn.Description,
			Courses:     courseNames,
			DisableSync: pn.DisableSync,
		}
		name, err := store.Create(domain.DocTypeProgram, withName(program.Fields(), pn.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to create program %s: %w", pn.Title, err)
		}
		result.Programs++

		if im.sync {
			program.Name = name
			im.engine.ProgramChanged(program)
		}
	}

	for _, en := range file.Enrollments {
		enrollment := &domain.ProgramEnrollment{
			Name:        en.Name,
			Student:     en.Student,
			StudentName: en.StudentName,
			Program:     en.Program,
			Submitted:   en.Submitted,
		}
		name, err := store.Create(domain.DocTypeProgramEnrollment, withName(enrollment.Fields(), en.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to create enrollment for %s: %w", en.Student, err)
		}
		result.Enrollments++

		if im.sync && en.Submitted {
			enrollment.Name = name
			im.engine.EnrollmentSubmitted(enrollment)
		}
	}

	return result, nil
}

func (im *Importer) createContent(xn contentNode) (domain.ContentRef, error) {
	store := im.engine.Store()
	switch xn.Kind {
	case domain.ContentKindArticle, "":
		a := &domain.Article{
			Name:        xn.Name,
			Title:       xn.Title,
			Content:     xn.Content,
			DisableSync: xn.DisableSync,
		}
		name, err := store.Create(domain.DocTypeArticle, withName(a.Fields(), xn.Name))
		if err != nil {
			return domain.ContentRef{}, fmt.Errorf("failed to create article %s: %w", xn.Title, err)
		}
		return domain.ContentRef{Kind: domain.ContentKindArticle, Name: name}, nil
	case domain.ContentKindVideo:
		v := &domain.Video{
			Name:        xn.Name,
			Title:       xn.Title,
			URL:         xn.URL,
			Description: xn.Description,
			DisableSync: xn.DisableSync,
		}
		name, err := store.Create(domain.DocTypeVideo, withName(v.Fields(), xn.Name))
		if err != nil {
			return domain.ContentRef{}, fmt.Errorf("failed to create video %s: %w", xn.Title, err)
		}
		return domain.ContentRef{Kind: domain.ContentKindVideo, Name: name}, nil
	default:
		return domain.ContentRef{}, &application.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("expected %s or %s, got: %s", domain.ContentKindArticle, domain.ContentKindVideo, xn.Kind),
		}
	}
}

func withName(f domain.Fields, name string) domain.Fields {
	if name != "" {
		f["name"] = name
	}
	return f
}
