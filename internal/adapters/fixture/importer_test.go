package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"edusync/internal/adapters/fixture"
	"edusync/internal/adapters/memory"
	"edusync/internal/application"
	"edusync/internal/domain"
)

type discardSink struct{}

func (discardSink) Record(title, detail string) {}

const sampleFixture = `
programs:
  - name: physics-101
    title: Physics 101
    description: "<p>Intro physics</p>"
    courses:
      - name: mechanics
        title: Mechanics
        topics:
          - name: forces
            title: Forces
            contents:
              - kind: Article
                name: newton-laws
                title: Newton's Laws
                content: "<h2>Laws</h2><p>Three of them.</p>"
              - kind: Video
                name: forces-intro
                title: Forces Intro
                url: https://videos.example/forces
enrollments:
  - name: enr-jane
    student: jane@example.com
    student_name: Jane
    program: physics-101
    submitted: true
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestImport_CreatesTree(t *testing.T) {
	store := memory.NewStore()
	engine := application.NewEngine(store, discardSink{})
	importer := fixture.NewImporter(engine, false)

	result, err := importer.Import(writeFixture(t, sampleFixture))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Programs != 1 || result.Courses != 1 || result.Topics != 1 || result.Contents != 2 || result.Enrollments != 1 {
		t.Errorf("Import() result = %+v, want 1/1/1/2/1", result)
	}

	f, err := store.Get(domain.DocTypeProgram, "physics-101")
	if err != nil {
		t.Fatalf("program missing after import: %v", err)
	}
	if got := f.Strs("courses"); len(got) != 1 || got[0] != "mechanics" {
		t.Errorf("program courses = %v, want [mechanics]", got)
	}

	topic, err := store.Get(domain.DocTypeTopic, "forces")
	if err != nil {
		t.Fatalf("topic missing after import: %v", err)
	}
	refs := topic.ContentRefs("contents")
	if len(refs) != 2 || refs[0].Kind != domain.ContentKindArticle || refs[1].Kind != domain.ContentKindVideo {
		t.Errorf("topic contents = %v, want article then video", refs)
	}
}

func TestImport_SyncFiresHooks(t *testing.T) {
	store := memory.NewStore()
	if _, err := store.Create(domain.DocTypeLMSSettings, domain.Fields{
		"name":    domain.LMSSettingsName,
		"enabled": true,
	}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	engine := application.NewEngine(store, discardSink{})
	importer := fixture.NewImporter(engine, true)

	if _, err := importer.Import(writeFixture(t, sampleFixture)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	f, err := store.Get(domain.DocTypeProgram, "physics-101")
	if err != nil {
		t.Fatalf("program missing: %v", err)
	}
	if f.Str("lms_program") == "" {
		t.Error("imported program not linked, want sync to have run")
	}

	enrollments, err := store.List(domain.DocTypeLMSEnrollment, nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// Mechanics was never published on the learning side, so the member is
	// added to the LMS Program but gets no course enrollment yet.
	if len(enrollments) != 0 {
		t.Errorf("LMS enrollments = %d, want 0 for unpublished courses", len(enrollments))
	}
}

func TestImport_UnknownContentKind(t *testing.T) {
	store := memory.NewStore()
	engine := application.NewEngine(store, discardSink{})
	importer := fixture.NewImporter(engine, false)

	bad := `
programs:
  - title: Broken
    courses:
      - title: Broken Course
        topics:
          - title: Broken Topic
            contents:
              - kind: Quiz
                title: Not Supported
`
	if _, err := importer.Import(writeFixture(t, bad)); err == nil {
		t.Error("Import() succeeded with unknown content kind, want error")
	}
}
