package application

import (
	"edusync/internal/domain"
)

// EnrollmentReport summarizes a resync of one member's course enrollments.
type EnrollmentReport struct {
	Added   int
	Removed int
}

// SyncEnrollment adds the enrolled student to the linked LMS Program and
// enrolls them in each linked, published course. Called when a Program
// Enrollment is submitted.
func (e *Engine) SyncEnrollment(en *domain.ProgramEnrollment) error {
	if !e.gate.Enabled() {
		return ErrSyncDisabled
	}
	if !en.Submitted {
		return &ValidationError{Field: "submitted", Message: "enrollment must be submitted before syncing"}
	}
	lp, err := e.linkedLMSProgram(en.Program)
	if err != nil {
		return err
	}

	if !domain.Contains(lp.Members, en.Student) {
		f, err := e.store.Get(domain.DocTypeLMSProgram, lp.Name)
		if err != nil {
			return err
		}
		f["members"] = domain.AppendUnique(f.Strs("members"), en.Student)
		if err := e.store.Save(domain.DocTypeLMSProgram, lp.Name, f); err != nil {
			return err
		}
	}

	for _, courseID := range lp.ProgramCourses {
		lc, err := loadLMSCourse(e.store, courseID)
		if err != nil {
			return err
		}
		if !lc.Published {
			continue
		}
		if _, err := e.ensureEnrollment(en.Student, courseID); err != nil {
			return err
		}
	}
	return nil
}

// ResyncEnrollmentToLms diffs the member's current course enrollments
// against the program's published linked courses, adds what is missing,
// removes what no longer belongs, and reports the counts.
func (e *Engine) ResyncEnrollmentToLms(enrollmentName string) (*EnrollmentReport, error) {
	if !e.gate.Enabled() {
		return nil, ErrSyncDisabled
	}
	en, err := loadProgramEnrollment(e.store, enrollmentName)
	if err != nil {
		return nil, err
	}
	lp, err := e.linkedLMSProgram(en.Program)
	if err != nil {
		return nil, err
	}

	var desired []string
	for _, courseID := range lp.ProgramCourses {
		lc, err := loadLMSCourse(e.store, courseID)
		if err != nil {
			return nil, err
		}
		if lc.Published {
			desired = append(desired, courseID)
		}
	}

	rows, err := e.store.List(domain.DocTypeLMSEnrollment, map[string]any{"member": en.Student})
	if err != nil {
		return nil, err
	}
	report := &EnrollmentReport{}

	// Remove enrollments in this program's courses that are no longer
	// desired; enrollments outside the program are not ours to touch.
	var current []string
	for _, row := range rows {
		courseID := row.Fields.Str("lms_course")
		if !domain.Contains(lp.ProgramCourses, courseID) {
			continue
		}
		if !domain.Contains(desired, courseID) {
			if err := e.store.Delete(domain.DocTypeLMSEnrollment, row.Name); err != nil {
				return nil, err
			}
			report.Removed++
			continue
		}
		current = append(current, courseID)
	}

	for _, courseID := range desired {
		if domain.Contains(current, courseID) {
			continue
		}
		created, err := e.ensureEnrollment(en.Student, courseID)
		if err != nil {
			return nil, err
		}
		if created {
			report.Added++
		}
	}
	return report, nil
}

// ensureEnrollment creates the member/course enrollment unless it already
// exists. Reports whether a document was created.
func (e *Engine) ensureEnrollment(member, courseID string) (bool, error) {
	rows, err := e.store.List(domain.DocTypeLMSEnrollment, map[string]any{
		"member":     member,
		"lms_course": courseID,
	})
	if err != nil {
		return false, err
	}
	if len(rows) > 0 {
		return false, nil
	}
	en := &domain.LMSEnrollment{Member: member, LMSCourse: courseID}
	_, err = e.store.Create(domain.DocTypeLMSEnrollment, en.Fields())
	return err == nil, err
}

func (e *Engine) linkedLMSProgram(programName string) (*domain.LMSProgram, error) {
	p, err := loadProgram(e.store, programName)
	if err != nil {
		return nil, err
	}
	if p.LMSProgram == "" {
		return nil, &NotFoundError{DocType: domain.DocTypeLMSProgram, Name: "(program " + p.Name + " not linked)"}
	}
	return loadLMSProgram(e.store, p.LMSProgram)
}
