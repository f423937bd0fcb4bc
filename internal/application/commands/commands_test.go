package commands_test

import (
	"context"
	"strings"
	"testing"

	"edusync/internal/adapters/memory"
	"edusync/internal/application"
	"edusync/internal/application/commands"
	"edusync/internal/domain"
)

type discardSink struct{}

func (discardSink) Record(title, detail string) {}

func newTestEngine(t *testing.T) *application.Engine {
	t.Helper()
	store := memory.NewStore()
	if _, err := store.Create(domain.DocTypeLMSSettings, domain.Fields{
		"name":    domain.LMSSettingsName,
		"enabled": true,
	}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	return application.NewEngine(store, discardSink{})
}

func TestSyncCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		docType string
		docName string
		wantErr bool
	}{
		{"valid program", domain.DocTypeProgram, "physics-101", false},
		{"valid article", domain.DocTypeArticle, "kinematics", false},
		{"empty name", domain.DocTypeProgram, "", true},
		{"whitespace name", domain.DocTypeCourse, "   ", true},
		{"learning doctype rejected", domain.DocTypeLesson, "some-lesson", true},
		{"unknown doctype", "Quiz", "some-quiz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := commands.NewSyncCommand(nil, tt.docType, tt.docName)
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		docType string
		docName string
		wantErr bool
	}{
		{"valid topic", domain.DocTypeTopic, "forces", false},
		{"empty name", domain.DocTypeTopic, "", true},
		{"enrollment rejected", domain.DocTypeProgramEnrollment, "enr-0001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := commands.NewDeleteCommand(nil, tt.docType, tt.docName)
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTreeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		side    string
		wantErr bool
	}{
		{"education", commands.SideEducation, false},
		{"learning", commands.SideLearning, false},
		{"empty", "", true},
		{"typo", "eduction", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := commands.NewTreeCommand(nil, tt.side)
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnrollCommand_Validate(t *testing.T) {
	if err := commands.NewEnrollCommand(nil, "enr-0001").Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := commands.NewEnrollCommand(nil, "").Validate(); err == nil {
		t.Error("Validate() expected error for empty enrollment")
	}
}

func TestSyncCommand_Execute(t *testing.T) {
	engine := newTestEngine(t)
	store := engine.Store()

	if _, err := store.Create(domain.DocTypeProgram, domain.Fields{
		"name":  "physics-101",
		"title": "Physics 101",
	}); err != nil {
		t.Fatalf("seed program: %v", err)
	}

	result, err := commands.NewSyncCommand(engine, domain.DocTypeProgram, "physics-101").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.TargetID == "" {
		t.Error("Execute() returned empty target ID")
	}
	if !strings.Contains(result.Message, "physics-101") {
		t.Errorf("Execute() message = %q, want it to name the program", result.Message)
	}

	f, err := store.Get(domain.DocTypeProgram, "physics-101")
	if err != nil {
		t.Fatalf("reload program: %v", err)
	}
	if f.Str("lms_program") != result.TargetID {
		t.Errorf("program link = %q, want %q", f.Str("lms_program"), result.TargetID)
	}
}

func TestStatusCommand_Execute(t *testing.T) {
	engine := newTestEngine(t)

	result, err := commands.NewStatusCommand(engine).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Enabled {
		t.Error("Execute() Enabled = false, want true")
	}
	if !strings.Contains(result.Message, "sync: enabled") {
		t.Errorf("Execute() message = %q, want sync state line", result.Message)
	}
}
