package application

import (
	"testing"

	"edusync/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "physics-101",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "name",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired(%q, %q) error = %v, wantErr %v", tt.fieldName, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEducationDocType(t *testing.T) {
	tests := []struct {
		name    string
		docType string
		wantErr bool
	}{
		{"program", domain.DocTypeProgram, false},
		{"article", domain.DocTypeArticle, false},
		{"learning-side type rejected", domain.DocTypeLesson, true},
		{"unknown type rejected", "Invoice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEducationDocType("docType", tt.docType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEducationDocType(%q) error = %v, wantErr %v", tt.docType, err, tt.wantErr)
			}
		})
	}
}
