package application

import (
	"fmt"
	"strings"

	"edusync/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "docType" -> "document type")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"docType":    "document type",
		"name":       "document name",
		"program":    "program",
		"member":     "member",
		"enrollment": "enrollment ID",
		"file":       "fixture file",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// educationDocTypes are the document types a sync command accepts.
var educationDocTypes = []string{
	domain.DocTypeProgram,
	domain.DocTypeCourse,
	domain.DocTypeTopic,
	domain.DocTypeArticle,
	domain.DocTypeVideo,
}

// ValidateEducationDocType checks that docType names a syncable Education
// document type. Returns a ValidationError otherwise.
func ValidateEducationDocType(fieldName, docType string) error {
	for _, dt := range educationDocTypes {
		if docType == dt {
			return nil
		}
	}
	return &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("expected one of %s, got: %s", strings.Join(educationDocTypes, ", "), docType),
	}
}
