package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrSyncDisabled  = errors.New("sync disabled")
	ErrRuleViolation = errors.New("business rule violation")
)

// NotFoundError reports a missing document where one was required
type NotFoundError struct {
	DocType string
	Name    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found", e.DocType, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RuleViolationError blocks an operation for a reason the user must see,
// e.g. deleting a program that still has enrolled members. Hook boundaries
// re-raise it instead of recording it.
type RuleViolationError struct {
	DocType string
	Name    string
	Reason  string
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("cannot delete %s %s: %s", e.DocType, e.Name, e.Reason)
}

func (e *RuleViolationError) Is(target error) bool {
	return target == ErrRuleViolation
}

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SyncFailure is one entity's recorded failure in a batch report
type SyncFailure struct {
	DocType string
	Name    string
	Message string
}

func (f SyncFailure) String() string {
	return fmt.Sprintf("%s %s: %s", f.DocType, f.Name, f.Message)
}
