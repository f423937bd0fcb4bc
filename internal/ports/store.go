package ports

import "edusync/internal/domain"

// Store defines the document-store boundary the engine runs against. Every
// mutation is its own atomic store operation; consistency across the tree
// comes from idempotent re-application, not transactions.
type Store interface {
	// Exists reports whether a document exists without loading it.
	Exists(doctype, name string) (bool, error)

	// Get loads a document's fields. Returns application.ErrNotFound
	// (wrapped) when the document is missing.
	Get(doctype, name string) (domain.Fields, error)

	// SetField writes a single field directly, bypassing whole-document
	// save semantics. Used for back-link clearing during cascade delete.
	SetField(doctype, name, field string, value any) error

	// Create inserts a new document and returns its generated name. A
	// "name" entry in fields, when present, is used verbatim.
	Create(doctype string, fields domain.Fields) (string, error)

	// Save replaces the stored fields of an existing document.
	Save(doctype, name string, fields domain.Fields) error

	// Delete removes a document. Deleting a missing document is an error;
	// callers that tolerate prior deletion check Exists first.
	Delete(doctype, name string) error

	// List returns (name, fields) pairs of documents matching all filter
	// values exactly. A nil filter lists every document of the type.
	List(doctype string, filters map[string]any) ([]Listed, error)
}

// Listed is one List result.
type Listed struct {
	Name   string
	Fields domain.Fields
}

// ErrorSink records one entity's sync failure without aborting its
// siblings. Implementations must not fail the caller.
type ErrorSink interface {
	Record(title, detail string)
}
