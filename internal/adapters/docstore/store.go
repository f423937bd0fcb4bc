package docstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"edusync/internal/application"
	"edusync/internal/domain"
	"edusync/internal/ports"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.Store on SQLite. Each document is one row holding
// its field bag as JSON; the engine never queries inside the bag except
// through List filters, which are applied after decoding.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements ports.Store
var _ ports.Store = (*Store)(nil)

// NewStore creates a new SQLite document store
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store at the given database path
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS documents (
			doctype TEXT NOT NULL,
			name TEXT NOT NULL,
			fields TEXT NOT NULL,
			PRIMARY KEY (doctype, name)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_documents_doctype ON documents(doctype);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Exists(doctype, name string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM documents WHERE doctype = ? AND name = ?`, doctype, name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Get(doctype, name string) (domain.Fields, error) {
	var raw string
	err := s.db.QueryRow(`SELECT fields FROM documents WHERE doctype = ? AND name = ?`, doctype, name).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, &application.NotFoundError{DocType: doctype, Name: name}
	}
	if err != nil {
		return nil, err
	}
	return decodeFields(doctype, name, raw)
}

func (s *Store) SetField(doctype, name, field string, value any) error {
	f, err := s.Get(doctype, name)
	if err != nil {
		return err
	}
	f[field] = value
	return s.write(doctype, name, f)
}

func (s *Store) Create(doctype string, fields domain.Fields) (string, error) {
	name := fields.Str("name")
	f := make(domain.Fields, len(fields))
	for k, v := range fields {
		f[k] = v
	}
	delete(f, "name")
	if name == "" {
		name = fmt.Sprintf("%s-%s", slug(doctype), uuid.NewString()[:8])
	}

	raw, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s %s: %w", doctype, name, err)
	}
	_, err = s.db.Exec(`INSERT INTO documents (doctype, name, fields) VALUES (?, ?, ?)`, doctype, name, string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to create %s %s: %w", doctype, name, err)
	}
	return name, nil
}

func (s *Store) Save(doctype, name string, fields domain.Fields) error {
	exists, err := s.Exists(doctype, name)
	if err != nil {
		return err
	}
	if !exists {
		return &application.NotFoundError{DocType: doctype, Name: name}
	}
	return s.write(doctype, name, fields)
}

func (s *Store) Delete(doctype, name string) error {
	result, err := s.db.Exec(`DELETE FROM documents WHERE doctype = ? AND name = ?`, doctype, name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &application.NotFoundError{DocType: doctype, Name: name}
	}
	return nil
}

func (s *Store) List(doctype string, filters map[string]any) ([]ports.Listed, error) {
	rows, err := s.db.Query(`SELECT name, fields FROM documents WHERE doctype = ?`, doctype)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.Listed
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, err
		}
		f, err := decodeFields(doctype, name, raw)
		if err != nil {
			return nil, err
		}
		if matches(f, filters) {
			out = append(out, ports.Listed{Name: name, Fields: f})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) write(doctype, name string, fields domain.Fields) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode %s %s: %w", doctype, name, err)
	}
	_, err = s.db.Exec(`UPDATE documents SET fields = ? WHERE doctype = ? AND name = ?`, string(raw), doctype, name)
	if err != nil {
		return fmt.Errorf("failed to save %s %s: %w", doctype, name, err)
	}
	return nil
}

func decodeFields(doctype, name, raw string) (domain.Fields, error) {
	var f domain.Fields
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", doctype, name, err)
	}
	if f == nil {
		f = domain.Fields{}
	}
	return f, nil
}

// matches applies exact-equality filters. A missing string field matches
// the empty string so unset link fields behave like cleared ones.
func matches(f domain.Fields, filters map[string]any) bool {
	for k, want := range filters {
		have, ok := f[k]
		if !ok {
			if s, isStr := want.(string); isStr && s == "" {
				continue
			}
			return false
		}
		if fmt.Sprint(have) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func slug(doctype string) string {
	return strings.ReplaceAll(strings.ToLower(doctype), " ", "-")
}
