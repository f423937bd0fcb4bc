// Package memory provides a map-backed document store for tests and
// ephemeral runs. Field bags round-trip through JSON on every read and
// write, giving callers the same value isolation and type shapes the
// sqlite store produces.
package memory

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"edusync/internal/application"
	"edusync/internal/domain"
	"edusync/internal/ports"
)

// Store implements ports.Store in memory.
type Store struct {
	mu   sync.Mutex
	docs map[string]map[string]domain.Fields // doctype → name → fields
	seq  int
}

var _ ports.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{docs: make(map[string]map[string]domain.Fields)}
}

func (s *Store) Exists(doctype, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[doctype][name]
	return ok, nil
}

func (s *Store) Get(doctype, name string) (domain.Fields, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.docs[doctype][name]
	if !ok {
		return nil, &application.NotFoundError{DocType: doctype, Name: name}
	}
	return copyFields(f), nil
}

func (s *Store) SetField(doctype, name, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.docs[doctype][name]
	if !ok {
		return &application.NotFoundError{DocType: doctype, Name: name}
	}
	f[field] = normalize(value)
	return nil
}

func (s *Store) Create(doctype string, fields domain.Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs[doctype] == nil {
		s.docs[doctype] = make(map[string]domain.Fields)
	}
	name := fields.Str("name")
	f := copyFields(fields)
	delete(f, "name")
	if name == "" {
		s.seq++
		name = fmt.Sprintf("%s-%04d", slug(doctype), s.seq)
	}
	if _, exists := s.docs[doctype][name]; exists {
		return "", fmt.Errorf("%s %s: already exists", doctype, name)
	}
	s.docs[doctype][name] = f
	return name, nil
}

func (s *Store) Save(doctype, name string, fields domain.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doctype][name]; !ok {
		return &application.NotFoundError{DocType: doctype, Name: name}
	}
	s.docs[doctype][name] = copyFields(fields)
	return nil
}

func (s *Store) Delete(doctype, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doctype][name]; !ok {
		return &application.NotFoundError{DocType: doctype, Name: name}
	}
	delete(s.docs[doctype], name)
	return nil
}

func (s *Store) List(doctype string, filters map[string]any) ([]ports.Listed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.docs[doctype]))
	for name := range s.docs[doctype] {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []ports.Listed
	for _, name := range names {
		f := s.docs[doctype][name]
		if matches(f, filters) {
			out = append(out, ports.Listed{Name: name, Fields: copyFields(f)})
		}
	}
	return out, nil
}

// matches applies exact-equality filters. A missing string field matches
// the empty string, mirroring how the sqlite store treats absent columns.
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

func copyFields(f domain.Fields) domain.Fields {
	raw, err := json.Marshal(f)
	if err != nil {
		return domain.Fields{}
	}
	var out domain.Fields
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.Fields{}
	}
	return out
}

func normalize(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func slug(doctype string) string {
	out := make([]rune, 0, len(doctype))
	for _, r := range doctype {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
