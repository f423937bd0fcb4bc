package domain

// Fields is the generic field bag a document store deals in. Entity types
// encode to and decode from Fields at the store boundary; the engine itself
// works on typed values.
type Fields map[string]any

// Str returns the string value of a field, or "" when absent or non-string.
func (f Fields) Str(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// Bool returns the boolean value of a field. A missing field is false:
// flags like synced_from_education are only ever written as true by the
// sync engine, so absence means "not sync-owned".
func (f Fields) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case float64: // JSON round-trip through the store
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

// Strs returns an ordered string list field, or nil when absent.
func (f Fields) Strs(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ContentRefs returns a typed content reference list field, or nil.
func (f Fields) ContentRefs(key string) []ContentRef {
	switch v := f[key].(type) {
	case []ContentRef:
		return append([]ContentRef(nil), v...)
	case []any:
		out := make([]ContentRef, 0, len(v))
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				out = append(out, ContentRef{
					Kind: Fields(m).Str("kind"),
					Name: Fields(m).Str("name"),
				})
			}
		}
		return out
	default:
		return nil
	}
}

func refFields(refs []ContentRef) []any {
	out := make([]any, len(refs))
	for i, r := range refs {
		out[i] = map[string]any{"kind": r.Kind, "name": r.Name}
	}
	return out
}

// AppendUnique appends name to list unless already present. Existing order
// is never disturbed; new entries go to the end.
func AppendUnique(list []string, name string) []string {
	for _, e := range list {
		if e == name {
			return list
		}
	}
	return append(list, name)
}

// Remove returns list without name, preserving the order of the rest.
func Remove(list []string, name string) []string {
	out := list[:0]
	for _, e := range list {
		if e != name {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether list holds name.
func Contains(list []string, name string) bool {
	for _, e := range list {
		if e == name {
			return true
		}
	}
	return false
}
