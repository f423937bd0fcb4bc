package domain

import (
	"reflect"
	"testing"
)

func TestFieldsBool_MissingIsFalse(t *testing.T) {
	f := Fields{"synced_from_education": true}

	if !f.Bool("synced_from_education") {
		t.Error("expected true for present flag")
	}
	if f.Bool("disable_sync") {
		t.Error("expected false for missing flag")
	}
	if (Fields{"published": float64(1)}).Bool("published") != true {
		t.Error("expected numeric 1 from a JSON round-trip to read as true")
	}
}

func TestFieldsStrs_JSONRoundTrip(t *testing.T) {
	// The store decodes JSON arrays as []any
	f := Fields{"courses": []any{"course-a", "course-b"}}
	got := f.Strs("courses")
	want := []string{"course-a", "course-b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strs = %v, want %v", got, want)
	}
	if f.Strs("missing") != nil {
		t.Error("expected nil for missing list")
	}
}

func TestContentRefsRoundTrip(t *testing.T) {
	refs := []ContentRef{
		{Kind: ContentKindArticle, Name: "intro"},
		{Kind: ContentKindVideo, Name: "welcome"},
	}
	tpc := &Topic{Name: "topic-1", Title: "Basics", Contents: refs}

	decoded := TopicFromFields("topic-1", tpc.Fields())
	if !reflect.DeepEqual(decoded.Contents, refs) {
		t.Errorf("decoded contents = %v, want %v", decoded.Contents, refs)
	}
}

func TestAppendUnique(t *testing.T) {
	tests := []struct {
		name string
		list []string
		add  string
		want []string
	}{
		{"append new", []string{"a", "b"}, "c", []string{"a", "b", "c"}},
		{"skip duplicate", []string{"a", "b"}, "a", []string{"a", "b"}},
		{"empty list", nil, "a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendUnique(tt.list, tt.add)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AppendUnique = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSyncGuardNotSerialized(t *testing.T) {
	p := &Program{Name: "p1", Title: "Physics"}
	p.MarkSyncing()

	decoded := ProgramFromFields("p1", p.Fields())
	if decoded.SyncInFlight() {
		t.Error("guard must not survive a codec round-trip")
	}
}
