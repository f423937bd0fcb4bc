package markup

import "testing"

func TestToPlain(t *testing.T) {
	tests := []struct {
		name string
		rich string
		want string
	}{
		{
			name: "heading and paragraph",
			rich: "<h2>Forces</h2><p>Newton's laws.</p>",
			want: "## Forces\n\nNewton's laws.",
		},
		{
			name: "bold and italic",
			rich: "<p>A <strong>key</strong> <em>idea</em></p>",
			want: "A **key** _idea_",
		},
		{
			name: "list",
			rich: "<ul><li>one</li><li>two</li></ul>",
			want: "- one\n- two",
		},
		{
			name: "link",
			rich: `<p>See <a href="https://example.org">notes</a></p>`,
			want: "See [notes](https://example.org)",
		},
		{
			name: "unknown tags stripped",
			rich: `<div class="x"><p>body</p></div>`,
			want: "body",
		},
		{
			name: "entities decoded",
			rich: "<p>a &amp; b</p>",
			want: "a & b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPlain(tt.rich); got != tt.want {
				t.Errorf("ToPlain(%q) = %q, want %q", tt.rich, got, tt.want)
			}
		})
	}
}

func TestRoundTripIsStable(t *testing.T) {
	// plain → rich → plain must be the identity on canonical markup,
	// otherwise every reverse sync would look like a content change.
	bodies := []string{
		"## Forces\n\nNewton's laws.",
		"A **key** _idea_",
		"- one\n- two",
		"intro\n\n## Section\n\nbody with [link](https://example.org)",
	}

	for _, body := range bodies {
		if got := ToPlain(ToRich(body)); got != body {
			t.Errorf("round trip changed %q into %q", body, got)
		}
	}
}

func TestCanonicalEquatesFormats(t *testing.T) {
	rich := "<h2>Forces</h2><p>A <strong>key</strong> idea.</p>"
	plain := ToPlain(rich)

	if Canonical(rich) != Canonical(plain) {
		t.Errorf("canonical forms differ: %q vs %q", Canonical(rich), Canonical(plain))
	}

	if Canonical("<p>old</p>") == Canonical("<p>new</p>") {
		t.Error("distinct content must not canonicalize equal")
	}
}
