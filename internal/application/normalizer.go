package application

import (
	"strings"

	"edusync/internal/markup"
)

// HasMeaningfulChange compares a current body against a proposed one with
// formatting canonicalized away, so a pure format round-trip (rich → plain
// → rich) never registers as a change. Used by reverse-direction handlers
// before writing back to the Education side.
func HasMeaningfulChange(current, proposed string) bool {
	return markup.Canonical(current) != markup.Canonical(proposed)
}

// titleChanged compares titles with surrounding whitespace ignored.
// Titles are not markup; characters the body canonicalizer strips are
// significant here.
func titleChanged(current, proposed string) bool {
	return strings.TrimSpace(current) != strings.TrimSpace(proposed)
}
