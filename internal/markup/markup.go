// Package markup converts between the rich-text body format of the Education
// side (an HTML subset) and the plain markup format of the Learning side.
// Both converters are pure; Canonical is the normalization used to decide
// whether two bodies meaningfully differ.
package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headingOpen    = regexp.MustCompile(`<h([1-6])[^>]*>`)
	headingClose   = regexp.MustCompile(`</h[1-6]>`)
	boldPattern    = regexp.MustCompile(`</?(?:strong|b)>`)
	italicPattern  = regexp.MustCompile(`</?(?:em|i)>`)
	anchorPattern  = regexp.MustCompile(`<a[^>]*href="([^"]*)"[^>]*>([^<]*)</a>`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	blankLines     = regexp.MustCompile(`\n{3,}`)
	trailingSpaces = regexp.MustCompile(`[ \t]+\n`)
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
)

// ToPlain converts a rich-text body to plain markup. Unknown tags are
// stripped rather than rejected; the Education editor is not under our
// control.
func ToPlain(rich string) string {
	s := rich

	s = headingOpen.ReplaceAllStringFunc(s, func(tag string) string {
		level := headingOpen.FindStringSubmatch(tag)[1]
		n := int(level[0] - '0')
		return "\n" + strings.Repeat("#", n) + " "
	})
	s = headingClose.ReplaceAllString(s, "\n")

	s = strings.ReplaceAll(s, "<p>", "\n")
	s = strings.ReplaceAll(s, "</p>", "\n")
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = strings.ReplaceAll(s, "<br/>", "\n")
	s = strings.ReplaceAll(s, "<br />", "\n")

	s = strings.ReplaceAll(s, "<ul>", "\n")
	s = strings.ReplaceAll(s, "</ul>", "\n")
	s = strings.ReplaceAll(s, "<li>", "- ")
	s = strings.ReplaceAll(s, "</li>", "\n")

	s = boldPattern.ReplaceAllString(s, "**")
	s = italicPattern.ReplaceAllString(s, "_")
	s = anchorPattern.ReplaceAllString(s, "[$2]($1)")

	s = tagPattern.ReplaceAllString(s, "")
	s = unescape(s)

	return tidy(s)
}

var (
	mdHeading = regexp.MustCompile(`(?m)^(#{1,6}) (.*)$`)
	mdBullet  = regexp.MustCompile(`(?m)^- (.*)$`)
	mdBold    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic  = regexp.MustCompile(`_([^_]+)_`)
	mdLink    = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
)

// ToRich converts plain markup back to the rich-text subset. The output is
// canonical: converting it to plain again reproduces the input exactly,
// which is what keeps a format round-trip from registering as a change.
// Adjacent list items stay glued together so they convert back to a single
// run of bullets.
func ToRich(plain string) string {
	var b strings.Builder
	prevItem := false
	for _, line := range strings.Split(tidy(plain), "\n") {
		if line == "" {
			continue
		}
		item := false
		var block string
		switch {
		case mdHeading.MatchString(line):
			m := mdHeading.FindStringSubmatch(line)
			block = fmt.Sprintf("<h%d>%s</h%d>", len(m[1]), inline(m[2]), len(m[1]))
		case mdBullet.MatchString(line):
			m := mdBullet.FindStringSubmatch(line)
			block = "<li>" + inline(m[1]) + "</li>"
			item = true
		default:
			block = "<p>" + inline(line) + "</p>"
		}
		if b.Len() > 0 && !(item && prevItem) {
			b.WriteString("\n")
		}
		b.WriteString(block)
		prevItem = item
	}
	return b.String()
}

func inline(s string) string {
	s = escape(s)
	s = mdBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = mdItalic.ReplaceAllString(s, "<em>$1</em>")
	s = mdLink.ReplaceAllString(s, `<a href="$2">$1</a>`)
	return s
}

// Canonical reduces a body in either format to comparison form: tags
// stripped, entities decoded, whitespace collapsed. Two bodies with equal
// canonical forms carry the same content.
func Canonical(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = unescape(s)
	s = strings.NewReplacer("**", "", "_", "", "#", "", "- ", "").Replace(s)
	s = spaceRuns.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func tidy(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = trailingSpaces.ReplaceAllString(s, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

func unescape(s string) string {
	return strings.NewReplacer("&lt;", "<", "&gt;", ">", "&nbsp;", " ", "&amp;", "&").Replace(s)
}
