package markdown

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/goliatone/go-blog/posts"
)

// Only level 2 and 3 headings appear in the table of contents; the level 1
// title is rendered separately and level 4+ subheadings are too granular
// for in-page navigation.
var tocHeadingRe = regexp.MustCompile(`^(#{2,3})\s+(.+?)\s*$`)

var (
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacesRe = regexp.MustCompile(`\s+`)
	slugDashesRe = regexp.MustCompile(`-+`)
)

// ExtractTOC returns one TocItem per level 2/3 heading line in body, in
// occurrence order. The list is flat: level 3 entries carry their level
// tag but are not nested under level 2 parents. Identically worded
// headings produce identical, colliding ids, matching the anchors the
// renderer emits.
func ExtractTOC(body []byte) []posts.TocItem {
	var items []posts.TocItem

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		m := tocHeadingRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		id := HeadingID(m[2])
		if id == "" {
			// Same fallback the renderer applies to punctuation-only headings.
			id = "heading"
		}
		items = append(items, posts.TocItem{
			ID:    id,
			Text:  m[2],
			Level: len(m[1]),
		})
	}
	return items
}

// HeadingID derives a URL-safe anchor id from heading text: lowercase,
// strip anything outside [a-z0-9 -], collapse whitespace runs to single
// hyphens, collapse hyphen runs, trim. Idempotent: applying it to an
// already-derived id returns the id unchanged.
func HeadingID(text string) string {
	id := strings.ToLower(text)
	id = nonSlugRe.ReplaceAllString(id, "")
	id = slugSpacesRe.ReplaceAllString(id, "-")
	id = slugDashesRe.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}
