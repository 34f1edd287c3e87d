package markdown

import (
	"regexp"
	"strings"
)

// DefaultExcerptLength is the preview length used by listing pages.
const DefaultExcerptLength = 220

var (
	fencedCodeRe  = regexp.MustCompile("(?s)```.*?```")
	headingLineRe = regexp.MustCompile(`(?m)^#{1,6}\s+.*$`)
	linkRe        = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	inlineMarkRe  = regexp.MustCompile("[*_~`]")
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Excerpt strips markdown syntax from body and truncates the result to max
// runes, appending an ellipsis when truncation happens. Fenced code blocks
// are removed outright, so a body that is only code yields an empty
// excerpt. Truncation is on rune boundaries so multi-byte text is never
// split mid-character.
func Excerpt(body []byte, max int) string {
	if max <= 0 {
		max = DefaultExcerptLength
	}

	text := fencedCodeRe.ReplaceAllString(string(body), "")
	text = headingLineRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = inlineMarkRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}
