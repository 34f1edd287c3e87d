package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser using the goldmark
// engine. Instances are stateless and safe to share across requests.
type GoldmarkParser struct {
	defaults interfaces.ParseOptions
}

// NewGoldmarkParser constructs a parser whose defaults match the blog's
// rendering contract: GFM extensions on, auto heading IDs, raw HTML passed
// through untouched.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{defaults: defaults}
}

// Parse renders Markdown into HTML using the parser defaults. Goldmark is
// permissive: malformed markdown yields best-effort HTML, not an error.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaults)
}

// ParseWithOptions renders Markdown into HTML using the supplied overrides.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(headingIDs{}))
	if err := newEngine(opts).Convert(markdown, &buf, parser.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// headingIDs routes goldmark's auto heading ids through the same derivation
// the table of contents uses, so in-page anchors and TOC links always agree.
// Identically worded headings keep identical ids.
type headingIDs struct{}

var _ parser.IDs = headingIDs{}

func (headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	id := HeadingID(string(value))
	if id == "" {
		id = "heading"
	}
	return []byte(id)
}

func (headingIDs) Put([]byte) {}

func newEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	// Raw HTML embedded in the markdown is emitted as-is unless the caller
	// asks for sanitization; the blog trusts its own content directory.
	if !opts.Sanitize && !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	options := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}
	if len(rendererOptions) > 0 {
		options = append(options, goldmark.WithRendererOptions(rendererOptions...))
	}

	return goldmark.New(options...)
}

// extensionRegistry maps configuration names to goldmark extenders.
// Unrecognised names are skipped rather than rejected.
var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		// GFM bundles tables, strikethrough, autolinks and task lists.
		return []goldmark.Extender{extension.GFM}
	}

	seen := map[string]struct{}{}
	var extenders []goldmark.Extender
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
		}
	}
	return extenders
}
