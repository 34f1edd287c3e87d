package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestGoldmarkParserRendersEmphasis(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("Some **bold** text."))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<strong>bold</strong>") {
		t.Fatalf("expected <strong> wrapping, got %q", string(html))
	}
}

func TestGoldmarkParserGFMTable(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	html, err := parser.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<table>") {
		t.Fatalf("expected GFM table rendering, got %q", string(html))
	}
}

func TestGoldmarkParserGFMStrikethrough(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("~~obsolete~~"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<del>obsolete</del>") {
		t.Fatalf("expected strikethrough rendering, got %q", string(html))
	}
}

func TestGoldmarkParserPassesRawHTMLThrough(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("before\n\n<div class=\"callout\">hi</div>\n\nafter"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), `<div class="callout">`) {
		t.Fatalf("expected raw HTML passthrough, got %q", string(html))
	}
}

func TestGoldmarkParserSanitizeSuppressesRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Sanitize: true})

	html, err := parser.Parse([]byte("<div>hi</div>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(string(html), "<div>") {
		t.Fatalf("expected raw HTML to be suppressed, got %q", string(html))
	}
}

func TestGoldmarkParserAutoHeadingIDs(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("## Heading One\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), `id="heading-one"`) {
		t.Fatalf("expected auto heading id, got %q", string(html))
	}
}

func TestGoldmarkParserHeadingAnchorsMatchDerivedIDs(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	headings := []string{
		"C++ & Go: A Comparison",
		"Spaced   Out",
		"What's New in Java 21?",
		"Hyphen - Heavy -- Title",
	}
	for _, heading := range headings {
		html, err := parser.Parse([]byte("## " + heading + "\n"))
		if err != nil {
			t.Fatalf("Parse(%q): %v", heading, err)
		}
		want := `id="` + HeadingID(heading) + `"`
		if !strings.Contains(string(html), want) {
			t.Fatalf("heading %q: rendered anchor diverges from derived id, want %s in %q", heading, want, string(html))
		}
	}
}

func TestGoldmarkParserDuplicateHeadingsKeepSameID(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("## Setup\n\ntext\n\n## Setup\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Count(string(html), `id="setup"`) != 2 {
		t.Fatalf("identically worded headings must share an id, got %q", string(html))
	}
}

func TestGoldmarkParserMalformedMarkdownStillRenders(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("[broken](unclosed *emphasis ~~"))
	if err != nil {
		t.Fatalf("conversion must be permissive, got error: %v", err)
	}
	if len(html) == 0 {
		t.Fatal("expected best-effort HTML output")
	}
}

func TestGoldmarkParserExtensionOverrides(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	// Only tables enabled: strikethrough stays literal.
	html, err := parser.ParseWithOptions([]byte("~~x~~"), interfaces.ParseOptions{Extensions: []string{"table"}})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(html), "<del>") {
		t.Fatalf("strikethrough should be disabled, got %q", string(html))
	}

	html, err = parser.ParseWithOptions([]byte("~~x~~"), interfaces.ParseOptions{Extensions: []string{"strikethrough"}})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(html), "<del>") {
		t.Fatalf("strikethrough should be enabled, got %q", string(html))
	}
}

func TestGoldmarkParserHardWraps(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps, got %q", string(html))
	}
}
