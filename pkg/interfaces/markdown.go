package interfaces

// MarkdownParser converts raw Markdown bytes into HTML. Implementations are
// expected to be stateless so a single instance can be shared across
// requests without locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour. Option names stay
// readable so they can be unmarshalled from configuration files and CLI
// flags without translation.
type ParseOptions struct {
	// Extensions names the goldmark extensions to enable ("gfm", "table",
	// "strikethrough", "linkify", "tasklist", ...). Empty enables the GFM
	// defaults.
	Extensions []string
	// Sanitize disables raw HTML passthrough. The blog trusts its own
	// content source, so this is off by default.
	Sanitize  bool
	HardWraps bool
	// SafeMode is an alias for Sanitize kept for configuration
	// compatibility; either flag suppresses raw HTML.
	SafeMode bool
}
