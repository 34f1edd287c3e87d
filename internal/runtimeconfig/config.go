// Package runtimeconfig holds the module configuration surface. Fields use
// simple types so host applications can populate them from any
// configuration system.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrContentDirRequired   = errors.New("blog config: content directory is required")
	ErrExtensionInvalid     = errors.New("blog config: content extensions must start with a dot")
	ErrExcerptLengthInvalid = errors.New("blog config: excerpt length must be zero or positive")
	ErrLoggingLevelInvalid  = errors.New("blog config: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")
)

// Config aggregates the settings for the blog module.
type Config struct {
	Content  ContentConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
}

// ContentConfig locates the content files. Dir is injected explicitly so
// tests can point the repository at fixture directories without touching
// process-wide state.
type ContentConfig struct {
	// Dir is the directory holding the post files.
	Dir string
	// Extensions lists accepted file extensions in lookup order. Defaults
	// to .md then .mdx.
	Extensions []string
}

// MarkdownConfig tunes rendering and derived-field computation.
type MarkdownConfig struct {
	// ParserExtensions names goldmark extensions to enable. Empty means
	// the GFM bundle.
	ParserExtensions []string
	HardWraps        bool
	Sanitize         bool
	// ExcerptLength is the preview length in runes; zero means the
	// default (220).
	ExcerptLength int
}

// LoggingConfig selects the logger backend behaviour.
type LoggingConfig struct {
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the settings a typical host starts from.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:        "content/blog",
			Extensions: []string{".md", ".mdx"},
		},
		Markdown: MarkdownConfig{},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "json",
		},
	}
}

// Validate checks cross-field consistency before the module is built.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	for _, ext := range cfg.Content.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %s", ErrExtensionInvalid, ext)
		}
	}
	if cfg.Markdown.ExcerptLength < 0 {
		return ErrExcerptLengthInvalid
	}
	if cfg.Logging.Enabled {
		if level := strings.ToLower(strings.TrimSpace(cfg.Logging.Level)); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
		}
		if format := strings.ToLower(strings.TrimSpace(cfg.Logging.Format)); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
		}
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch format {
	case "json", "console", "pretty":
		return true
	}
	return false
}
