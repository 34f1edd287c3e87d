// Package blog assembles the content pipeline: a filesystem content
// source, frontmatter parsing, GFM rendering, and the read-only post query
// service consumed by page-rendering layers.
package blog

import (
	"os"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/repository"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

// Service exports the post query contract for consumers of the blog package.
type Service = posts.Service

// Exported projections and metadata types.
type (
	Summary       = posts.Summary
	Post          = posts.Post
	Frontmatter   = posts.Frontmatter
	TocItem       = posts.TocItem
	Category      = posts.Category
	CategoryCount = posts.CategoryCount
	NotFoundError = posts.NotFoundError
)

// ContentSource exports the pluggable file-access contract.
type ContentSource = interfaces.ContentSource

// MarkdownParser exports the rendering contract.
type MarkdownParser = interfaces.MarkdownParser

// Module is the top level runtime facade.
type Module struct {
	posts  posts.Service
	logger interfaces.Logger
}

// Option overrides a dependency the module would otherwise build from
// configuration.
type Option func(*moduleDeps)

type moduleDeps struct {
	source interfaces.ContentSource
	parser interfaces.MarkdownParser
	logger interfaces.LoggerProvider
}

// WithSource injects a custom content source (e.g. an embedded filesystem
// or test fixtures) instead of the configured directory.
func WithSource(source interfaces.ContentSource) Option {
	return func(d *moduleDeps) { d.source = source }
}

// WithParser injects a custom markdown parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(d *moduleDeps) { d.parser = parser }
}

// WithLoggerProvider injects a logger provider, replacing the one built
// from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) { d.logger = provider }
}

// New validates cfg and wires the post service.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := moduleDeps{}
	for _, opt := range opts {
		opt(&deps)
	}

	logger := logging.NoOp()
	if deps.logger != nil {
		logger = deps.logger.GetLogger("blog")
	} else if cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		logger = provider.GetLogger("blog")
	}

	source := deps.source
	if source == nil {
		source = repository.NewDirSource(os.DirFS(cfg.Content.Dir), cfg.Content.Extensions...)
	}

	parser := deps.parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.ParserExtensions,
			HardWraps:  cfg.Markdown.HardWraps,
			Sanitize:   cfg.Markdown.Sanitize,
		})
	}

	service, err := repository.New(source, parser,
		repository.WithLogger(logger),
		repository.WithExcerptLength(cfg.Markdown.ExcerptLength),
	)
	if err != nil {
		return nil, err
	}

	return &Module{posts: service, logger: logger}, nil
}

// Posts exposes the read-only query service.
func (m *Module) Posts() posts.Service {
	return m.posts
}
