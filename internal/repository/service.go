// Package repository implements the read-only post query surface over an
// injected content source. No state is kept between calls: every operation
// re-reads and re-parses the underlying files, which is acceptable at blog
// scale (tens to low hundreds of documents).
package repository

import (
	"context"
	"sort"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

// Service implements posts.Service.
type Service struct {
	source        interfaces.ContentSource
	parser        interfaces.MarkdownParser
	logger        interfaces.Logger
	excerptLength int
}

var _ posts.Service = (*Service)(nil)

// Option configures the service at construction time.
type Option func(*Service)

// WithLogger attaches a logger; the default is a no-op.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithExcerptLength overrides the preview length used for summaries.
func WithExcerptLength(length int) Option {
	return func(s *Service) {
		if length > 0 {
			s.excerptLength = length
		}
	}
}

// New constructs the repository service. When parser is nil a goldmark
// parser with the blog defaults is used.
func New(source interfaces.ContentSource, parser interfaces.MarkdownParser, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, posts.ErrSourceRequired
	}
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}

	s := &Service{
		source:        source,
		parser:        parser,
		logger:        logging.NoOp(),
		excerptLength: markdown.DefaultExcerptLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Slugs enumerates every content file known to the source.
func (s *Service) Slugs(ctx context.Context) ([]string, error) {
	return s.source.Slugs(ctx)
}

// List loads every post summary, sorted by publication date descending.
// The sort is stable, so same-day posts keep enumeration order.
func (s *Service) List(ctx context.Context) ([]*posts.Summary, error) {
	slugs, err := s.source.Slugs(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*posts.Summary, 0, len(slugs))
	for _, slug := range slugs {
		summary, err := s.loadSummary(ctx, slug)
		if err != nil {
			s.logger.Error("post summary load failed", "slug", slug, "error", err)
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date.After(summaries[j].Date)
	})

	s.logger.Debug("posts listed", "count", len(summaries))
	return summaries, nil
}

// Featured filters List down to featured posts, keeping date order. A
// non-positive limit returns every featured post.
func (s *Service) Featured(ctx context.Context, limit int) ([]*posts.Summary, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]*posts.Summary, 0, len(all))
	for _, summary := range all {
		if !summary.Featured {
			continue
		}
		featured = append(featured, summary)
		if limit > 0 && len(featured) == limit {
			break
		}
	}
	return featured, nil
}

// ListByCategory filters List down to an exact category match. An unknown
// category is not an error; it simply matches nothing.
func (s *Service) ListByCategory(ctx context.Context, category posts.Category) ([]*posts.Summary, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*posts.Summary, 0, len(all))
	for _, summary := range all {
		if summary.Category == category {
			matched = append(matched, summary)
		}
	}
	return matched, nil
}

// Get loads one post in full: frontmatter, derived summary fields, table
// of contents, and rendered HTML.
func (s *Service) Get(ctx context.Context, slug string) (*posts.Post, error) {
	raw, err := s.source.Read(ctx, slug)
	if err != nil {
		return nil, err
	}

	frontmatter, body, err := markdown.ParseFrontmatter(slug, raw)
	if err != nil {
		return nil, err
	}

	html, err := s.parser.Parse(body)
	if err != nil {
		return nil, err
	}

	readingTime, _ := markdown.ReadingTime(body)

	post := &posts.Post{
		Summary: posts.Summary{
			Slug:        slug,
			Frontmatter: frontmatter,
			ReadingTime: readingTime,
			Excerpt:     markdown.Excerpt(body, s.excerptLength),
		},
		HTML:            string(html),
		TableOfContents: markdown.ExtractTOC(body),
	}

	s.logger.Debug("post loaded", "slug", slug, "toc_entries", len(post.TableOfContents))
	return post, nil
}

// Related returns posts sharing category, excluding slug, capped at limit,
// in the date-descending order ListByCategory yields.
func (s *Service) Related(ctx context.Context, slug string, category posts.Category, limit int) ([]*posts.Summary, error) {
	matched, err := s.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	related := make([]*posts.Summary, 0, len(matched))
	for _, summary := range matched {
		if summary.Slug == slug {
			continue
		}
		related = append(related, summary)
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related, nil
}

// Categories returns each category present across all posts with its
// count, ordered by count descending. Ties break alphabetically so the
// output is deterministic.
func (s *Service) Categories(ctx context.Context) ([]posts.CategoryCount, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[posts.Category]int{}
	for _, summary := range all {
		counts[summary.Category]++
	}

	result := make([]posts.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, posts.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// loadSummary assembles the listing projection for one slug.
func (s *Service) loadSummary(ctx context.Context, slug string) (*posts.Summary, error) {
	raw, err := s.source.Read(ctx, slug)
	if err != nil {
		return nil, err
	}

	frontmatter, body, err := markdown.ParseFrontmatter(slug, raw)
	if err != nil {
		return nil, err
	}

	readingTime, _ := markdown.ReadingTime(body)

	return &posts.Summary{
		Slug:        slug,
		Frontmatter: frontmatter,
		ReadingTime: readingTime,
		Excerpt:     markdown.Excerpt(body, s.excerptLength),
	}, nil
}
