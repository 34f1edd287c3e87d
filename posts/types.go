package posts

import (
	"context"
	"time"
)

// Category identifies one of the fixed editorial categories. The set is
// closed; frontmatter referencing anything else fails validation at load
// time.
type Category string

const (
	CategorySystemDesign    Category = "System Design"
	CategoryJava            Category = "Java"
	CategoryDatabases       Category = "Databases"
	CategoryAIML            Category = "AI/ML"
	CategoryAWS             Category = "AWS"
	CategoryMessaging       Category = "Messaging"
	CategoryDataEngineering Category = "Data Engineering"
)

// KnownCategories returns the closed category set in display order.
func KnownCategories() []Category {
	return []Category{
		CategorySystemDesign,
		CategoryJava,
		CategoryDatabases,
		CategoryAIML,
		CategoryAWS,
		CategoryMessaging,
		CategoryDataEngineering,
	}
}

// IsKnownCategory reports whether the value belongs to the closed set.
func IsKnownCategory(value Category) bool {
	for _, category := range KnownCategories() {
		if category == value {
			return true
		}
	}
	return false
}

// Frontmatter models the metadata block at the top of a content file.
type Frontmatter struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Category         Category  `json:"category"`
	Tags             []string  `json:"tags"`
	Featured         bool      `json:"featured"`
	CoverImage       string    `json:"cover_image,omitempty"`
	AffiliateSection string    `json:"affiliate_section,omitempty"`
}

// Summary is the lightweight projection used on listing pages. It is
// computed fresh on every call; nothing is cached between requests.
type Summary struct {
	Slug string `json:"slug"`
	Frontmatter
	ReadingTime string `json:"reading_time"`
	Excerpt     string `json:"excerpt"`
}

// DisplayDate formats the publication date for templates.
func (s *Summary) DisplayDate() string {
	return s.Date.Format("January 2, 2006")
}

// Post is the full detail projection for a single document: the summary
// fields plus rendered HTML and the flat table of contents.
type Post struct {
	Summary
	HTML            string    `json:"html"`
	TableOfContents []TocItem `json:"table_of_contents"`
}

// TocItem pairs a heading's display text with its derived anchor id. The
// sequence mirrors heading order in the body; level 3 entries are not
// nested under level 2 parents.
type TocItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// CategoryCount reports how many posts carry a category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// Service exposes the read-only query surface consumed by the page layer.
// Every operation is a pure function of current content-directory state;
// repeated calls re-read and re-parse files.
type Service interface {
	// Slugs enumerates every content file, extension stripped, in source
	// enumeration order.
	Slugs(ctx context.Context) ([]string, error)
	// List returns all post summaries sorted by publication date
	// descending.
	List(ctx context.Context) ([]*Summary, error)
	// Featured filters List down to featured posts, capped at limit.
	// A non-positive limit returns every featured post.
	Featured(ctx context.Context, limit int) ([]*Summary, error)
	// ListByCategory filters List down to an exact category match.
	ListByCategory(ctx context.Context, category Category) ([]*Summary, error)
	// Get loads a single post with rendered HTML and table of contents.
	// A missing slug yields a *NotFoundError.
	Get(ctx context.Context, slug string) (*Post, error)
	// Related returns posts sharing category, excluding slug, capped at
	// limit, in the date-descending order ListByCategory yields.
	Related(ctx context.Context, slug string, category Category, limit int) ([]*Summary, error)
	// Categories returns each category present with its post count,
	// ordered by count descending.
	Categories(ctx context.Context) ([]CategoryCount, error)
}
