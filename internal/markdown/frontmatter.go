package markdown

import (
	"bytes"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blog/posts"
)

// ParseFrontmatter extracts metadata and the Markdown body from the raw
// document bytes. The metadata block is validated eagerly: a missing or
// malformed required field is a load-time defect surfaced as a
// *posts.FrontmatterError naming the offending document, never a zero
// value that propagates silently.
func ParseFrontmatter(slug string, source []byte) (posts.Frontmatter, []byte, error) {
	var env frontmatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return posts.Frontmatter{}, nil, &posts.FrontmatterError{Slug: slug, Err: err}
	}

	if err := env.Validate(); err != nil {
		wrapped := goerrors.Wrap(err, goerrors.CategoryValidation, "frontmatter validation failed")
		return posts.Frontmatter{}, nil, &posts.FrontmatterError{Slug: slug, Err: wrapped}
	}

	date, err := parseDate(env.Date)
	if err != nil {
		return posts.Frontmatter{}, nil, &posts.FrontmatterError{Slug: slug, Err: err}
	}

	return posts.Frontmatter{
		Title:            env.Title,
		Description:      env.Description,
		Date:             date,
		Category:         posts.Category(env.Category),
		Tags:             append([]string(nil), env.Tags...),
		Featured:         env.Featured != nil && *env.Featured,
		CoverImage:       env.CoverImage,
		AffiliateSection: env.AffiliateSection,
	}, body, nil
}

// frontmatterEnvelope mirrors the YAML key names used by the content files.
// Featured is a pointer so an absent key can be told apart from an explicit
// false.
type frontmatterEnvelope struct {
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Date             string   `yaml:"date"`
	Category         string   `yaml:"category"`
	Tags             []string `yaml:"tags"`
	Featured         *bool    `yaml:"featured"`
	CoverImage       string   `yaml:"coverImage"`
	AffiliateSection string   `yaml:"affiliateSection"`
}

// Validate enforces the required frontmatter keys before any derived field
// is computed.
func (env frontmatterEnvelope) Validate() error {
	return validation.ValidateStruct(&env,
		validation.Field(&env.Title, validation.Required),
		validation.Field(&env.Description, validation.Required),
		validation.Field(&env.Date, validation.Required),
		validation.Field(&env.Category, validation.Required, validation.By(func(value any) error {
			if !posts.IsKnownCategory(posts.Category(value.(string))) {
				return posts.ErrCategoryUnknown
			}
			return nil
		})),
		validation.Field(&env.Tags, validation.Required),
		validation.Field(&env.Featured, validation.NotNil),
	)
}

// parseDate accepts the ISO calendar-date form used by the content files
// and falls back to RFC3339 for timestamped entries.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}
