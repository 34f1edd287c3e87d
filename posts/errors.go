package posts

import (
	"errors"
	"fmt"
)

var (
	ErrSlugRequired       = errors.New("posts: slug is required")
	ErrSlugInvalid        = errors.New("posts: slug contains invalid characters")
	ErrCategoryUnknown    = errors.New("posts: category is not in the known set")
	ErrFrontmatterInvalid = errors.New("posts: frontmatter validation failed")
	ErrSourceRequired     = errors.New("posts: content source is required")
)

// NotFoundError is returned when a slug has no content file under either
// accepted extension. It is distinct from a successful empty result so the
// presentation layer can render a 404.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// FrontmatterError reports a malformed or incomplete metadata block,
// identifying the offending document.
type FrontmatterError struct {
	Slug string
	Err  error
}

func (e *FrontmatterError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("%s: %v", ErrFrontmatterInvalid.Error(), e.Err)
	}
	return fmt.Sprintf("%s: post %q: %v", ErrFrontmatterInvalid.Error(), e.Slug, e.Err)
}

func (e *FrontmatterError) Unwrap() error {
	return e.Err
}
