package interfaces

import "context"

// ContentSource resolves post slugs to raw document bytes. The repository
// is agnostic to the underlying I/O model; implementations may be backed by
// a directory on disk, an embedded filesystem, or test fixtures.
type ContentSource interface {
	// Read returns the raw bytes for the document identified by slug.
	// A missing document must be reported with a posts.NotFoundError so
	// callers can distinguish 404s from I/O failures.
	Read(ctx context.Context, slug string) ([]byte, error)
	// Slugs enumerates every document the source knows about, in source
	// enumeration order. No ordering guarantee is implied.
	Slugs(ctx context.Context) ([]string, error)
}
