package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goliatone/go-blog/posts"
)

// DefaultExtensions lists the accepted content file extensions. Lookup
// order matters: the primary extension wins when a slug exists under both.
var DefaultExtensions = []string{".md", ".mdx"}

// DirSource is the fs.FS-backed content source. The filesystem root is the
// content directory itself; slugs map to root-level files.
type DirSource struct {
	fsys       fs.FS
	extensions []string
}

// NewDirSource wraps a filesystem as a content source. When no extensions
// are supplied the defaults apply.
func NewDirSource(fsys fs.FS, extensions ...string) *DirSource {
	if len(extensions) == 0 {
		extensions = append([]string(nil), DefaultExtensions...)
	}
	return &DirSource{fsys: fsys, extensions: extensions}
}

// Read resolves slug to a file, trying each accepted extension in order.
// A slug present under no extension yields a *posts.NotFoundError.
func (s *DirSource) Read(ctx context.Context, slug string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(slug) == "" {
		return nil, posts.ErrSlugRequired
	}
	// Slugs become file paths, so malformed identifiers (path separators,
	// dot segments, uppercase) are rejected before any filesystem access.
	if !posts.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", posts.ErrSlugInvalid, slug)
	}

	for _, ext := range s.extensions {
		data, err := fs.ReadFile(s.fsys, slug+ext)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("content source: read %s%s: %w", slug, ext, err)
		}
	}
	return nil, &posts.NotFoundError{Resource: "post", Key: slug}
}

// Slugs enumerates content files at the source root, extensions stripped,
// in directory enumeration order. A slug present under several extensions
// is reported once.
func (s *DirSource) Slugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("content source: list: %w", err)
	}

	seen := map[string]struct{}{}
	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if !s.accepts(ext) {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ext)
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

func (s *DirSource) accepts(ext string) bool {
	for _, accepted := range s.extensions {
		if ext == accepted {
			return true
		}
	}
	return false
}
