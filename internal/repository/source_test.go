package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-blog/posts"
)

func TestDirSourcePrimaryExtensionWins(t *testing.T) {
	source := NewDirSource(os.DirFS("testdata/dup"))

	data, err := source.Read(context.Background(), "override")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(string(data), "Primary Extension Wins") {
		t.Fatalf("expected the .md variant, got %q", string(data))
	}
}

func TestDirSourceDeduplicatesSlugs(t *testing.T) {
	source := NewDirSource(os.DirFS("testdata/dup"))

	slugs, err := source.Slugs(context.Background())
	if err != nil {
		t.Fatalf("Slugs: %v", err)
	}
	if len(slugs) != 1 || slugs[0] != "override" {
		t.Fatalf("expected single deduplicated slug, got %v", slugs)
	}
}

func TestDirSourceReadMissingSlug(t *testing.T) {
	source := NewDirSource(os.DirFS("testdata/posts"))

	_, err := source.Read(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !posts.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestDirSourceEmptySlug(t *testing.T) {
	source := NewDirSource(os.DirFS("testdata/posts"))

	if _, err := source.Read(context.Background(), "  "); err != posts.ErrSlugRequired {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}

func TestDirSourceRejectsMalformedSlug(t *testing.T) {
	source := NewDirSource(os.DirFS("testdata/posts"))

	for _, slug := range []string{"../escape", "nested/path", "Upper Case"} {
		_, err := source.Read(context.Background(), slug)
		if !errors.Is(err, posts.ErrSlugInvalid) {
			t.Fatalf("slug %q: expected ErrSlugInvalid, got %v", slug, err)
		}
	}
}

func TestDirSourceHonoursCancellation(t *testing.T) {
	source := NewDirSource(os.DirFS("testdata/posts"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.Read(ctx, "java-streams"); err == nil {
		t.Fatal("expected context error on Read")
	}
	if _, err := source.Slugs(ctx); err == nil {
		t.Fatal("expected context error on Slugs")
	}
}

func TestDirSourceCustomExtensions(t *testing.T) {
	source := NewDirSource(os.DirFS("testdata/dup"), ".mdx")

	data, err := source.Read(context.Background(), "override")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(string(data), "Fallback Extension") {
		t.Fatalf("expected the .mdx variant, got %q", string(data))
	}
}
