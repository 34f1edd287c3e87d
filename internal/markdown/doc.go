// Package markdown implements the text-processing half of the blog
// pipeline: frontmatter parsing and validation, GFM rendering, excerpt
// extraction, table-of-contents derivation, and reading-time estimation.
// Everything here is a pure function of its input; file discovery and
// listing semantics live in internal/repository.
package markdown
