package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = "  "

	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateRejectsBareExtensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Extensions = []string{"md"}

	if err := cfg.Validate(); !errors.Is(err, ErrExtensionInvalid) {
		t.Fatalf("expected ErrExtensionInvalid, got %v", err)
	}
}

func TestValidateRejectsNegativeExcerptLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markdown.ExcerptLength = -1

	if err := cfg.Validate(); !errors.Is(err, ErrExcerptLengthInvalid) {
		t.Fatalf("expected ErrExcerptLengthInvalid, got %v", err)
	}
}

func TestValidateLoggingLevelAndFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	// Disabled logging skips level/format checks entirely.
	cfg = DefaultConfig()
	cfg.Logging.Enabled = false
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled logging must not validate level: %v", err)
	}
}
