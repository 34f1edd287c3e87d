package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrContentDirRequired   = runtimeconfig.ErrContentDirRequired
	ErrExtensionInvalid     = runtimeconfig.ErrExtensionInvalid
	ErrExcerptLengthInvalid = runtimeconfig.ErrExcerptLengthInvalid
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	ContentConfig  = runtimeconfig.ContentConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the settings a typical host starts from.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
