package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrEmptySourceURL is returned when no index page URL is configured.
	ErrEmptySourceURL = errors.New("invalid source URL: must not be empty")

	// ErrInvalidSourceURL is returned when the source URL is not an absolute http(s) URL.
	ErrInvalidSourceURL = errors.New("invalid source URL: must be an absolute http or https URL")

	// ErrEmptyCachePath is returned when the cache path is empty.
	ErrEmptyCachePath = errors.New("invalid cache path: must not be empty")

	// ErrEmptyOutputPath is returned when a report output path is empty.
	ErrEmptyOutputPath = errors.New("invalid output path: must not be empty")

	// ErrSameOutputPath is returned when both reports would be written to
	// the same file, or a report would overwrite the cache.
	ErrSameOutputPath = errors.New("invalid output path: checklist, working groups and cache must be different files")

	// ErrInvalidTimeout is returned when the timeout is negative.
	// Use 0 for no timeout.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")
)
