package pipeline

import "errors"

// Errors returned when a step runs before the step it depends on.
var (
	// ErrNoDocument is returned when there is no document to extract from.
	ErrNoDocument = errors.New("no index document in run")

	// ErrNoCatalog is returned when there is no catalog to render.
	ErrNoCatalog = errors.New("no catalog in run")
)
