package model

import "time"

// Run holds the state of one generation run as it moves through the
// pipeline. Each step reads what earlier steps produced and fills in its
// own fields.
type Run struct {
	// SourceURL is the index page the document was (or would be) fetched from.
	SourceURL string

	// StartedAt is when the run was created.
	StartedAt time.Time

	// Document is the raw markup of the index page.
	Document string

	// FromCache reports whether Document was read from the local cache.
	FromCache bool

	// Catalog holds the extracted entries grouped by section.
	Catalog *Catalog

	// Checklist is the rendered checklist report.
	Checklist string

	// WorkingGroups is the rendered working-group report.
	WorkingGroups string

	// EmptySections lists sections that had nothing to render.
	EmptySections []string

	// Written lists the report files written, in order.
	Written []string

	// PerformedSteps lists the names of the steps that ran.
	PerformedSteps []string

	// Error is the error that stopped the run, if any.
	Error error
}

// NewRun creates a Run for the given source URL.
func NewRun(sourceURL string) *Run {
	return &Run{
		SourceURL:      sourceURL,
		StartedAt:      time.Now(),
		EmptySections:  make([]string, 0),
		Written:        make([]string, 0),
		PerformedSteps: make([]string, 0),
	}
}
