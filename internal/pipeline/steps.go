package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/genstandards/internal/config"
	"github.com/nao1215/genstandards/internal/extract"
	"github.com/nao1215/genstandards/internal/model"
	"github.com/nao1215/genstandards/internal/report"
	"github.com/nao1215/genstandards/internal/source"
)

// FetchStep obtains the index page, from the cache when present and from
// the network otherwise.
type FetchStep struct {
	provider *source.Provider
	logger   *slog.Logger
}

// FetchStepOption configures a FetchStep.
type FetchStepOption func(*FetchStep)

// WithFetchLogger sets a custom logger for the fetch step.
func WithFetchLogger(logger *slog.Logger) FetchStepOption {
	return func(s *FetchStep) {
		s.logger = logger
	}
}

// NewFetchStep creates a fetch step backed by the given provider.
func NewFetchStep(provider *source.Provider, opts ...FetchStepOption) *FetchStep {
	s := &FetchStep{
		provider: provider,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do stores the document text in run.Document.
func (s *FetchStep) Do(ctx context.Context, run *model.Run) error {
	text, err := s.provider.Document(ctx)
	if err != nil {
		return err
	}

	run.Document = text
	run.FromCache = !s.provider.Fetched()

	s.logger.Debug("index page ready",
		"from_cache", run.FromCache,
		"bytes", len(text),
	)
	return nil
}

// ExtractStep turns run.Document into run.Catalog.
type ExtractStep struct {
	extractor *extract.Extractor
	logger    *slog.Logger
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithExtractLogger sets a custom logger for the extract step.
func WithExtractLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		s.logger = logger
	}
}

// NewExtractStep creates an extract step using the given extractor.
func NewExtractStep(extractor *extract.Extractor, opts ...ExtractStepOption) *ExtractStep {
	s := &ExtractStep{
		extractor: extractor,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do parses the document. Any schema violation aborts the run.
func (s *ExtractStep) Do(_ context.Context, run *model.Run) error {
	if run.Document == "" {
		return ErrNoDocument
	}

	catalog, err := s.extractor.Catalog(strings.NewReader(run.Document))
	if err != nil {
		return err
	}
	run.Catalog = catalog

	s.logger.Info("entries extracted",
		"entries", catalog.Len(),
		"sections", len(catalog.Sections()),
	)
	return nil
}

// RenderStep renders both reports into run.Checklist and run.WorkingGroups.
type RenderStep struct {
	logger *slog.Logger
}

// RenderStepOption configures a RenderStep.
type RenderStepOption func(*RenderStep)

// WithRenderLogger sets a custom logger for the render step. The checklist
// writer logs its empty-section notices through it as well.
func WithRenderLogger(logger *slog.Logger) RenderStepOption {
	return func(s *RenderStep) {
		s.logger = logger
	}
}

// NewRenderStep creates a render step.
func NewRenderStep(opts ...RenderStepOption) *RenderStep {
	s := &RenderStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders the reports. Sections with nothing to list are recorded in
// run.EmptySections.
func (s *RenderStep) Do(_ context.Context, run *model.Run) error {
	if run.Catalog == nil {
		return ErrNoCatalog
	}

	var checklist strings.Builder
	cw := report.NewChecklistWriter(&checklist, report.WithLogger(s.logger))
	if _, err := cw.Write(run.Catalog); err != nil {
		return fmt.Errorf("failed to render checklist: %w", err)
	}

	var groups strings.Builder
	if _, err := report.NewWorkingGroupWriter(&groups).Write(run.Catalog); err != nil {
		return fmt.Errorf("failed to render working groups: %w", err)
	}

	run.Checklist = checklist.String()
	run.WorkingGroups = groups.String()
	run.EmptySections = append(run.EmptySections, cw.Skipped()...)

	return nil
}

// WriteStep writes the rendered reports to their output files.
type WriteStep struct {
	checklistPath    string
	workingGroupPath string
	logger           *slog.Logger
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithWriteLogger sets a custom logger for the write step.
func WithWriteLogger(logger *slog.Logger) WriteStepOption {
	return func(s *WriteStep) {
		s.logger = logger
	}
}

// NewWriteStep creates a write step for the given output paths.
func NewWriteStep(checklistPath, workingGroupPath string, opts ...WriteStepOption) *WriteStep {
	s := &WriteStep{
		checklistPath:    checklistPath,
		workingGroupPath: workingGroupPath,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do overwrites the checklist file, then the working group file.
func (s *WriteStep) Do(_ context.Context, run *model.Run) error {
	outputs := []struct {
		path    string
		content string
	}{
		{path: s.checklistPath, content: run.Checklist},
		{path: s.workingGroupPath, content: run.WorkingGroups},
	}

	for _, out := range outputs {
		if err := report.WriteFile(out.path, out.content); err != nil {
			return err
		}
		run.Written = append(run.Written, out.path)
		s.logger.Info("report written", "path", out.path, "bytes", len(out.content))
	}

	return nil
}

// DefaultPipeline creates the standard generation pipeline for cfg:
// fetch, extract, render and write. The pipeline logger is shared by
// every step.
func DefaultPipeline(cfg *config.Config, opts ...Option) *Pipeline {
	p := New(opts...)

	provider := source.NewProvider(
		source.WithSourceURL(cfg.SourceURL),
		source.WithCachePath(cfg.CachePath),
		source.WithUserAgent(cfg.UserAgent),
		source.WithTimeout(cfg.Timeout),
		source.WithLogger(p.logger),
	)

	p.AddSteps(
		NewFetchStep(provider, WithFetchLogger(p.logger)),
		NewExtractStep(extract.NewExtractor(extract.WithLogger(p.logger)), WithExtractLogger(p.logger)),
		NewRenderStep(WithRenderLogger(p.logger)),
		NewWriteStep(cfg.ChecklistPath, cfg.WorkingGroupPath, WithWriteLogger(p.logger)),
	)

	return p
}
