package report

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/nao1215/genstandards/internal/model"
	"github.com/nao1215/markdown"
)

// Indentation of entry lines and their detail lines.
const (
	entryIndent  = "    "
	detailIndent = "        "
)

// priorityTiers are tried in order after the statements of a section.
// Only the first tier with at least one entry is rendered.
var priorityTiers = []model.Status{
	model.StatusStandard,
	model.StatusCandidateStandard,
	model.StatusDraftStandard,
	model.StatusNote,
}

// ChecklistWriter renders a markdown checklist with one list item per
// section and one checkbox per selected document.
type ChecklistWriter struct {
	baseWriter

	logger *slog.Logger

	// skipped holds the sections that had nothing to render in the last Write.
	skipped []string
}

// ChecklistOption configures a ChecklistWriter.
type ChecklistOption func(*ChecklistWriter)

// WithLogger sets the logger that receives empty-section notices.
func WithLogger(logger *slog.Logger) ChecklistOption {
	return func(w *ChecklistWriter) {
		w.logger = logger
	}
}

// NewChecklistWriter creates a ChecklistWriter that outputs to the given writer.
func NewChecklistWriter(output io.Writer, opts ...ChecklistOption) *ChecklistWriter {
	w := &ChecklistWriter{
		baseWriter: newBaseWriter(output),
		skipped:    make([]string, 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

// Write renders the checklist.
// Sections come in lexicographic order. Within a section the statements
// are always listed, followed by the first non-empty tier of
// priorityTiers. A section with nothing to list is left out entirely and
// reported through the logger and Skipped.
func (w *ChecklistWriter) Write(catalog *model.Catalog) (int, error) {
	md := markdown.NewMarkdown(w.output)
	w.skipped = w.skipped[:0]

	for _, section := range catalog.Sections() {
		selected := selectEntries(sortByTitle(catalog.Entries(section)))
		if len(selected) == 0 {
			w.logger.Warn("no entries to print in section", "section", section)
			w.skipped = append(w.skipped, section)
			continue
		}

		md.PlainTextf("- %s", section)
		for _, e := range selected {
			w.writeEntry(md, e)
		}
	}

	if len(md.String()) > 0 {
		// Terminate the last line.
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// Skipped returns the sections left out by the last Write.
func (w *ChecklistWriter) Skipped() []string {
	return slices.Clone(w.skipped)
}

// writeEntry writes the checkbox line of an entry and its detail lines.
func (w *ChecklistWriter) writeEntry(md *markdown.Markdown, e model.Entry) {
	line := entryIndent + "- [ ] " + e.Title().Markdown()
	if !e.Status().IsQualified() {
		line += " " + markdown.Code(e.Status().String())
	}
	md.PlainText(line)

	md.PlainText(detailIndent + "- Deliverers: " + joinLinks(e.Deliverers()))

	if tags := e.Tags(); len(tags) > 0 {
		md.PlainText(detailIndent + "- Tags: " + strings.Join(tags, ", "))
	}

	if translations := e.Translations(); len(translations) > 0 {
		md.PlainText(detailIndent + "- Translations: " + joinLinks(translations))
	}
}

// selectEntries picks the entries of a section that go into the checklist.
func selectEntries(entries []model.Entry) []model.Entry {
	selected := filterByStatus(entries, model.StatusStatement)
	for _, status := range priorityTiers {
		if tier := filterByStatus(entries, status); len(tier) > 0 {
			return append(selected, tier...)
		}
	}
	return selected
}

// filterByStatus returns the entries with the given status, in order.
func filterByStatus(entries []model.Entry, status model.Status) []model.Entry {
	matched := make([]model.Entry, 0)
	for _, e := range entries {
		if e.Status() == status {
			matched = append(matched, e)
		}
	}
	return matched
}

// sortByTitle sorts entries by title text, keeping the order of equal titles.
func sortByTitle(entries []model.Entry) []model.Entry {
	slices.SortStableFunc(entries, func(a, b model.Entry) int {
		return strings.Compare(a.Title().Text, b.Title().Text)
	})
	return entries
}

// joinLinks renders links as a comma-separated list.
func joinLinks(links []model.Link) string {
	rendered := make([]string, len(links))
	for i, l := range links {
		rendered[i] = l.Markdown()
	}
	return strings.Join(rendered, ", ")
}
