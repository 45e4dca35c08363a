package report

import (
	"io"

	"github.com/nao1215/genstandards/internal/model"
	"github.com/nao1215/markdown"
)

// WorkingGroupWriter renders the deduplicated list of working groups that
// deliver the documents of a catalog, ordered by name.
type WorkingGroupWriter struct {
	baseWriter
}

// NewWorkingGroupWriter creates a WorkingGroupWriter that outputs to the given writer.
func NewWorkingGroupWriter(output io.Writer) *WorkingGroupWriter {
	return &WorkingGroupWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders one bullet per distinct working group.
func (w *WorkingGroupWriter) Write(catalog *model.Catalog) (int, error) {
	md := markdown.NewMarkdown(w.output)

	groups := catalog.WorkingGroups()
	items := make([]string, len(groups))
	for i, g := range groups {
		items[i] = g.Markdown()
	}
	md.BulletList(items...)

	return len(md.String()), md.Build()
}
