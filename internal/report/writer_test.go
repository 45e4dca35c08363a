package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/genstandards/internal/model"
)

var (
	cssWG     = model.NewLink("CSS WG", "https://www.w3.org/groups/wg/css/")
	webappsWG = model.NewLink("WebApps WG", "https://www.w3.org/groups/wg/webapps/")
)

func newEntry(t *testing.T, section, title string, status model.Status) model.Entry {
	t.Helper()

	e, err := model.NewEntry(section, model.NewLink(title, "/TR/"+title+"/"), status, nil, []model.WorkingGroup{cssWG}, nil)
	if err != nil {
		t.Fatalf("NewEntry() unexpected error: %v", err)
	}
	return e
}

// renderChecklist renders the checklist and returns output, skipped sections and log output.
func renderChecklist(t *testing.T, entries ...model.Entry) (string, []string, string) {
	t.Helper()

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	w := NewChecklistWriter(&out, WithLogger(logger))

	n, err := w.Write(model.NewCatalog(entries))
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if n != out.Len() {
		t.Errorf("expected %d bytes reported, got %d", out.Len(), n)
	}
	return out.String(), w.Skipped(), logs.String()
}

// TestChecklistWriter tests section selection rules.
func TestChecklistWriter(t *testing.T) {
	t.Parallel()

	t.Run("qualified standards suppress candidates but not statements", func(t *testing.T) {
		t.Parallel()

		got, _, _ := renderChecklist(t,
			newEntry(t, "CSS", "Color", model.StatusCandidateStandard),
			newEntry(t, "CSS", "Backgrounds", model.StatusStandard),
			newEntry(t, "CSS", "Process", model.StatusStatement),
			newEntry(t, "CSS", "Values", model.StatusStandard),
		)

		if strings.Contains(got, "Color") {
			t.Errorf("expected candidate standard to be suppressed:\n%s", got)
		}
		for _, title := range []string{"Backgrounds", "Values", "Process"} {
			if !strings.Contains(got, "["+title+"]") {
				t.Errorf("expected %s in checklist:\n%s", title, got)
			}
		}
		if strings.Index(got, "Process") > strings.Index(got, "Backgrounds") {
			t.Errorf("expected statements before the tier:\n%s", got)
		}
	})

	t.Run("notes only section lists its notes", func(t *testing.T) {
		t.Parallel()

		got, skipped, _ := renderChecklist(t,
			newEntry(t, "Notes", "Beta", model.StatusNote),
			newEntry(t, "Notes", "Alpha", model.StatusNote),
		)

		want := strings.Join([]string{
			"- Notes",
			"    - [ ] [[Alpha](/TR/Alpha/)] `note`",
			"        - Deliverers: [[CSS WG](https://www.w3.org/groups/wg/css/)]",
			"    - [ ] [[Beta](/TR/Beta/)] `note`",
			"        - Deliverers: [[CSS WG](https://www.w3.org/groups/wg/css/)]",
			"",
		}, "\n")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("checklist mismatch (-want +got):\n%s", diff)
		}
		if len(skipped) != 0 {
			t.Errorf("expected no skipped sections, got %v", skipped)
		}
	})

	t.Run("tiers are tried in priority order", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			statuses []model.Status
			want     model.Status
		}{
			{name: "candidate over draft", statuses: []model.Status{model.StatusDraftStandard, model.StatusCandidateStandard, model.StatusNote}, want: model.StatusCandidateStandard},
			{name: "draft over note", statuses: []model.Status{model.StatusNote, model.StatusDraftStandard}, want: model.StatusDraftStandard},
			{name: "standard over everything", statuses: []model.Status{model.StatusNote, model.StatusDraftStandard, model.StatusCandidateStandard, model.StatusStandard}, want: model.StatusStandard},
		}

		for _, tt := range tests {
			entries := make([]model.Entry, 0, len(tt.statuses))
			for i, s := range tt.statuses {
				entries = append(entries, newEntry(t, "S", fmt.Sprintf("Doc%d", i), s))
			}

			got := selectEntries(entries)
			if len(got) != 1 || got[0].Status() != tt.want {
				t.Errorf("%s: expected one %v entry, got %v", tt.name, tt.want, got)
			}
		}
	})

	t.Run("section without renderable entries is skipped with a notice", func(t *testing.T) {
		t.Parallel()

		got, skipped, logs := renderChecklist(t,
			newEntry(t, "Drafts", "Sketch", model.StatusDraftNote),
			newEntry(t, "Drafts", "Registry", model.StatusDraftRegistry),
			newEntry(t, "Kept", "Doc", model.StatusNote),
		)

		if strings.Contains(got, "Drafts") {
			t.Errorf("expected no lines for skipped section:\n%s", got)
		}
		if !strings.Contains(got, "- Kept") {
			t.Errorf("expected other sections to be rendered:\n%s", got)
		}
		if diff := cmp.Diff([]string{"Drafts"}, skipped); diff != "" {
			t.Errorf("skipped mismatch (-want +got):\n%s", diff)
		}
		if !strings.Contains(logs, "no entries to print in section") || !strings.Contains(logs, "section=Drafts") {
			t.Errorf("expected notice in log output, got %q", logs)
		}
	})

	t.Run("statements alone are rendered", func(t *testing.T) {
		t.Parallel()

		got, skipped, _ := renderChecklist(t,
			newEntry(t, "Process", "Patent Policy", model.StatusStatement),
			newEntry(t, "Process", "Draft", model.StatusDraftNote),
		)

		if !strings.Contains(got, "[[Patent Policy](/TR/Patent Policy/)] `statement`") {
			t.Errorf("expected statement with annotation:\n%s", got)
		}
		if strings.Contains(got, "Draft]") {
			t.Errorf("expected draft note to be left out:\n%s", got)
		}
		if len(skipped) != 0 {
			t.Errorf("expected no skipped sections, got %v", skipped)
		}
	})

	t.Run("sections are sorted", func(t *testing.T) {
		t.Parallel()

		got, _, _ := renderChecklist(t,
			newEntry(t, "Web API", "Clipboard", model.StatusNote),
			newEntry(t, "Accessibility", "ARIA", model.StatusNote),
			newEntry(t, "CSS", "Color", model.StatusNote),
		)

		a := strings.Index(got, "- Accessibility")
		c := strings.Index(got, "- CSS")
		w := strings.Index(got, "- Web API")
		if a < 0 || a > c || c > w {
			t.Errorf("expected sections in lexicographic order:\n%s", got)
		}
	})

	t.Run("empty catalog renders nothing", func(t *testing.T) {
		t.Parallel()

		got, _, _ := renderChecklist(t)
		if got != "" {
			t.Errorf("expected empty output, got %q", got)
		}
	})
}

// TestChecklistWriterEntry tests the rendering of a single entry.
func TestChecklistWriterEntry(t *testing.T) {
	t.Parallel()

	t.Run("minimal qualified standard", func(t *testing.T) {
		t.Parallel()

		got, _, _ := renderChecklist(t, newEntry(t, "CSS", "Color", model.StatusStandard))
		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

		want := []string{
			"- CSS",
			"    - [ ] [[Color](/TR/Color/)]",
			"        - Deliverers: [[CSS WG](https://www.w3.org/groups/wg/css/)]",
		}
		if diff := cmp.Diff(want, lines); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}

		checkboxes := strings.Count(got, "- [ ]")
		if checkboxes != 1 {
			t.Errorf("expected 1 checkbox line, got %d", checkboxes)
		}
		if strings.Contains(got, "Tags:") || strings.Contains(got, "Translations:") {
			t.Errorf("expected no Tags or Translations line:\n%s", got)
		}
	})

	t.Run("all details", func(t *testing.T) {
		t.Parallel()

		e, err := model.NewEntry("CSS",
			model.NewLink("CSS Color Module Level 4", "https://www.w3.org/TR/css-color-4/"),
			model.StatusCandidateStandard,
			[]string{"CSS", "Color"},
			[]model.WorkingGroup{cssWG, webappsWG},
			[]model.Link{model.NewLink("日本語", "https://example.org/ja/")},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _, _ := renderChecklist(t, e)
		want := strings.Join([]string{
			"- CSS",
			"    - [ ] [[CSS Color Module Level 4](https://www.w3.org/TR/css-color-4/)] `candidate standard`",
			"        - Deliverers: [[CSS WG](https://www.w3.org/groups/wg/css/)], [[WebApps WG](https://www.w3.org/groups/wg/webapps/)]",
			"        - Tags: CSS, Color",
			"        - Translations: [[日本語](https://example.org/ja/)]",
			"",
		}, "\n")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("checklist mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestWorkingGroupWriter tests the working group report.
func TestWorkingGroupWriter(t *testing.T) {
	t.Parallel()

	t.Run("lists each group once", func(t *testing.T) {
		t.Parallel()

		entries := make([]model.Entry, 0, 11)
		for i := range 10 {
			entries = append(entries, newEntry(t, fmt.Sprintf("Section %d", i%3), fmt.Sprintf("Doc %d", i), model.StatusNote))
		}
		e, err := model.NewEntry("Web API", model.NewLink("Clipboard", "/TR/clipboard/"), model.StatusDraftStandard, nil,
			[]model.WorkingGroup{webappsWG, cssWG}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entries = append(entries, e)

		var out bytes.Buffer
		if _, err := NewWorkingGroupWriter(&out).Write(model.NewCatalog(entries)); err != nil {
			t.Fatalf("Write() unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		want := []string{
			"- [[CSS WG](https://www.w3.org/groups/wg/css/)]",
			"- [[WebApps WG](https://www.w3.org/groups/wg/webapps/)]",
		}
		if diff := cmp.Diff(want, lines); diff != "" {
			t.Errorf("working groups mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("same name with different links are distinct", func(t *testing.T) {
		t.Parallel()

		a, err := model.NewEntry("S", model.NewLink("A", "/a/"), model.StatusNote, nil,
			[]model.WorkingGroup{model.NewLink("Group", "/g1/")}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := model.NewEntry("S", model.NewLink("B", "/b/"), model.StatusNote, nil,
			[]model.WorkingGroup{model.NewLink("Group", "/g2/")}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var out bytes.Buffer
		if _, err := NewWorkingGroupWriter(&out).Write(model.NewCatalog([]model.Entry{a, b})); err != nil {
			t.Fatalf("Write() unexpected error: %v", err)
		}
		if strings.Count(out.String(), "[[Group]") != 2 {
			t.Errorf("expected both groups, got %q", out.String())
		}
	})
}

// TestWriteFile tests report file output.
func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates directories and file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "STANDARDS.md")
		if err := WriteFile(path, "- CSS\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(got) != "- CSS\n" {
			t.Errorf("unexpected content %q", got)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "WORKING-GROUPS.md")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0600); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		if err := WriteFile(path, "new"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(got) != "new" {
			t.Errorf("expected file to be replaced, got %q", got)
		}
	})

	t.Run("fails when parent is a file", func(t *testing.T) {
		t.Parallel()

		parent := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(parent, nil, 0600); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		if err := WriteFile(filepath.Join(parent, "out.md"), "x"); err == nil {
			t.Error("expected error")
		}
	})
}

// Compile-time check that both writers satisfy Writer.
var (
	_ Writer = (*ChecklistWriter)(nil)
	_ Writer = (*WorkingGroupWriter)(nil)
)
