package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the maturity level of a document on the index page.
type Status int

const (
	// StatusNote is a Group Note.
	StatusNote Status = iota

	// StatusDraftNote is a Group Draft Note.
	StatusDraftNote

	// StatusDraftStandard is a Working Draft on the Recommendation track.
	StatusDraftStandard

	// StatusDraftRegistry is a draft registry.
	StatusDraftRegistry

	// StatusCandidateStandard is a Candidate Recommendation.
	StatusCandidateStandard

	// StatusStandard is a qualified standard (W3C Recommendation).
	StatusStandard

	// StatusStatement is a W3C Statement.
	StatusStatement
)

// statusNames is the label vocabulary, indexed by Status.
var statusNames = [...]string{
	StatusNote:              "note",
	StatusDraftNote:         "draft note",
	StatusDraftStandard:     "draft standard",
	StatusDraftRegistry:     "draft registry",
	StatusCandidateStandard: "candidate standard",
	StatusStandard:          "standard",
	StatusStatement:         "statement",
}

// lower folds labels with Unicode-aware lowercasing.
var lower = cases.Lower(language.Und)

// String returns the maturity label as written on the index page, lowercased.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// IsQualified reports whether s is a qualified standard.
// Qualified standards are rendered without a status annotation.
func (s Status) IsQualified() bool {
	return s == StatusStandard
}

// Statuses returns every known status in declaration order.
func Statuses() []Status {
	all := make([]Status, len(statusNames))
	for i := range statusNames {
		all[i] = Status(i)
	}
	return all
}

// ParseStatus converts a maturity label to a Status.
// The label is trimmed and lowercased before matching. Labels outside the
// known vocabulary return ErrUnknownStatus.
func ParseStatus(label string) (Status, error) {
	normalized := NormalizeLabel(label)
	for i, name := range statusNames {
		if name == normalized {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, normalized)
}

// NormalizeLabel trims surrounding whitespace and lowercases a label.
func NormalizeLabel(label string) string {
	return lower.String(strings.TrimSpace(label))
}
