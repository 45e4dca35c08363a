package model

import (
	"fmt"
	"slices"
)

// Entry is one standard listed on the technical reports index.
// An Entry is immutable after construction; accessors return copies.
type Entry struct {
	section      string
	title        Link
	status       Status
	tags         []string
	deliverers   NonEmpty[WorkingGroup]
	translations []Link
}

// NewEntry builds an Entry.
// Every entry is delivered by at least one working group; an empty
// deliverers slice returns an error wrapping ErrNoDeliverers.
func NewEntry(section string, title Link, status Status, tags []string, deliverers []WorkingGroup, translations []Link) (Entry, error) {
	groups, err := NewNonEmpty(deliverers)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q in section %q: %w", ErrNoDeliverers, title.Text, section, err)
	}

	return Entry{
		section:      section,
		title:        title,
		status:       status,
		tags:         slices.Clone(tags),
		deliverers:   groups,
		translations: slices.Clone(translations),
	}, nil
}

// Section returns the name of the section the entry belongs to.
func (e Entry) Section() string {
	return e.section
}

// Title returns the document title and its link.
func (e Entry) Title() Link {
	return e.title
}

// Status returns the maturity level.
func (e Entry) Status() Status {
	return e.status
}

// Tags returns the tags in document order. It may be empty.
func (e Entry) Tags() []string {
	return slices.Clone(e.tags)
}

// Deliverers returns the working groups credited for the entry, never empty.
func (e Entry) Deliverers() []WorkingGroup {
	return e.deliverers.Items()
}

// Translations returns the translation links in document order. It may be empty.
func (e Entry) Translations() []Link {
	return slices.Clone(e.translations)
}
