package model

import "github.com/nao1215/markdown"

// Link is a display text paired with its target reference.
// Link is comparable: two links are equal when both text and href match,
// so it can be used directly as a map key.
type Link struct {
	// Text is the anchor text shown to readers.
	Text string

	// Href is the target reference as found in the markup.
	Href string
}

// WorkingGroup is the organization credited with delivering a standard.
type WorkingGroup = Link

// NewLink creates a Link.
func NewLink(text, href string) Link {
	return Link{Text: text, Href: href}
}

// Markdown renders the link as a bracketed markdown link: [[text](href)].
func (l Link) Markdown() string {
	return "[" + markdown.Link(l.Text, l.Href) + "]"
}

// String implements fmt.Stringer.
func (l Link) String() string {
	return l.Markdown()
}
