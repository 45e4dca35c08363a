package model

import (
	"cmp"
	"slices"
)

// Catalog associates section names with the entries listed under them.
// It is built in a single grouping pass and never modified afterwards.
type Catalog struct {
	sections map[string][]Entry
	total    int
}

// NewCatalog groups entries by their section name.
// Entries keep their relative order within a section.
func NewCatalog(entries []Entry) *Catalog {
	sections := make(map[string][]Entry)
	for _, e := range entries {
		sections[e.section] = append(sections[e.section], e)
	}
	return &Catalog{sections: sections, total: len(entries)}
}

// Sections returns the section names in lexicographic order.
func (c *Catalog) Sections() []string {
	names := make([]string, 0, len(c.sections))
	for name := range c.sections {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Entries returns a copy of the entries of a section in insertion order.
// An unknown section yields nil.
func (c *Catalog) Entries(section string) []Entry {
	return slices.Clone(c.sections[section])
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	return c.total
}

// WorkingGroups returns every deliverer of every entry exactly once,
// ordered by text and then by href.
func (c *Catalog) WorkingGroups() []WorkingGroup {
	seen := make(map[WorkingGroup]struct{})
	groups := make([]WorkingGroup, 0)
	for _, entries := range c.sections {
		for _, e := range entries {
			for _, g := range e.deliverers.items {
				if _, ok := seen[g]; ok {
					continue
				}
				seen[g] = struct{}{}
				groups = append(groups, g)
			}
		}
	}

	slices.SortFunc(groups, func(a, b WorkingGroup) int {
		return cmp.Or(cmp.Compare(a.Text, b.Text), cmp.Compare(a.Href, b.Href))
	})
	return groups
}
