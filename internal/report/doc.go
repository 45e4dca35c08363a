// Package report renders the extracted catalog as markdown documents.
//
// Two writers are provided:
//   - ChecklistWriter: per-section checklist of the most mature documents
//   - WorkingGroupWriter: deduplicated list of the delivering groups
//
// Both implement Writer and produce the whole document in one Build call.
// WriteFile stores a rendered document on disk, replacing any previous
// content.
package report
