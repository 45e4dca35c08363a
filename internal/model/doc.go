// Package model defines the records extracted from the technical reports
// index and the state that flows through the generation pipeline.
//
// The core types are:
//   - Link: an immutable (text, href) pair, also used as WorkingGroup
//   - Status: the closed vocabulary of maturity levels
//   - Entry: one standard listed on the index page
//   - Catalog: entries grouped by section name
//   - Run: mutable pipeline state (document, catalog, rendered reports)
package model
