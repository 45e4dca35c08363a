// Package pipeline runs the steps of one generation in sequence.
//
// A run fetches the index page, extracts its entries into a catalog,
// renders the checklist and working group reports and writes them to
// disk. Each stage is a Step that receives the shared model.Run and fills
// in its own fields. Execution stops at the first failing step, and the
// context is checked before each step starts.
package pipeline
