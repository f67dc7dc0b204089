// Package review builds translation review rows and writes them as CSV.
//
// Reconcile pairs a flattened source catalog with a flattened target
// catalog:
//
//	rows := review.Reconcile(enFlat, idFlat)
//
// Each row carries the key, both texts, empty reviewer notes and the
// "Needs Review" status. Rows are sorted by key; keys whose source text is
// empty or whose name starts with "_" are left out. A key the target
// catalog lacks produces an empty target text, which is what reviewers
// are looking for.
//
// A Writer encodes rows with the header
//
//	Key,English,Indonesian,Reviewer_Notes,Status
//
// WithLabels changes the two language columns. WriteFile renders the whole
// file in memory before replacing the destination atomically; failures
// match ErrWrite.
package review
