// Package tasks parses checklist-style task documents.
//
// ParseSnapshot groups "- [ ]", "- [/]" and "- [x]" lines into todo, in-progress
// and done sequences. The audit and report subpackages consume the resulting
// Snapshot independently.
package tasks
