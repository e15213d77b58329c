// Package complexity implements the complexity-check command, a line-based
// hygiene linter for TypeScript and React sources.
package complexity
