// Package scaffold implements the test-scaffold command.
//
// Scaffolder derives a camelCase export name from a kebab-case source file and
// renders an embedded vitest template into a sibling __tests__ directory.
package scaffold
