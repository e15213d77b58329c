// Package dependencies resolves optional collaborators for command builders,
// falling back to OS-backed defaults when tests do not inject their own.
package dependencies
