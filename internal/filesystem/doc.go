// Package filesystem abstracts the file operations used by devscripts commands
// so services can be exercised against temporary directories or in-memory fakes.
package filesystem
