// Package gitdiag implements the git-status-dump and git-branches-dump commands.
//
// Service runs a fixed set of read-only git commands through the shared git
// executor and writes their combined output into text files inside the
// repository, keeping going when individual commands fail.
package gitdiag
