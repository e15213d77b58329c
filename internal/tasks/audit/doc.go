// Package audit implements the task-audit command.
//
// Auditor flags a board with more in-progress items than the WIP limit and a
// board whose trimmed text is too short to be a real task list. Any issue
// makes the command return ErrHealthViolation so the process exits non-zero.
package audit
