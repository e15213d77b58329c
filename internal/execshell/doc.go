// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor wraps a CommandRunner with zap logging, optional per-command
// timeouts, and typed errors: CommandFailedError for processes that exit with
// a non-zero code and CommandExecutionError for processes that never ran.
// OSCommandRunner is the os/exec backed runner used outside of tests.
package execshell
