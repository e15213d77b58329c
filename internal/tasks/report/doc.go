// Package report implements the task-report command.
//
// Summarize turns a tasks.Snapshot into report content: the health
// classification, completion progress, active work, the most recent
// completions, and the next todos. RenderMarkdown prints the daily status
// document; Render also offers schema-checked JSON and YAML encodings.
package report
