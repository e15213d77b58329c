package audit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/devscripts/internal/dependencies"
	"github.com/temirov/devscripts/internal/filesystem"
	"github.com/temirov/devscripts/internal/tasks"
)

const (
	commandUseNameConstant           = "task-audit"
	commandUsageTemplateConstant     = commandUseNameConstant + " <path_to_task_md>"
	commandExampleTemplateConstant   = "devscripts task-audit .agent/task.md"
	commandShortDescriptionConstant  = "Check a task board for health violations"
	commandLongDescriptionConstant   = "task-audit parses a checklist task board and fails when too many items are in progress or the file looks empty, so it can gate CI pipelines."
	missingPathMessageConstant       = "usage: devscripts task-audit <path_to_task_md>"
	passedMessageConstant            = "✅ Task Health Check Passed."
	issuesHeaderMessageConstant      = "⚠️ Health Issues Found:"
	auditCompletedLogMessageConstant = "task audit completed"
	logFieldPathConstant             = "path"
	logFieldInProgressConstant       = "in_progress"
	logFieldIssueCountConstant       = "issues"
	logFieldWIPLimitConstant         = "wip_limit"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the task-audit command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	FileSystem            filesystem.FileSystem
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the task-audit command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
		Example: commandExampleTemplateConstant,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	documentPath := ""
	if len(arguments) > 0 {
		documentPath = strings.TrimSpace(arguments[0])
	}
	if len(documentPath) == 0 {
		_ = command.Help()
		return errors.New(missingPathMessageConstant)
	}

	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

	document, loadError := tasks.LoadDocument(dependencies.ResolveFileSystem(builder.FileSystem), documentPath)
	if loadError != nil {
		return loadError
	}

	snapshot := document.Snapshot()
	result := NewAuditor(configuration).Evaluate(document, snapshot)

	logger.Info(
		auditCompletedLogMessageConstant,
		zap.String(logFieldPathConstant, documentPath),
		zap.Int(logFieldInProgressConstant, len(snapshot.InProgress)),
		zap.Int(logFieldWIPLimitConstant, configuration.WIPLimit),
		zap.Int(logFieldIssueCountConstant, len(result.Issues)),
	)

	output := command.OutOrStdout()
	if result.Passed() {
		fmt.Fprintln(output, passedMessageConstant)
		return nil
	}

	fmt.Fprintln(output, issuesHeaderMessageConstant)
	for _, issue := range result.Issues {
		fmt.Fprintln(output, issue)
	}
	return newHealthViolationError(documentPath, result)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
