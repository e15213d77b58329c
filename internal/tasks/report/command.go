package report

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
	commandUseNameConstant            = "task-report"
	commandUsageTemplateConstant      = commandUseNameConstant + " <path_to_task_md>"
	commandExampleTemplateConstant    = "devscripts task-report .agent/task.md\ndevscripts task-report .agent/task.md --format json"
	commandShortDescriptionConstant   = "Render a daily status report from a task board"
	commandLongDescriptionConstant    = "task-report parses a checklist task board and prints a daily status report with health, progress, active work, recent completions, and upcoming items."
	missingPathMessageConstant        = "usage: devscripts task-report <path_to_task_md>"
	formatFlagNameConstant            = "format"
	formatFlagDescriptionConstant     = "Output format: markdown, json, or yaml"
	reportGeneratedLogMessageConstant = "status report generated"
	logFieldPathConstant              = "path"
	logFieldFormatConstant            = "format"
	logFieldHealthConstant            = "health"
	logFieldDoneConstant              = "done"
	logFieldTotalConstant             = "total"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the task-report command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	FileSystem            filesystem.FileSystem
	Clock                 Clock
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the task-report command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
		Example: commandExampleTemplateConstant,
	}

	command.Flags().String(formatFlagNameConstant, "", formatFlagDescriptionConstant)

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
	formatValue := configuration.Format
	if command.Flags().Changed(formatFlagNameConstant) {
		flagValue, flagError := command.Flags().GetString(formatFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		formatValue = flagValue
	}
	format, formatError := ParseFormat(formatValue)
	if formatError != nil {
		return formatError
	}

	document, loadError := tasks.LoadDocument(dependencies.ResolveFileSystem(builder.FileSystem), documentPath)
	if loadError != nil {
		return loadError
	}

	summary := Summarize(document.Snapshot(), builder.resolveClock().Now(), configuration.Limits())
	rendered, renderError := Render(format, summary)
	if renderError != nil {
		return renderError
	}

	builder.resolveLogger().Info(
		reportGeneratedLogMessageConstant,
		zap.String(logFieldPathConstant, documentPath),
		zap.String(logFieldFormatConstant, string(format)),
		zap.String(logFieldHealthConstant, summary.Health.Code()),
		zap.Int(logFieldDoneConstant, summary.DoneCount),
		zap.Int(logFieldTotalConstant, summary.TotalCount),
	)

	fmt.Fprintln(command.OutOrStdout(), rendered)
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveClock() Clock {
	if builder.Clock == nil {
		return SystemClock{}
	}
	return builder.Clock
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
