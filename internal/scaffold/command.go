package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/devscripts/internal/dependencies"
	"github.com/temirov/devscripts/internal/filesystem"
)

const (
	commandUseNameConstant            = "test-scaffold"
	commandUsageTemplateConstant      = commandUseNameConstant + " <source_file>"
	commandExampleTemplateConstant    = "devscripts test-scaffold src/ai/flows/lesson-plan-generator.ts"
	commandShortDescriptionConstant   = "Generate a vitest stub for a source file"
	commandLongDescriptionConstant    = "test-scaffold writes <dir>/__tests__/<name>.test.ts with placeholder cases for the export guessed from the kebab-case file name. Existing test files are never overwritten."
	missingPathMessageConstant        = "usage: devscripts test-scaffold <source_file>"
	sourceMissingTemplateConstant     = "Error: File %s not found."
	existingTestTemplateConstant      = "Warning: Test file %s already exists. Skipping."
	createdTemplateConstant           = "✅ Created test scaffold: %s"
	targetFunctionTemplateConstant    = "   Target Function: %s"
	scaffoldSkippedLogMessageConstant = "test scaffold skipped"
	scaffoldCreatedLogMessageConstant = "test scaffold created"
	logFieldSourceConstant            = "source"
	logFieldTestPathConstant          = "test_path"
	logFieldExportNameConstant        = "export_name"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the test-scaffold command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	FileSystem            filesystem.FileSystem
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the test-scaffold command.
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
	sourcePath := ""
	if len(arguments) > 0 {
		sourcePath = strings.TrimSpace(arguments[0])
	}
	if len(sourcePath) == 0 {
		_ = command.Help()
		return errors.New(missingPathMessageConstant)
	}

	scaffolder, scaffolderError := NewScaffolder(dependencies.ResolveFileSystem(builder.FileSystem), builder.resolveConfiguration())
	if scaffolderError != nil {
		return scaffolderError
	}

	output := command.OutOrStdout()
	logger := builder.resolveLogger()

	result, scaffoldError := scaffolder.Scaffold(sourcePath)
	if scaffoldError != nil {
		if errors.Is(scaffoldError, ErrSourceNotFound) {
			fmt.Fprintln(output, fmt.Sprintf(sourceMissingTemplateConstant, sourcePath))
		}
		return scaffoldError
	}

	if result.Skipped {
		logger.Info(scaffoldSkippedLogMessageConstant, zap.String(logFieldSourceConstant, sourcePath), zap.String(logFieldTestPathConstant, result.TestPath))
		fmt.Fprintln(output, fmt.Sprintf(existingTestTemplateConstant, result.TestPath))
		return nil
	}

	logger.Info(
		scaffoldCreatedLogMessageConstant,
		zap.String(logFieldSourceConstant, sourcePath),
		zap.String(logFieldTestPathConstant, result.TestPath),
		zap.String(logFieldExportNameConstant, result.ExportName),
	)
	fmt.Fprintln(output, fmt.Sprintf(createdTemplateConstant, result.TestPath))
	fmt.Fprintln(output, fmt.Sprintf(targetFunctionTemplateConstant, result.ExportName))
	return nil
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
