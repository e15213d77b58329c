package complexity

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
	commandUseNameConstant              = "complexity-check"
	commandUsageTemplateConstant        = commandUseNameConstant + " <file>"
	commandExampleTemplateConstant      = "devscripts complexity-check src/app/lesson-plan/page.tsx"
	commandShortDescriptionConstant     = "Flag source files that are too long, too branchy, or too deeply nested"
	commandLongDescriptionConstant      = "complexity-check counts lines, conditionals, and loops in a source file and reports files whose length, branching, or logic indentation exceed the configured thresholds. Markup layout lines are ignored when measuring nesting."
	missingPathMessageConstant          = "usage: devscripts complexity-check <file>"
	fileUnreadableMessageConstant       = "source file unreadable"
	fileUnreadableErrorTemplate         = "%w: %s: %w"
	analysisHeaderTemplateConstant      = "📊 Analysis for: %s"
	totalLinesTemplateConstant          = "   Total Lines: %d"
	conditionalsTemplateConstant        = "   'if' statements: %d"
	loopsTemplateConstant               = "   Loops: %d"
	passedMessageConstant               = "\n✅ Code Hygiene Check Passed."
	issuesHeaderMessageConstant         = "\n🚨 Issues Found:"
	analysisCompletedLogMessageConstant = "complexity analysis completed"
	logFieldPathConstant                = "path"
	logFieldLinesConstant               = "lines"
	logFieldConditionalsConstant        = "conditionals"
	logFieldLoopsConstant               = "loops"
	logFieldMaxIndentationConstant      = "max_indentation"
	logFieldNestingLimitConstant        = "nesting_limit"
	logFieldIssueCountConstant          = "issues"
)

// ErrFileUnreadable indicates the source file could not be read.
var ErrFileUnreadable = errors.New(fileUnreadableMessageConstant)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the complexity-check command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	FileSystem            filesystem.FileSystem
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the complexity-check command.
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

	contents, readError := dependencies.ResolveFileSystem(builder.FileSystem).ReadFile(sourcePath)
	if readError != nil {
		return fmt.Errorf(fileUnreadableErrorTemplate, ErrFileUnreadable, sourcePath, readError)
	}

	analysis := NewAnalyzer(builder.resolveConfiguration()).Analyze(sourcePath, string(contents))

	builder.resolveLogger().Info(
		analysisCompletedLogMessageConstant,
		zap.String(logFieldPathConstant, sourcePath),
		zap.Int(logFieldLinesConstant, analysis.Metrics.TotalLines),
		zap.Int(logFieldConditionalsConstant, analysis.Metrics.ConditionalCount),
		zap.Int(logFieldLoopsConstant, analysis.Metrics.LoopCount),
		zap.Int(logFieldMaxIndentationConstant, analysis.Metrics.MaxIndentation),
		zap.Int(logFieldNestingLimitConstant, analysis.NestingLimit),
		zap.Int(logFieldIssueCountConstant, len(analysis.Issues)),
	)

	output := command.OutOrStdout()
	fmt.Fprintln(output, fmt.Sprintf(analysisHeaderTemplateConstant, sourcePath))
	fmt.Fprintln(output, fmt.Sprintf(totalLinesTemplateConstant, analysis.Metrics.TotalLines))
	fmt.Fprintln(output, fmt.Sprintf(conditionalsTemplateConstant, analysis.Metrics.ConditionalCount))
	fmt.Fprintln(output, fmt.Sprintf(loopsTemplateConstant, analysis.Metrics.LoopCount))

	if analysis.Passed() {
		fmt.Fprintln(output, passedMessageConstant)
		return nil
	}

	fmt.Fprintln(output, issuesHeaderMessageConstant)
	for _, issue := range analysis.Issues {
		fmt.Fprintln(output, issue)
	}
	return newIssuesFoundError(analysis)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
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
