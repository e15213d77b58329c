package gitdiag

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/devscripts/internal/dependencies"
	"github.com/temirov/devscripts/internal/execshell"
	"github.com/temirov/devscripts/internal/filesystem"
	pathutils "github.com/temirov/devscripts/internal/utils/path"
)

const (
	statusCommandUseNameConstant            = "git-status-dump"
	statusCommandUsageTemplateConstant      = statusCommandUseNameConstant + " [repository]"
	statusCommandExampleConstant            = "devscripts git-status-dump ~/Development/sahayakai"
	statusCommandShortDescriptionConstant   = "Write a git status diagnostic file for a repository"
	statusCommandLongDescriptionConstant    = "git-status-dump records the current branch, working tree status, local and remote main commits, unpushed commits, and recent history into git_status.txt inside the repository. Failing git commands contribute their output instead of aborting the dump."
	branchesCommandUseNameConstant          = "git-branches-dump"
	branchesCommandUsageTemplateConstant    = branchesCommandUseNameConstant + " [repository]"
	branchesCommandExampleConstant          = "devscripts git-branches-dump ~/Development/sahayakai"
	branchesCommandShortDescriptionConstant = "Print and record every local and remote branch"
	branchesCommandLongDescriptionConstant  = "git-branches-dump runs git branch -a, prints the listing, and writes it to branches.txt inside the repository together with any errors reported by git."
	statusWrittenTemplateConstant           = "Git diagnostic written to %s"
	allBranchesHeaderConstant               = "=== ALL BRANCHES ==="
	statusDumpLogMessageConstant            = "git status dump written"
	branchesDumpLogMessageConstant          = "git branch dump written"
	logFieldRepositoryConstant              = "repository"
	logFieldOutputConstant                  = "output"
	logFieldFailedSectionsConstant          = "failed_sections"
	logFieldHasErrorsConstant               = "has_errors"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// commandDependencies holds collaborators shared by both dump commands.
type commandDependencies struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  dependencies.GitExecutor
	FileSystem                   filesystem.FileSystem
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// StatusCommandBuilder assembles the git-status-dump command.
type StatusCommandBuilder commandDependencies

// BranchesCommandBuilder assembles the git-branches-dump command.
type BranchesCommandBuilder commandDependencies

// Build constructs the git-status-dump command.
func (builder *StatusCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     statusCommandUsageTemplateConstant,
		Short:   statusCommandShortDescriptionConstant,
		Long:    statusCommandLongDescriptionConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
		Example: statusCommandExampleConstant,
	}
	return command, nil
}

func (builder *StatusCommandBuilder) run(command *cobra.Command, arguments []string) error {
	shared := (*commandDependencies)(builder)
	configuration := shared.resolveConfiguration()
	logger := shared.resolveLogger()

	service, serviceError := shared.resolveService(logger, configuration)
	if serviceError != nil {
		return serviceError
	}

	repositoryPath := resolveRepositoryPath(arguments, configuration)
	dump, dumpError := service.DumpStatus(command.Context(), StatusOptions{
		RepositoryPath:    repositoryPath,
		OutputFile:        configuration.StatusOutputFile,
		MainBranch:        configuration.MainBranch,
		RemoteName:        configuration.RemoteName,
		RecentCommitCount: configuration.RecentCommitCount,
	})
	if dumpError != nil {
		return dumpError
	}

	failedSections := 0
	for _, section := range dump.Sections {
		if section.Failed {
			failedSections++
		}
	}
	logger.Info(
		statusDumpLogMessageConstant,
		zap.String(logFieldRepositoryConstant, repositoryPath),
		zap.String(logFieldOutputConstant, dump.OutputPath),
		zap.Int(logFieldFailedSectionsConstant, failedSections),
	)

	fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(statusWrittenTemplateConstant, dump.OutputPath))
	return nil
}

// Build constructs the git-branches-dump command.
func (builder *BranchesCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     branchesCommandUsageTemplateConstant,
		Short:   branchesCommandShortDescriptionConstant,
		Long:    branchesCommandLongDescriptionConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
		Example: branchesCommandExampleConstant,
	}
	return command, nil
}

func (builder *BranchesCommandBuilder) run(command *cobra.Command, arguments []string) error {
	shared := (*commandDependencies)(builder)
	configuration := shared.resolveConfiguration()
	logger := shared.resolveLogger()

	service, serviceError := shared.resolveService(logger, configuration)
	if serviceError != nil {
		return serviceError
	}

	repositoryPath := resolveRepositoryPath(arguments, configuration)
	dump, dumpError := service.DumpBranches(command.Context(), BranchOptions{
		RepositoryPath: repositoryPath,
		OutputFile:     configuration.BranchesOutputFile,
	})
	if dumpError != nil {
		return dumpError
	}

	logger.Info(
		branchesDumpLogMessageConstant,
		zap.String(logFieldRepositoryConstant, repositoryPath),
		zap.String(logFieldOutputConstant, dump.OutputPath),
		zap.Bool(logFieldHasErrorsConstant, len(dump.StandardError) > 0),
	)

	output := command.OutOrStdout()
	fmt.Fprintln(output, allBranchesHeaderConstant)
	fmt.Fprintln(output, dump.StandardOutput)
	fmt.Fprintln(output, dump.StandardError)
	return nil
}

func (shared *commandDependencies) resolveService(logger *zap.Logger, configuration CommandConfiguration) (*Service, error) {
	humanReadableLogging := false
	if shared.HumanReadableLoggingProvider != nil {
		humanReadableLogging = shared.HumanReadableLoggingProvider()
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(shared.GitExecutor, logger, execshell.ShellExecutorOptions{
		HumanReadableLogging: humanReadableLogging,
		CommandTimeout:       configuration.CommandTimeout,
	})
	if executorError != nil {
		return nil, executorError
	}

	return NewService(ServiceDependencies{
		GitExecutor: gitExecutor,
		FileSystem:  dependencies.ResolveFileSystem(shared.FileSystem),
	})
}

func (shared *commandDependencies) resolveConfiguration() CommandConfiguration {
	if shared.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return shared.ConfigurationProvider().Sanitize()
}

func (shared *commandDependencies) resolveLogger() *zap.Logger {
	if shared.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := shared.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveRepositoryPath(arguments []string, configuration CommandConfiguration) string {
	candidate := configuration.RepositoryPath
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		candidate = arguments[0]
	}
	return pathutils.NewPathResolver().Resolve(candidate)
}
