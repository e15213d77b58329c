package gitdiag

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/temirov/devscripts/internal/dependencies"
	"github.com/temirov/devscripts/internal/execshell"
	"github.com/temirov/devscripts/internal/filesystem"
)

const (
	gitExecutorMissingMessageConstant        = "git executor not configured"
	fileSystemMissingMessageConstant         = "filesystem not configured"
	branchListingFailureTemplateConstant     = "failed to list branches: %w"
	dumpWriteFailureTemplateConstant         = "failed to write %s: %w"
	sectionHeaderTemplateConstant            = "=== %s ===\n"
	sectionSeparatorConstant                 = "\n\n"
	sectionErrorTemplateConstant             = "Error: %s"
	errorsHeaderConstant                     = "\n=== ERRORS ===\n"
	allBranchesTitleConstant                 = "ALL BRANCHES"
	currentBranchTitleConstant               = "CURRENT BRANCH"
	gitStatusTitleConstant                   = "GIT STATUS"
	localMainTitleConstant                   = "LOCAL MAIN LAST COMMIT"
	remoteMainTitleConstant                  = "REMOTE MAIN LAST COMMIT"
	unpushedCommitsTitleConstant             = "COMMITS NOT PUSHED (local ahead of remote)"
	recentCommitsTitleTemplateConstant       = "LAST %d COMMITS"
	remoteBranchTemplateConstant             = "%s/%s"
	commitRangeTemplateConstant              = "%s..%s"
	recentCommitsFlagTemplateConstant        = "-%d"
	gitBranchSubcommandConstant              = "branch"
	gitShowCurrentFlagConstant               = "--show-current"
	gitAllFlagConstant                       = "-a"
	gitStatusSubcommandConstant              = "status"
	gitLogSubcommandConstant                 = "log"
	gitSingleCommitFlagConstant              = "-1"
	gitOnelineFlagConstant                   = "--oneline"
	dumpFilePermissionsConstant              = fs.FileMode(0o644)
	gitTerminalPromptEnvironmentNameConstant = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabledValueConstant   = "0"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrFileSystemNotConfigured indicates the filesystem dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor dependencies.GitExecutor
	FileSystem  filesystem.FileSystem
}

// StatusOptions configure a status dump.
type StatusOptions struct {
	RepositoryPath    string
	OutputFile        string
	MainBranch        string
	RemoteName        string
	RecentCommitCount int
}

// BranchOptions configure a branch listing dump.
type BranchOptions struct {
	RepositoryPath string
	OutputFile     string
}

// Section is one captured git command of a status dump.
type Section struct {
	Title     string
	Arguments []string
	Output    string
	Failed    bool
}

// StatusDump is the result of a status dump.
type StatusDump struct {
	OutputPath string
	Sections   []Section
}

// BranchDump is the result of a branch listing dump.
type BranchDump struct {
	OutputPath     string
	StandardOutput string
	StandardError  string
}

// Service captures git diagnostics into text files.
type Service struct {
	executor   dependencies.GitExecutor
	fileSystem filesystem.FileSystem
}

// NewService constructs a Service from the provided dependencies.
func NewService(serviceDependencies ServiceDependencies) (*Service, error) {
	if serviceDependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if serviceDependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	return &Service{executor: serviceDependencies.GitExecutor, fileSystem: serviceDependencies.FileSystem}, nil
}

// StatusSections lists the git invocations of a status dump in output order.
func StatusSections(options StatusOptions) []Section {
	remoteMainBranch := fmt.Sprintf(remoteBranchTemplateConstant, options.RemoteName, options.MainBranch)
	return []Section{
		{Title: currentBranchTitleConstant, Arguments: []string{gitBranchSubcommandConstant, gitShowCurrentFlagConstant}},
		{Title: gitStatusTitleConstant, Arguments: []string{gitStatusSubcommandConstant}},
		{Title: localMainTitleConstant, Arguments: []string{gitLogSubcommandConstant, options.MainBranch, gitSingleCommitFlagConstant, gitOnelineFlagConstant}},
		{Title: remoteMainTitleConstant, Arguments: []string{gitLogSubcommandConstant, remoteMainBranch, gitSingleCommitFlagConstant, gitOnelineFlagConstant}},
		{Title: unpushedCommitsTitleConstant, Arguments: []string{gitLogSubcommandConstant, fmt.Sprintf(commitRangeTemplateConstant, remoteMainBranch, options.MainBranch), gitOnelineFlagConstant}},
		{Title: fmt.Sprintf(recentCommitsTitleTemplateConstant, options.RecentCommitCount), Arguments: []string{gitLogSubcommandConstant, fmt.Sprintf(recentCommitsFlagTemplateConstant, options.RecentCommitCount), gitOnelineFlagConstant}},
	}
}

// DumpStatus runs every status section and writes the combined output. Failing git commands
// contribute their output instead of aborting the dump.
func (service *Service) DumpStatus(executionContext context.Context, options StatusOptions) (StatusDump, error) {
	sections := StatusSections(options)
	for index := range sections {
		sections[index].Output, sections[index].Failed = service.captureCombinedOutput(executionContext, options.RepositoryPath, sections[index].Arguments)
	}

	outputPath := filepath.Join(options.RepositoryPath, options.OutputFile)
	if writeError := service.fileSystem.WriteFile(outputPath, []byte(RenderStatusDump(sections)), dumpFilePermissionsConstant); writeError != nil {
		return StatusDump{}, fmt.Errorf(dumpWriteFailureTemplateConstant, outputPath, writeError)
	}

	return StatusDump{OutputPath: outputPath, Sections: sections}, nil
}

// RenderStatusDump formats sections as headed blocks separated by blank lines.
func RenderStatusDump(sections []Section) string {
	renderedSections := make([]string, 0, len(sections))
	for _, section := range sections {
		renderedSections = append(renderedSections, fmt.Sprintf(sectionHeaderTemplateConstant, section.Title)+section.Output)
	}
	return strings.Join(renderedSections, sectionSeparatorConstant)
}

// DumpBranches lists local and remote branches and writes them to the output file.
func (service *Service) DumpBranches(executionContext context.Context, options BranchOptions) (BranchDump, error) {
	result, executionError := service.executor.ExecuteGit(executionContext, service.commandDetails(options.RepositoryPath, []string{gitBranchSubcommandConstant, gitAllFlagConstant}))
	if executionError != nil {
		var failedError execshell.CommandFailedError
		if !errors.As(executionError, &failedError) {
			return BranchDump{}, fmt.Errorf(branchListingFailureTemplateConstant, executionError)
		}
		result = failedError.Result
	}

	outputPath := filepath.Join(options.RepositoryPath, options.OutputFile)
	if writeError := service.fileSystem.WriteFile(outputPath, []byte(RenderBranchDump(result)), dumpFilePermissionsConstant); writeError != nil {
		return BranchDump{}, fmt.Errorf(dumpWriteFailureTemplateConstant, outputPath, writeError)
	}

	return BranchDump{OutputPath: outputPath, StandardOutput: result.StandardOutput, StandardError: result.StandardError}, nil
}

// RenderBranchDump formats the branch listing file, appending standard error when present.
func RenderBranchDump(result execshell.ExecutionResult) string {
	rendered := fmt.Sprintf(sectionHeaderTemplateConstant, allBranchesTitleConstant) + result.StandardOutput
	if len(result.StandardError) > 0 {
		rendered += errorsHeaderConstant + result.StandardError
	}
	return rendered
}

func (service *Service) captureCombinedOutput(executionContext context.Context, repositoryPath string, arguments []string) (string, bool) {
	result, executionError := service.executor.ExecuteGit(executionContext, service.commandDetails(repositoryPath, arguments))
	if executionError == nil {
		return result.CombinedOutput(), false
	}

	var failedError execshell.CommandFailedError
	if errors.As(executionError, &failedError) {
		return failedError.Result.CombinedOutput(), true
	}

	failureMessage := executionError.Error()
	var startError execshell.CommandExecutionError
	if errors.As(executionError, &startError) && startError.Cause != nil {
		failureMessage = startError.Cause.Error()
	}
	return fmt.Sprintf(sectionErrorTemplateConstant, failureMessage), true
}

func (service *Service) commandDetails(repositoryPath string, arguments []string) execshell.CommandDetails {
	return execshell.CommandDetails{
		Arguments:            arguments,
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptDisabledValueConstant},
	}
}
