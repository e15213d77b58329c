package dependencies

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/devscripts/internal/execshell"
	"github.com/temirov/devscripts/internal/filesystem"
)

// GitExecutor runs git commands on behalf of a service.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing filesystem.FileSystem) filesystem.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
func ResolveGitExecutor(existing GitExecutor, logger *zap.Logger, options execshell.ShellExecutorOptions) (GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, options)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}
