package gitdiag_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/devscripts/internal/execshell"
	"github.com/temirov/devscripts/internal/gitdiag"
)

func TestStatusCommandUsesArgumentRepository(testInstance *testing.T) {
	repositoryPath := testInstance.TempDir()
	executor := &scriptedGitExecutor{}
	observerCore, observerLogs := observer.New(zap.InfoLevel)

	builder := gitdiag.StatusCommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.New(observerCore) },
		GitExecutor:    executor,
		ConfigurationProvider: func() gitdiag.CommandConfiguration {
			return gitdiag.CommandConfiguration{RepositoryPath: "/does/not/matter", RecentCommitCount: 3}
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())

	output := &bytes.Buffer{}
	command.SetOut(output)

	require.NoError(testInstance, command.RunE(command, []string{repositoryPath}))
	require.Equal(testInstance, "Git diagnostic written to "+filepath.Join(repositoryPath, "git_status.txt")+"\n", output.String())
	require.Len(testInstance, executor.recordedCommands, 6)
	require.Equal(testInstance, []string{"log", "-3", "--oneline"}, executor.recordedCommands[5].Arguments)
	require.Equal(testInstance, 1, observerLogs.FilterMessage("git status dump written").Len())
}

func TestBranchesCommandPrintsListing(testInstance *testing.T) {
	repositoryPath := testInstance.TempDir()
	executor := &scriptedGitExecutor{responses: map[string]scriptedResponse{
		"branch -a": {result: execshell.ExecutionResult{StandardOutput: "* main\n"}},
	}}

	builder := gitdiag.BranchesCommandBuilder{
		GitExecutor: executor,
		ConfigurationProvider: func() gitdiag.CommandConfiguration {
			return gitdiag.CommandConfiguration{RepositoryPath: repositoryPath}
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())

	output := &bytes.Buffer{}
	command.SetOut(output)

	require.NoError(testInstance, command.RunE(command, []string{}))
	require.Equal(testInstance, "=== ALL BRANCHES ===\n* main\n\n\n", output.String())
	require.Equal(testInstance, repositoryPath, executor.recordedCommands[0].WorkingDirectory)
}
