package scaffold_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/devscripts/internal/scaffold"
)

func TestCommandOutputs(testInstance *testing.T) {
	sourceDirectory := testInstance.TempDir()
	sourcePath := filepath.Join(sourceDirectory, "quiz-generator.ts")
	require.NoError(testInstance, os.WriteFile(sourcePath, []byte("export {};\n"), 0o644))
	testPath := filepath.Join(sourceDirectory, "__tests__", "quiz-generator.test.ts")

	observerCore, observerLogs := observer.New(zap.InfoLevel)
	builder := scaffold.CommandBuilder{LoggerProvider: func() *zap.Logger { return zap.New(observerCore) }}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	firstOutput := &bytes.Buffer{}
	command.SetOut(firstOutput)
	require.NoError(testInstance, command.RunE(command, []string{sourcePath}))
	require.Equal(testInstance, "✅ Created test scaffold: "+testPath+"\n   Target Function: quizGenerator\n", firstOutput.String())

	secondOutput := &bytes.Buffer{}
	command.SetOut(secondOutput)
	require.NoError(testInstance, command.RunE(command, []string{sourcePath}))
	require.Equal(testInstance, "Warning: Test file "+testPath+" already exists. Skipping.\n", secondOutput.String())

	require.Equal(testInstance, 1, observerLogs.FilterMessage("test scaffold created").Len())
	require.Equal(testInstance, 1, observerLogs.FilterMessage("test scaffold skipped").Len())
}

func TestCommandMissingSource(testInstance *testing.T) {
	builder := scaffold.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	output := &bytes.Buffer{}
	command.SetOut(output)

	missingPath := filepath.Join(testInstance.TempDir(), "absent.ts")
	runError := command.RunE(command, []string{missingPath})
	require.ErrorIs(testInstance, runError, scaffold.ErrSourceNotFound)
	require.Equal(testInstance, "Error: File "+missingPath+" not found.\n", output.String())
}

func TestCommandRequiresArgument(testInstance *testing.T) {
	builder := scaffold.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetOut(&bytes.Buffer{})

	runError := command.RunE(command, []string{})
	require.Error(testInstance, runError)
	require.Contains(testInstance, runError.Error(), "test-scaffold <source_file>")
}
