package audit_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/devscripts/internal/tasks"
	"github.com/temirov/devscripts/internal/tasks/audit"
)

func writeTaskDocument(testInstance *testing.T, contents string) string {
	testInstance.Helper()
	documentPath := filepath.Join(testInstance.TempDir(), "task.md")
	require.NoError(testInstance, os.WriteFile(documentPath, []byte(contents), 0o644))
	return documentPath
}

func TestCommandRequiresPathArgument(testInstance *testing.T) {
	builder := audit.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	output := &bytes.Buffer{}
	command.SetOut(output)
	command.SetErr(output)

	runError := command.RunE(command, []string{})
	require.Error(testInstance, runError)
	require.Contains(testInstance, runError.Error(), "task-audit <path_to_task_md>")
	require.Contains(testInstance, output.String(), "Usage:")
}

func TestCommandOutcomes(testInstance *testing.T) {
	testCases := []struct {
		name           string
		contents       string
		expectedOutput string
		expectFailure  bool
		expectedError  string
	}{
		{
			name:           "passes",
			contents:       "- [/] active\n- [ ] one\n- [ ] two\n- [ ] three\n- [ ] four",
			expectedOutput: "✅ Task Health Check Passed.\n",
		},
		{
			name:           "wip_violation",
			contents:       "- [ ] write docs\n- [/] fix bug\n- [/] fix bug2\n- [/] fix bug3\n- [x] setup repo",
			expectedOutput: "⚠️ Health Issues Found:\n🚨 WIP Violation: 3 items in progress. Limit is 2.\n   - fix bug\n   - fix bug2\n   - fix bug3\n",
			expectFailure:  true,
			expectedError:  "task health check failed: %s (1 violations)",
		},
		{
			name:           "empty_document",
			contents:       "",
			expectedOutput: "⚠️ Health Issues Found:\n🚨 Task file appears empty/corrupted.\n",
			expectFailure:  true,
			expectedError:  "task health check failed: %s (1 violations)",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observerLogs := observer.New(zap.InfoLevel)
			builder := audit.CommandBuilder{
				LoggerProvider: func() *zap.Logger { return zap.New(observerCore) },
				ConfigurationProvider: func() audit.CommandConfiguration {
					return audit.DefaultCommandConfiguration()
				},
			}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			output := &bytes.Buffer{}
			command.SetOut(output)

			documentPath := writeTaskDocument(testInstance, testCase.contents)
			runError := command.RunE(command, []string{documentPath})
			if testCase.expectFailure {
				require.ErrorIs(testInstance, runError, audit.ErrHealthViolation)
				require.EqualError(testInstance, runError, fmt.Sprintf(testCase.expectedError, documentPath))
			} else {
				require.NoError(testInstance, runError)
			}
			require.Equal(testInstance, testCase.expectedOutput, output.String())
			require.Equal(testInstance, 1, observerLogs.FilterMessage("task audit completed").Len())
		})
	}
}

func TestCommandReportsUnreadableDocument(testInstance *testing.T) {
	builder := audit.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	runError := command.RunE(command, []string{filepath.Join(testInstance.TempDir(), "missing.md")})
	require.ErrorIs(testInstance, runError, tasks.ErrDocumentUnreadable)
}
