package qatracker_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/devscripts/internal/qatracker"
)

func TestCommandWritesWorkbook(testInstance *testing.T) {
	testCases := []struct {
		name               string
		useDatasetFlag     bool
		expectedSheetCount int
		expectedScenarios  int64
	}{
		{name: "embedded_dataset", expectedSheetCount: 5, expectedScenarios: 24},
		{name: "dataset_flag", useDatasetFlag: true, expectedSheetCount: 3, expectedScenarios: 1},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			workingDirectory := testInstance.TempDir()
			outputPath := filepath.Join(workingDirectory, "tracker.xlsx")
			arguments := []string{outputPath}
			if testCase.useDatasetFlag {
				datasetPath := filepath.Join(workingDirectory, "scenarios.toml")
				require.NoError(testInstance, os.WriteFile(datasetPath, []byte(minimalDatasetConstant), 0o644))
				arguments = append(arguments, "--dataset", datasetPath)
			}

			observerCore, observerLogs := observer.New(zap.InfoLevel)
			builder := qatracker.CommandBuilder{LoggerProvider: func() *zap.Logger { return zap.New(observerCore) }}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			output := &bytes.Buffer{}
			command.SetOut(output)
			command.SetErr(&bytes.Buffer{})
			command.SetArgs(arguments)

			require.NoError(testInstance, command.Execute())
			require.Equal(testInstance, "Created QA Tracker at: "+outputPath+"\n", output.String())

			workbook, openError := excelize.OpenFile(outputPath)
			require.NoError(testInstance, openError)
			defer workbook.Close()
			require.Len(testInstance, workbook.GetSheetList(), testCase.expectedSheetCount)

			createdEntries := observerLogs.FilterMessage("qa tracker created").All()
			require.Len(testInstance, createdEntries, 1)
			require.Equal(testInstance, testCase.expectedScenarios, createdEntries[0].ContextMap()["scenarios"])
		})
	}
}

func TestCommandUsesConfiguredOutputPath(testInstance *testing.T) {
	outputPath := filepath.Join(testInstance.TempDir(), "configured.xlsx")
	builder := qatracker.CommandBuilder{
		ConfigurationProvider: func() qatracker.CommandConfiguration {
			return qatracker.CommandConfiguration{OutputPath: "  " + outputPath + "  "}
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetOut(&bytes.Buffer{})
	command.SetArgs([]string{})

	require.NoError(testInstance, command.Execute())
	_, statError := os.Stat(outputPath)
	require.NoError(testInstance, statError)
}

func TestCommandReportsUnreadableDataset(testInstance *testing.T) {
	builder := qatracker.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SilenceUsage = true
	command.SetArgs([]string{filepath.Join(testInstance.TempDir(), "out.xlsx"), "--dataset", filepath.Join(testInstance.TempDir(), "missing.toml")})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "failed to read QA dataset")
}

func TestDefaultConfigurationSanitize(testInstance *testing.T) {
	require.Equal(testInstance, "SahayakAI_QA_Tracker.xlsx", qatracker.CommandConfiguration{}.Sanitize().OutputPath)
	require.Equal(testInstance, qatracker.DefaultCommandConfiguration(), qatracker.CommandConfiguration{OutputPath: " SahayakAI_QA_Tracker.xlsx "}.Sanitize())
}
