package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/devscripts/cmd/cli"
	"github.com/temirov/devscripts/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
	readmeSnippetFileNameConstant    = "readme-config.yaml"
)

var knownToolSections = map[string]struct{}{
	"task_report":     {},
	"task_audit":      {},
	"complexity":      {},
	"test_scaffold":   {},
	"git_diagnostics": {},
	"qa_tracker":      {},
}

func readReadmeConfiguration(testInstance *testing.T) string {
	testInstance.Helper()
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	contentBytes, readError := os.ReadFile(filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant))
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	fenceEndRelativeIndex := strings.Index(contentText[headerIndex:], yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : headerIndex+fenceEndRelativeIndex])
}

func TestReadmeConfigurationNamesKnownSections(testInstance *testing.T) {
	var parsed struct {
		Tools map[string]any `yaml:"tools"`
	}
	require.NoError(testInstance, yaml.Unmarshal([]byte(readReadmeConfiguration(testInstance)), &parsed))
	require.NotEmpty(testInstance, parsed.Tools)

	for sectionName := range parsed.Tools {
		_, known := knownToolSections[sectionName]
		require.True(testInstance, known, sectionName)
	}
}

func TestReadmeConfigurationLoadsOverEmbeddedDefaults(testInstance *testing.T) {
	configurationPath := filepath.Join(testInstance.TempDir(), readmeSnippetFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(readReadmeConfiguration(testInstance)), 0o644))

	embeddedConfiguration, embeddedConfigurationType := cli.EmbeddedDefaultConfiguration()
	loader := utils.NewConfigurationLoader("config", "yaml", "DEVSCRIPTSDOCS", []string{testInstance.TempDir()})
	loader.SetEmbeddedConfiguration(embeddedConfiguration, embeddedConfigurationType)

	var configuration cli.ApplicationConfiguration
	_, loadError := loader.LoadConfiguration(configurationPath, map[string]any{}, &configuration)
	require.NoError(testInstance, loadError)

	require.Equal(testInstance, "json", configuration.Tools.TaskReport.Format)
	require.Equal(testInstance, 3, configuration.Tools.TaskAudit.WIPLimit)
	require.Equal(testInstance, 10, configuration.Tools.TaskAudit.MinimumDocumentLength)
	require.Equal(testInstance, 300, configuration.Tools.Complexity.MaxLines)
	require.Equal(testInstance, 20, configuration.Tools.Complexity.NestingLimitFor("App.vue"))
	require.Equal(testInstance, "master", configuration.Tools.GitDiagnostics.MainBranch)
	require.Equal(testInstance, time.Minute, configuration.Tools.GitDiagnostics.CommandTimeout)
	require.Equal(testInstance, "origin", configuration.Tools.GitDiagnostics.RemoteName)
	require.Equal(testInstance, "qa/scenarios.toml", configuration.Tools.QATracker.DatasetPath)
	require.Equal(testInstance, "SahayakAI_QA_Tracker.xlsx", configuration.Tools.QATracker.OutputPath)
}
