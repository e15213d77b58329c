package qatracker

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/devscripts/internal/dependencies"
	"github.com/temirov/devscripts/internal/filesystem"
)

const (
	commandUseNameConstant           = "qa-tracker"
	commandUsageTemplateConstant     = commandUseNameConstant + " [output.xlsx]"
	commandExampleTemplateConstant   = "devscripts qa-tracker\ndevscripts qa-tracker --dataset scenarios.toml tracker.xlsx"
	commandShortDescriptionConstant  = "Generate the multilingual QA tracking workbook"
	commandLongDescriptionConstant   = "qa-tracker writes an xlsx workbook with one sheet per language listing every test scenario and its prompt, plus a metadata sheet. Scenarios come from the embedded dataset unless --dataset names a TOML file."
	datasetFlagNameConstant          = "dataset"
	datasetFlagUsageConstant         = "Path to a TOML scenario dataset (defaults to the embedded dataset)"
	createdTemplateConstant          = "Created QA Tracker at: %s"
	datasetReadErrorTemplate         = "failed to read QA dataset %s: %w"
	workbookWriteErrorTemplate       = "failed to write QA tracker %s: %w"
	workbookFilePermissionsConstant  = 0o644
	trackerCreatedLogMessageConstant = "qa tracker created"
	logFieldOutputPathConstant       = "output_path"
	logFieldDatasetPathConstant      = "dataset_path"
	logFieldScenarioCountConstant    = "scenarios"
	logFieldLanguageCountConstant    = "languages"
	embeddedDatasetLabelConstant     = "embedded"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the qa-tracker command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	FileSystem            filesystem.FileSystem
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the qa-tracker command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
		Example: commandExampleTemplateConstant,
	}
	command.Flags().String(datasetFlagNameConstant, "", datasetFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		configuration.OutputPath = strings.TrimSpace(arguments[0])
	}
	if command.Flags().Changed(datasetFlagNameConstant) {
		datasetPath, flagError := command.Flags().GetString(datasetFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		configuration.DatasetPath = strings.TrimSpace(datasetPath)
	}

	fileSystem := dependencies.ResolveFileSystem(builder.FileSystem)
	dataset, datasetError := loadDataset(fileSystem, configuration.DatasetPath)
	if datasetError != nil {
		return datasetError
	}

	workbookBytes, encodingError := EncodeWorkbook(dataset)
	if encodingError != nil {
		return encodingError
	}
	if writeError := fileSystem.WriteFile(configuration.OutputPath, workbookBytes, workbookFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(workbookWriteErrorTemplate, configuration.OutputPath, writeError)
	}

	datasetLabel := configuration.DatasetPath
	if len(datasetLabel) == 0 {
		datasetLabel = embeddedDatasetLabelConstant
	}
	builder.resolveLogger().Info(
		trackerCreatedLogMessageConstant,
		zap.String(logFieldOutputPathConstant, configuration.OutputPath),
		zap.String(logFieldDatasetPathConstant, datasetLabel),
		zap.Int(logFieldLanguageCountConstant, len(dataset.Languages)),
		zap.Int(logFieldScenarioCountConstant, len(dataset.Scenarios)),
	)

	fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(createdTemplateConstant, configuration.OutputPath))
	return nil
}

func loadDataset(fileSystem filesystem.FileSystem, datasetPath string) (Dataset, error) {
	if len(datasetPath) == 0 {
		return DefaultDataset()
	}
	content, readError := fileSystem.ReadFile(datasetPath)
	if readError != nil {
		return Dataset{}, fmt.Errorf(datasetReadErrorTemplate, datasetPath, readError)
	}
	return ParseDataset(string(content))
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
