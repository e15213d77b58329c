package qatracker

import "strings"

const defaultOutputPathConstant = "SahayakAI_QA_Tracker.xlsx"

// CommandConfiguration captures where qa-tracker reads scenarios and writes the workbook.
type CommandConfiguration struct {
	OutputPath  string `mapstructure:"output_path"`
	DatasetPath string `mapstructure:"dataset_path"`
}

// DefaultCommandConfiguration writes the embedded dataset to the stock workbook name.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{OutputPath: defaultOutputPathConstant}
}

// Sanitize trims paths and restores the default output path when blank.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.OutputPath = strings.TrimSpace(sanitized.OutputPath)
	sanitized.DatasetPath = strings.TrimSpace(sanitized.DatasetPath)
	if len(sanitized.OutputPath) == 0 {
		sanitized.OutputPath = defaultOutputPathConstant
	}
	return sanitized
}
