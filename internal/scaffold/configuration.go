package scaffold

import "strings"

const (
	defaultTestDirectoryConstant = "__tests__"
	defaultTestSuffixConstant    = ".test.ts"
)

// CommandConfiguration captures where test-scaffold places generated files.
type CommandConfiguration struct {
	TestDirectory string `mapstructure:"test_directory"`
	TestSuffix    string `mapstructure:"test_suffix"`
}

// DefaultCommandConfiguration returns the vitest layout used by the web app.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		TestDirectory: defaultTestDirectoryConstant,
		TestSuffix:    defaultTestSuffixConstant,
	}
}

// Sanitize trims values and restores defaults for empty entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.TestDirectory = strings.TrimSpace(configuration.TestDirectory)
	if len(sanitized.TestDirectory) == 0 {
		sanitized.TestDirectory = defaultTestDirectoryConstant
	}
	sanitized.TestSuffix = strings.TrimSpace(configuration.TestSuffix)
	if len(sanitized.TestSuffix) == 0 {
		sanitized.TestSuffix = defaultTestSuffixConstant
	}
	return sanitized
}
