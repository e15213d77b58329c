package report

import "strings"

const (
	defaultRecentCompletedLimitConstant = 5
	defaultUpNextLimitConstant          = 3
)

// CommandConfiguration captures settings for the task-report command.
type CommandConfiguration struct {
	Format               string `mapstructure:"format"`
	RecentCompletedLimit int    `mapstructure:"recent_completed_limit"`
	UpNextLimit          int    `mapstructure:"up_next_limit"`
}

// DefaultCommandConfiguration returns the stock report settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Format:               string(FormatMarkdown),
		RecentCompletedLimit: defaultRecentCompletedLimitConstant,
		UpNextLimit:          defaultUpNextLimitConstant,
	}
}

// Sanitize normalizes the format and replaces non-positive limits with defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(FormatMarkdown)
	}
	if sanitized.RecentCompletedLimit <= 0 {
		sanitized.RecentCompletedLimit = defaultRecentCompletedLimitConstant
	}
	if sanitized.UpNextLimit <= 0 {
		sanitized.UpNextLimit = defaultUpNextLimitConstant
	}
	return sanitized
}

// Limits returns the section limits carried by the configuration.
func (configuration CommandConfiguration) Limits() Limits {
	return Limits{RecentCompleted: configuration.RecentCompletedLimit, UpNext: configuration.UpNextLimit}
}
