package gitdiag

import (
	"strings"
	"time"
)

const (
	defaultRepositoryPathConstant     = "."
	defaultStatusOutputFileConstant   = "git_status.txt"
	defaultBranchesOutputFileConstant = "branches.txt"
	defaultMainBranchConstant         = "main"
	defaultRemoteNameConstant         = "origin"
	defaultRecentCommitCountConstant  = 5
	defaultCommandTimeoutConstant     = 30 * time.Second
)

// CommandConfiguration captures settings shared by the git diagnostic dumpers.
type CommandConfiguration struct {
	RepositoryPath     string        `mapstructure:"repository_path"`
	StatusOutputFile   string        `mapstructure:"status_output_file"`
	BranchesOutputFile string        `mapstructure:"branches_output_file"`
	MainBranch         string        `mapstructure:"main_branch"`
	RemoteName         string        `mapstructure:"remote_name"`
	RecentCommitCount  int           `mapstructure:"recent_commit_count"`
	CommandTimeout     time.Duration `mapstructure:"command_timeout"`
}

// DefaultCommandConfiguration returns the settings used when nothing is configured.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RepositoryPath:     defaultRepositoryPathConstant,
		StatusOutputFile:   defaultStatusOutputFileConstant,
		BranchesOutputFile: defaultBranchesOutputFileConstant,
		MainBranch:         defaultMainBranchConstant,
		RemoteName:         defaultRemoteNameConstant,
		RecentCommitCount:  defaultRecentCommitCountConstant,
		CommandTimeout:     defaultCommandTimeoutConstant,
	}
}

// Sanitize trims values and restores defaults for empty or invalid entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration
	sanitized.RepositoryPath = trimOrDefault(configuration.RepositoryPath, defaults.RepositoryPath)
	sanitized.StatusOutputFile = trimOrDefault(configuration.StatusOutputFile, defaults.StatusOutputFile)
	sanitized.BranchesOutputFile = trimOrDefault(configuration.BranchesOutputFile, defaults.BranchesOutputFile)
	sanitized.MainBranch = trimOrDefault(configuration.MainBranch, defaults.MainBranch)
	sanitized.RemoteName = trimOrDefault(configuration.RemoteName, defaults.RemoteName)
	if sanitized.RecentCommitCount <= 0 {
		sanitized.RecentCommitCount = defaults.RecentCommitCount
	}
	if sanitized.CommandTimeout < 0 {
		sanitized.CommandTimeout = defaults.CommandTimeout
	}
	return sanitized
}

func trimOrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallback
	}
	return trimmed
}
