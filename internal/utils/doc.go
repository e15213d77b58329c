// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses ConfigurationLoader, which layers embedded defaults, configuration
// files, and environment variables through Viper and mapstructure decode hooks,
// and LoggerFactory, which builds zap loggers writing diagnostics to standard error.
package utils
