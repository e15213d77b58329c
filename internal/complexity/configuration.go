package complexity

import "strings"

const (
	defaultMaxLinesConstant           = 200
	defaultMaxConditionalsConstant    = 10
	defaultNestingLimitConstant       = 16
	defaultMarkupNestingLimitConstant = 24
	defaultMarkupExtensionConstant    = ".tsx"
	extensionPrefixConstant           = "."
)

// NestingLimit overrides the indentation ceiling for files with a given extension.
type NestingLimit struct {
	Extension string `mapstructure:"extension"`
	Limit     int    `mapstructure:"limit"`
}

// CommandConfiguration captures the thresholds of complexity-check.
type CommandConfiguration struct {
	MaxLines            int            `mapstructure:"max_lines"`
	MaxConditionals     int            `mapstructure:"max_conditionals"`
	DefaultNestingLimit int            `mapstructure:"default_nesting_limit"`
	NestingLimits       []NestingLimit `mapstructure:"nesting_limits"`
}

// DefaultCommandConfiguration returns thresholds tuned for TypeScript and React sources.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		MaxLines:            defaultMaxLinesConstant,
		MaxConditionals:     defaultMaxConditionalsConstant,
		DefaultNestingLimit: defaultNestingLimitConstant,
		NestingLimits: []NestingLimit{
			{Extension: defaultMarkupExtensionConstant, Limit: defaultMarkupNestingLimitConstant},
		},
	}
}

// Sanitize replaces non-positive thresholds with defaults and normalizes extensions.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	if sanitized.MaxLines <= 0 {
		sanitized.MaxLines = defaultMaxLinesConstant
	}
	if sanitized.MaxConditionals <= 0 {
		sanitized.MaxConditionals = defaultMaxConditionalsConstant
	}
	if sanitized.DefaultNestingLimit <= 0 {
		sanitized.DefaultNestingLimit = defaultNestingLimitConstant
	}

	sanitized.NestingLimits = make([]NestingLimit, 0, len(configuration.NestingLimits))
	for _, nestingLimit := range configuration.NestingLimits {
		extension := strings.ToLower(strings.TrimSpace(nestingLimit.Extension))
		if len(extension) == 0 || nestingLimit.Limit <= 0 {
			continue
		}
		if !strings.HasPrefix(extension, extensionPrefixConstant) {
			extension = extensionPrefixConstant + extension
		}
		sanitized.NestingLimits = append(sanitized.NestingLimits, NestingLimit{Extension: extension, Limit: nestingLimit.Limit})
	}
	return sanitized
}

// NestingLimitFor returns the indentation ceiling that applies to path.
func (configuration CommandConfiguration) NestingLimitFor(path string) int {
	lowerPath := strings.ToLower(path)
	for _, nestingLimit := range configuration.NestingLimits {
		if strings.HasSuffix(lowerPath, nestingLimit.Extension) {
			return nestingLimit.Limit
		}
	}
	return configuration.DefaultNestingLimit
}
