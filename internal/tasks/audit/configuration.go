package audit

const (
	defaultWIPLimitConstant              = 2
	defaultMinimumDocumentLengthConstant = 10
)

// CommandConfiguration captures the health policy thresholds for task-audit.
type CommandConfiguration struct {
	WIPLimit              int `mapstructure:"wip_limit"`
	MinimumDocumentLength int `mapstructure:"minimum_document_length"`
}

// DefaultCommandConfiguration returns the stock health policy.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		WIPLimit:              defaultWIPLimitConstant,
		MinimumDocumentLength: defaultMinimumDocumentLengthConstant,
	}
}

// Sanitize replaces negative thresholds with defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	if sanitized.WIPLimit < 0 {
		sanitized.WIPLimit = defaultWIPLimitConstant
	}
	if sanitized.MinimumDocumentLength < 0 {
		sanitized.MinimumDocumentLength = defaultMinimumDocumentLengthConstant
	}
	return sanitized
}
