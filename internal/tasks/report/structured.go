package report

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/temirov/devscripts/internal/schema"
)

const (
	statusReportSchemaNameConstant   = "status_report.schema.json"
	unsupportedFormatMessageConstant = "unsupported report format"
	unsupportedFormatErrorTemplate   = "%w: %q (expected markdown, json, or yaml)"
	payloadValidationErrorTemplate   = "status report payload invalid: %w"
	payloadEncodingErrorTemplate     = "failed to encode status report as %s: %w"
	jsonIndentPrefixConstant         = ""
	jsonIndentConstant               = "  "
	formatMarkdownStringConstant     = "markdown"
	formatJSONStringConstant         = "json"
	formatYAMLStringConstant         = "yaml"
	trailingNewlineConstant          = "\n"
)

//go:embed schemas/status_report.schema.json
var statusReportSchemaDocument []byte

// ErrUnsupportedFormat indicates the requested output format is unknown.
var ErrUnsupportedFormat = errors.New(unsupportedFormatMessageConstant)

// Format selects the report encoding.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = Format(formatMarkdownStringConstant)
	FormatJSON     Format = Format(formatJSONStringConstant)
	FormatYAML     Format = Format(formatYAMLStringConstant)
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(unsupportedFormatErrorTemplate, ErrUnsupportedFormat, value)
	}
}

// Payload is the machine-readable form of a Summary.
type Payload struct {
	Date              string          `json:"date" yaml:"date"`
	Status            PayloadStatus   `json:"status" yaml:"status"`
	Progress          PayloadProgress `json:"progress" yaml:"progress"`
	ActiveWork        []string        `json:"active_work" yaml:"active_work"`
	RecentlyCompleted []string        `json:"recently_completed" yaml:"recently_completed"`
	UpNext            []string        `json:"up_next" yaml:"up_next"`
}

// PayloadStatus carries the health classification.
type PayloadStatus struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

// PayloadProgress carries completion counts.
type PayloadProgress struct {
	Done       int     `json:"done" yaml:"done"`
	Total      int     `json:"total" yaml:"total"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// NewPayload converts a Summary into its machine-readable form.
func NewPayload(summary Summary) Payload {
	return Payload{
		Date:              summary.Date,
		Status:            PayloadStatus{Code: summary.Health.Code(), Label: string(summary.Health)},
		Progress:          PayloadProgress{Done: summary.DoneCount, Total: summary.TotalCount, Percentage: summary.CompletionPercentage},
		ActiveWork:        copyItems(summary.ActiveWork),
		RecentlyCompleted: copyItems(summary.RecentlyCompleted),
		UpNext:            copyItems(summary.UpNext),
	}
}

var (
	payloadValidatorOnce  sync.Once
	payloadValidator      *schema.Validator
	payloadValidatorError error
)

func resolvePayloadValidator() (*schema.Validator, error) {
	payloadValidatorOnce.Do(func() {
		payloadValidator, payloadValidatorError = schema.NewValidator(statusReportSchemaNameConstant, statusReportSchemaDocument)
	})
	return payloadValidator, payloadValidatorError
}

// Render encodes the summary in the requested format. Structured formats are schema-checked first.
func Render(format Format, summary Summary) (string, error) {
	if format == FormatMarkdown {
		return RenderMarkdown(summary), nil
	}
	if format != FormatJSON && format != FormatYAML {
		return "", fmt.Errorf(unsupportedFormatErrorTemplate, ErrUnsupportedFormat, string(format))
	}

	payload := NewPayload(summary)
	validator, validatorError := resolvePayloadValidator()
	if validatorError != nil {
		return "", validatorError
	}
	if validationError := validator.Validate(payload); validationError != nil {
		return "", fmt.Errorf(payloadValidationErrorTemplate, validationError)
	}

	var encoded []byte
	var encodingError error
	if format == FormatJSON {
		encoded, encodingError = json.MarshalIndent(payload, jsonIndentPrefixConstant, jsonIndentConstant)
	} else {
		encoded, encodingError = yaml.Marshal(payload)
	}
	if encodingError != nil {
		return "", fmt.Errorf(payloadEncodingErrorTemplate, format, encodingError)
	}
	return strings.TrimSuffix(string(encoded), trailingNewlineConstant), nil
}
