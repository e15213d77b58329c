package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	schemaResourceTemplateConstant  = "https://github.com/temirov/devscripts/schemas/%s"
	schemaRegistrationErrorTemplate = "failed to register schema %s: %w"
	schemaCompilationErrorTemplate  = "failed to compile schema %s: %w"
	documentEncodingErrorTemplate   = "failed to encode document for validation: %w"
	validationFailedMessageConstant = "document does not match schema"
	violationTemplateConstant       = "%s: %s"
	violationsJoinSeparatorConstant = "; "
	validationFailureErrorTemplate  = "%v: %s"
	documentRootLocationConstant    = "/"
	jsonPointerPrefixConstant       = "#"
)

// ErrValidationFailed indicates a document violated its schema.
var ErrValidationFailed = errors.New(validationFailedMessageConstant)

// Violation locates a single schema failure within a document.
type Violation struct {
	Location string
	Message  string
}

// ValidationError aggregates every leaf violation reported by the schema engine.
type ValidationError struct {
	Violations []Violation
}

// Error joins the violations into a single line.
func (validationError *ValidationError) Error() string {
	formattedViolations := make([]string, 0, len(validationError.Violations))
	for _, violation := range validationError.Violations {
		formattedViolations = append(formattedViolations, fmt.Sprintf(violationTemplateConstant, violation.Location, violation.Message))
	}
	return fmt.Sprintf(validationFailureErrorTemplate, ErrValidationFailed, strings.Join(formattedViolations, violationsJoinSeparatorConstant))
}

// Unwrap exposes ErrValidationFailed.
func (validationError *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Validator checks documents against a compiled JSON schema.
type Validator struct {
	compiledSchema *jsonschema.Schema
}

// NewValidator compiles an in-memory schema document registered under name.
func NewValidator(name string, schemaDocument []byte) (*Validator, error) {
	resourceURL := fmt.Sprintf(schemaResourceTemplateConstant, name)

	compiler := jsonschema.NewCompiler()
	if registrationError := compiler.AddResource(resourceURL, bytes.NewReader(schemaDocument)); registrationError != nil {
		return nil, fmt.Errorf(schemaRegistrationErrorTemplate, name, registrationError)
	}

	compiledSchema, compilationError := compiler.Compile(resourceURL)
	if compilationError != nil {
		return nil, fmt.Errorf(schemaCompilationErrorTemplate, name, compilationError)
	}

	return &Validator{compiledSchema: compiledSchema}, nil
}

// Validate encodes value as JSON and checks it against the schema.
func (validator *Validator) Validate(value any) error {
	encodedDocument, encodingError := json.Marshal(value)
	if encodingError != nil {
		return fmt.Errorf(documentEncodingErrorTemplate, encodingError)
	}

	var genericDocument any
	if decodingError := json.Unmarshal(encodedDocument, &genericDocument); decodingError != nil {
		return fmt.Errorf(documentEncodingErrorTemplate, decodingError)
	}

	validationFailure := validator.compiledSchema.Validate(genericDocument)
	if validationFailure == nil {
		return nil
	}

	var schemaError *jsonschema.ValidationError
	if !errors.As(validationFailure, &schemaError) {
		return validationFailure
	}

	aggregated := &ValidationError{}
	collectViolations(aggregated, schemaError)
	return aggregated
}

func collectViolations(aggregated *ValidationError, schemaError *jsonschema.ValidationError) {
	if len(schemaError.Causes) == 0 {
		aggregated.Violations = append(aggregated.Violations, Violation{
			Location: normalizeLocation(schemaError.InstanceLocation),
			Message:  schemaError.Message,
		})
		return
	}

	for _, cause := range schemaError.Causes {
		collectViolations(aggregated, cause)
	}
}

func normalizeLocation(instanceLocation string) string {
	trimmedLocation := strings.TrimPrefix(instanceLocation, jsonPointerPrefixConstant)
	if len(trimmedLocation) == 0 {
		return documentRootLocationConstant
	}
	return trimmedLocation
}
