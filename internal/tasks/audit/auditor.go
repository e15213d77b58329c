package audit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/temirov/devscripts/internal/tasks"
)

const (
	healthViolationMessageConstant       = "task health check failed"
	wipViolationTemplateConstant         = "🚨 WIP Violation: %d items in progress. Limit is %d."
	wipViolationItemTemplateConstant     = "   - %s"
	emptyDocumentIssueConstant           = "🚨 Task file appears empty/corrupted."
	healthViolationErrorTemplateConstant = "%w: %s (%d violations)"
)

// ErrHealthViolation indicates at least one health policy failed.
var ErrHealthViolation = errors.New(healthViolationMessageConstant)

// Result lists the issue lines produced by an evaluation.
// Violations counts failed policies; a WIP violation contributes several issue lines.
type Result struct {
	Issues     []string
	Violations int
}

// Passed reports whether no policy produced an issue.
func (result Result) Passed() bool {
	return len(result.Issues) == 0
}

// Auditor evaluates a task document against fixed health policies.
type Auditor struct {
	configuration CommandConfiguration
}

// NewAuditor constructs an Auditor with sanitized thresholds.
func NewAuditor(configuration CommandConfiguration) *Auditor {
	return &Auditor{configuration: configuration.Sanitize()}
}

// Evaluate applies the WIP policy and then the empty-document policy.
func (auditor *Auditor) Evaluate(document tasks.Document, snapshot tasks.Snapshot) Result {
	issues := []string{}
	violations := 0

	inProgressCount := len(snapshot.InProgress)
	if inProgressCount > auditor.configuration.WIPLimit {
		violations++
		issues = append(issues, fmt.Sprintf(wipViolationTemplateConstant, inProgressCount, auditor.configuration.WIPLimit))
		for _, item := range snapshot.InProgress {
			issues = append(issues, fmt.Sprintf(wipViolationItemTemplateConstant, item))
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(document.Text)) < auditor.configuration.MinimumDocumentLength {
		violations++
		issues = append(issues, emptyDocumentIssueConstant)
	}

	return Result{Issues: issues, Violations: violations}
}

func newHealthViolationError(documentPath string, result Result) error {
	return fmt.Errorf(healthViolationErrorTemplateConstant, ErrHealthViolation, documentPath, result.Violations)
}
