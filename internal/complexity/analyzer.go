package complexity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	issuesFoundMessageConstant           = "complexity issues found"
	issuesFoundErrorTemplateConstant     = "%w: %s (%d issues)"
	tooLongIssueTemplateConstant         = "❌ File is too long (%d lines). Consider splitting."
	branchingIssueTemplateConstant       = "⚠️ High branching complexity (%d conditionals)."
	nestingIssueTemplateConstant         = "❌ Excessive nesting detected (> %d levels). Refactor immediately."
	lineSeparatorConstant                = "\n"
	carriageReturnConstant               = "\r"
	conditionalSpacedTokenConstant       = "if ("
	conditionalCompactTokenConstant      = "if("
	forLoopTokenConstant                 = "for ("
	whileLoopTokenConstant               = "while ("
	lineCommentPrefixConstant            = "//"
	blockCommentPrefixConstant           = "*"
	markupOpeningPrefixConstant          = "<"
	markupClosingSuffixConstant          = ">"
	closingPunctuationCharactersConstant = ")}];, "
	closingPrefixCharactersConstant      = ")}]"
	indentationColumnsPerLevelConstant   = 2
)

// ErrIssuesFound indicates the analyzed file exceeded at least one threshold.
var ErrIssuesFound = errors.New(issuesFoundMessageConstant)

// Metrics are the raw heuristics measured over a source file.
type Metrics struct {
	TotalLines       int
	ConditionalCount int
	LoopCount        int
	MaxIndentation   int
}

// Analysis pairs the metrics of a file with the issues they triggered.
type Analysis struct {
	Path         string
	Metrics      Metrics
	NestingLimit int
	Issues       []string
}

// Passed reports whether no threshold was exceeded.
func (analysis Analysis) Passed() bool {
	return len(analysis.Issues) == 0
}

// Analyzer applies complexity thresholds to source text.
type Analyzer struct {
	configuration CommandConfiguration
}

// NewAnalyzer constructs an Analyzer with sanitized thresholds.
func NewAnalyzer(configuration CommandConfiguration) *Analyzer {
	return &Analyzer{configuration: configuration.Sanitize()}
}

// Analyze measures text and evaluates the length, branching, and nesting thresholds in that order.
func (analyzer *Analyzer) Analyze(path string, text string) Analysis {
	metrics := Measure(text)
	nestingLimit := analyzer.configuration.NestingLimitFor(path)

	issues := []string{}
	if metrics.TotalLines > analyzer.configuration.MaxLines {
		issues = append(issues, fmt.Sprintf(tooLongIssueTemplateConstant, metrics.TotalLines))
	}
	if metrics.ConditionalCount > analyzer.configuration.MaxConditionals {
		issues = append(issues, fmt.Sprintf(branchingIssueTemplateConstant, metrics.ConditionalCount))
	}
	if metrics.MaxIndentation > nestingLimit {
		issues = append(issues, fmt.Sprintf(nestingIssueTemplateConstant, nestingLimit/indentationColumnsPerLevelConstant))
	}

	return Analysis{Path: path, Metrics: metrics, NestingLimit: nestingLimit, Issues: issues}
}

// Measure counts lines, conditionals, loops, and the deepest logic indentation of text.
func Measure(text string) Metrics {
	metrics := Metrics{}
	for _, line := range splitLines(text) {
		metrics.TotalLines++
		if strings.Contains(line, conditionalSpacedTokenConstant) || strings.Contains(line, conditionalCompactTokenConstant) {
			metrics.ConditionalCount++
		}
		if strings.Contains(line, forLoopTokenConstant) || strings.Contains(line, whileLoopTokenConstant) {
			metrics.LoopCount++
		}

		indentation, counted := measureIndentation(line)
		if counted && indentation > metrics.MaxIndentation {
			metrics.MaxIndentation = indentation
		}
	}
	return metrics
}

func splitLines(text string) []string {
	if len(text) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, lineSeparatorConstant), lineSeparatorConstant)
	for index, line := range lines {
		lines[index] = strings.TrimSuffix(line, carriageReturnConstant)
	}
	return lines
}

// measureIndentation returns the leading whitespace width of a logic line. Blank lines,
// comments, markup layout, and closing punctuation are not counted.
func measureIndentation(line string) (int, bool) {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	if len(stripped) == 0 {
		return 0, false
	}
	if strings.HasPrefix(stripped, lineCommentPrefixConstant) || strings.HasPrefix(stripped, blockCommentPrefixConstant) {
		return 0, false
	}
	if strings.HasPrefix(stripped, markupOpeningPrefixConstant) || strings.HasSuffix(stripped, markupClosingSuffixConstant) {
		return 0, false
	}
	if len(strings.Trim(stripped, closingPunctuationCharactersConstant)) == 0 {
		return 0, false
	}
	if strings.ContainsAny(stripped[:1], closingPrefixCharactersConstant) {
		return 0, false
	}
	return utf8.RuneCountInString(line[:len(line)-len(stripped)]), true
}

func newIssuesFoundError(analysis Analysis) error {
	return fmt.Errorf(issuesFoundErrorTemplateConstant, ErrIssuesFound, analysis.Path, len(analysis.Issues))
}
