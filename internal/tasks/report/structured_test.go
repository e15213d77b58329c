package report_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/devscripts/internal/tasks"
	"github.com/temirov/devscripts/internal/tasks/report"
)

func TestParseFormat(testInstance *testing.T) {
	testCases := []struct {
		name           string
		value          string
		expectedFormat report.Format
		expectError    bool
	}{
		{name: "markdown", value: "markdown", expectedFormat: report.FormatMarkdown},
		{name: "json_mixed_case", value: " JSON ", expectedFormat: report.FormatJSON},
		{name: "yaml", value: "yaml", expectedFormat: report.FormatYAML},
		{name: "unknown", value: "html", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			format, parseError := report.ParseFormat(testCase.value)
			if testCase.expectError {
				require.ErrorIs(testInstance, parseError, report.ErrUnsupportedFormat)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedFormat, format)
		})
	}
}

func TestRenderStructuredFormats(testInstance *testing.T) {
	summary := report.Summarize(tasks.ParseSnapshot("- [ ] next\n- [/] now\n- [x] before"), fixedReportDate, defaultLimits())

	testCases := []struct {
		name   string
		format report.Format
		decode func([]byte, any) error
	}{
		{name: "json", format: report.FormatJSON, decode: json.Unmarshal},
		{name: "yaml", format: report.FormatYAML, decode: yaml.Unmarshal},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			rendered, renderError := report.Render(testCase.format, summary)
			require.NoError(testInstance, renderError)

			var decoded report.Payload
			require.NoError(testInstance, testCase.decode([]byte(rendered), &decoded))
			require.Equal(testInstance, report.NewPayload(summary), decoded)
			require.Equal(testInstance, "on_track", decoded.Status.Code)
			require.Equal(testInstance, []string{"now"}, decoded.ActiveWork)
		})
	}
}

func TestRenderStructuredEmptyListsAreArrays(testInstance *testing.T) {
	summary := report.Summarize(tasks.ParseSnapshot(""), fixedReportDate, defaultLimits())
	rendered, renderError := report.Render(report.FormatJSON, summary)
	require.NoError(testInstance, renderError)
	require.Contains(testInstance, rendered, `"active_work": []`)
	require.Contains(testInstance, rendered, `"up_next": []`)
}

func TestRenderRejectsCorruptSummary(testInstance *testing.T) {
	summary := report.Summarize(tasks.ParseSnapshot("- [x] a"), fixedReportDate, defaultLimits())
	summary.Date = "yesterday"

	_, renderError := report.Render(report.FormatJSON, summary)
	require.Error(testInstance, renderError)
	require.Contains(testInstance, renderError.Error(), "/date")
}

func TestRenderUnknownFormat(testInstance *testing.T) {
	_, renderError := report.Render(report.Format("pdf"), report.Summary{})
	require.ErrorIs(testInstance, renderError, report.ErrUnsupportedFormat)
}
