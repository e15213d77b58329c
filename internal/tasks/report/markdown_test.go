package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/devscripts/internal/tasks"
	"github.com/temirov/devscripts/internal/tasks/report"
)

func TestRenderMarkdown(testInstance *testing.T) {
	testCases := []struct {
		name             string
		text             string
		expectedDocument string
	}{
		{
			name: "all_done_omits_up_next",
			text: "- [x] a\n- [x] b",
			expectedDocument: "# Daily Status Report - 2026-02-06\n" +
				"\n## 1. Executive Summary\n" +
				"*   **Status:** 🟢 On Track\n" +
				"*   **Progress:** 2/2 tasks (100.0%)\n" +
				"\n## 2. Active Work (In Progress)\n" +
				"*   (No active items - Ready to pull)\n" +
				"\n## 3. Recently Completed\n" +
				"*   ✅ a\n" +
				"*   ✅ b\n",
		},
		{
			name: "empty_document",
			text: "",
			expectedDocument: "# Daily Status Report - 2026-02-06\n" +
				"\n## 1. Executive Summary\n" +
				"*   **Status:** 🟢 On Track\n" +
				"*   **Progress:** 0/0 tasks (0.0%)\n" +
				"\n## 2. Active Work (In Progress)\n" +
				"*   (No active items - Ready to pull)\n" +
				"\n## 3. Recently Completed\n" +
				"*   (No verification of completion yet)\n",
		},
		{
			name: "one_active_four_todo",
			text: "- [/] build api\n- [ ] one\n- [ ] two\n- [ ] three\n- [ ] four",
			expectedDocument: "# Daily Status Report - 2026-02-06\n" +
				"\n## 1. Executive Summary\n" +
				"*   **Status:** 🟢 On Track\n" +
				"*   **Progress:** 0/5 tasks (0.0%)\n" +
				"\n## 2. Active Work (In Progress)\n" +
				"*   🏗️ build api\n" +
				"\n## 3. Recently Completed\n" +
				"*   (No verification of completion yet)\n" +
				"\n## 4. Up Next (Top 3)\n" +
				"*   Drafting: one\n" +
				"*   Drafting: two\n" +
				"*   Drafting: three\n",
		},
		{
			name: "idle_board",
			text: "- [ ] plan sprint\n- [x] kickoff\n- [x] retro",
			expectedDocument: "# Daily Status Report - 2026-02-06\n" +
				"\n## 1. Executive Summary\n" +
				"*   **Status:** 🟡 At Risk (No active work)\n" +
				"*   **Progress:** 2/3 tasks (66.7%)\n" +
				"\n## 2. Active Work (In Progress)\n" +
				"*   (No active items - Ready to pull)\n" +
				"\n## 3. Recently Completed\n" +
				"*   ✅ kickoff\n" +
				"*   ✅ retro\n" +
				"\n## 4. Up Next (Top 3)\n" +
				"*   Drafting: plan sprint\n",
		},
		{
			name: "too_much_wip",
			text: "- [/] a\n- [/] b\n- [x] c",
			expectedDocument: "# Daily Status Report - 2026-02-06\n" +
				"\n## 1. Executive Summary\n" +
				"*   **Status:** 🟡 At Risk (Too much WIP)\n" +
				"*   **Progress:** 1/3 tasks (33.3%)\n" +
				"\n## 2. Active Work (In Progress)\n" +
				"*   🏗️ a\n" +
				"*   🏗️ b\n" +
				"\n## 3. Recently Completed\n" +
				"*   ✅ c\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			summary := report.Summarize(tasks.ParseSnapshot(testCase.text), fixedReportDate, defaultLimits())
			require.Equal(testInstance, testCase.expectedDocument, report.RenderMarkdown(summary))
		})
	}
}
