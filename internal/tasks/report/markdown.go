package report

import (
	"fmt"
	"strings"
)

const (
	markdownTitleTemplateConstant           = "# Daily Status Report - %s\n"
	markdownExecutiveSummaryHeaderConstant  = "\n## 1. Executive Summary\n"
	markdownStatusLineTemplateConstant      = "*   **Status:** %s\n"
	markdownProgressLineTemplateConstant    = "*   **Progress:** %d/%d tasks (%.1f%%)\n"
	markdownActiveWorkHeaderConstant        = "\n## 2. Active Work (In Progress)\n"
	markdownActiveItemTemplateConstant      = "*   🏗️ %s\n"
	markdownNoActiveItemsConstant           = "*   (No active items - Ready to pull)\n"
	markdownRecentlyCompletedHeaderConstant = "\n## 3. Recently Completed\n"
	markdownCompletedItemTemplateConstant   = "*   ✅ %s\n"
	markdownNoCompletedItemsConstant        = "*   (No verification of completion yet)\n"
	markdownUpNextHeaderTemplateConstant    = "\n## 4. Up Next (Top %d)\n"
	markdownUpNextItemTemplateConstant      = "*   Drafting: %s\n"
)

// RenderMarkdown produces the daily status report document.
func RenderMarkdown(summary Summary) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, markdownTitleTemplateConstant, summary.Date)

	builder.WriteString(markdownExecutiveSummaryHeaderConstant)
	fmt.Fprintf(&builder, markdownStatusLineTemplateConstant, summary.Health)
	fmt.Fprintf(&builder, markdownProgressLineTemplateConstant, summary.DoneCount, summary.TotalCount, summary.CompletionPercentage)

	builder.WriteString(markdownActiveWorkHeaderConstant)
	if len(summary.ActiveWork) == 0 {
		builder.WriteString(markdownNoActiveItemsConstant)
	}
	for _, item := range summary.ActiveWork {
		fmt.Fprintf(&builder, markdownActiveItemTemplateConstant, item)
	}

	builder.WriteString(markdownRecentlyCompletedHeaderConstant)
	if len(summary.RecentlyCompleted) == 0 {
		builder.WriteString(markdownNoCompletedItemsConstant)
	}
	for _, item := range summary.RecentlyCompleted {
		fmt.Fprintf(&builder, markdownCompletedItemTemplateConstant, item)
	}

	if summary.HasPendingWork {
		fmt.Fprintf(&builder, markdownUpNextHeaderTemplateConstant, summary.UpNextLimit)
		for _, item := range summary.UpNext {
			fmt.Fprintf(&builder, markdownUpNextItemTemplateConstant, item)
		}
	}

	return builder.String()
}
