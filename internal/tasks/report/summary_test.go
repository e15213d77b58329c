package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/devscripts/internal/tasks"
	"github.com/temirov/devscripts/internal/tasks/report"
)

var fixedReportDate = time.Date(2026, time.February, 6, 9, 30, 0, 0, time.Local)

func defaultLimits() report.Limits {
	return report.DefaultCommandConfiguration().Limits()
}

func TestClassifyHealth(testInstance *testing.T) {
	testCases := []struct {
		name           string
		snapshot       tasks.Snapshot
		expectedHealth report.Health
	}{
		{name: "empty_board", snapshot: tasks.Snapshot{}, expectedHealth: report.HealthOnTrack},
		{name: "single_active_item", snapshot: tasks.Snapshot{InProgress: []string{"a"}, Todo: []string{"b", "c", "d", "e"}}, expectedHealth: report.HealthOnTrack},
		{name: "too_much_wip", snapshot: tasks.Snapshot{InProgress: []string{"a", "b"}}, expectedHealth: report.HealthTooMuchWIP},
		{name: "no_active_work", snapshot: tasks.Snapshot{Todo: []string{"a"}}, expectedHealth: report.HealthNoActiveWork},
		{name: "only_done", snapshot: tasks.Snapshot{Done: []string{"a", "b"}}, expectedHealth: report.HealthOnTrack},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedHealth, report.ClassifyHealth(testCase.snapshot))
		})
	}
}

func TestSummarizeCompletionPercentage(testInstance *testing.T) {
	testCases := []struct {
		name               string
		snapshot           tasks.Snapshot
		expectedPercentage float64
	}{
		{name: "no_items", snapshot: tasks.Snapshot{}, expectedPercentage: 0},
		{name: "all_done", snapshot: tasks.Snapshot{Done: []string{"a", "b"}}, expectedPercentage: 100},
		{name: "one_third", snapshot: tasks.Snapshot{Todo: []string{"a"}, InProgress: []string{"b"}, Done: []string{"c"}}, expectedPercentage: float64(1) / float64(3) * 100},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			summary := report.Summarize(testCase.snapshot, fixedReportDate, defaultLimits())
			require.InDelta(testInstance, testCase.expectedPercentage, summary.CompletionPercentage, 1e-9)
		})
	}
}

func TestSummarizeListLimits(testInstance *testing.T) {
	snapshot := tasks.Snapshot{
		Todo: []string{"t1", "t2", "t3", "t4"},
		Done: []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"},
	}

	summary := report.Summarize(snapshot, fixedReportDate, defaultLimits())
	require.Equal(testInstance, "2026-02-06", summary.Date)
	require.Equal(testInstance, []string{"d3", "d4", "d5", "d6", "d7"}, summary.RecentlyCompleted)
	require.Equal(testInstance, []string{"t1", "t2", "t3"}, summary.UpNext)
	require.True(testInstance, summary.HasPendingWork)

	summary.UpNext[0] = "mutated"
	require.Equal(testInstance, "t1", snapshot.Todo[0])
}
