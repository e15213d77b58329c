package report

import (
	"time"

	"github.com/temirov/devscripts/internal/tasks"
)

const (
	reportDateLayoutConstant = "2006-01-02"
	percentageScaleConstant  = 100
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Limits bounds the list sections of a report.
type Limits struct {
	RecentCompleted int
	UpNext          int
}

// Summary is the computed content of a status report.
type Summary struct {
	Date                 string
	Health               Health
	DoneCount            int
	TotalCount           int
	CompletionPercentage float64
	ActiveWork           []string
	RecentlyCompleted    []string
	UpNext               []string
	UpNextLimit          int
	HasPendingWork       bool
}

// Summarize computes the report content for snapshot on the given date.
func Summarize(snapshot tasks.Snapshot, reportDate time.Time, limits Limits) Summary {
	totalCount := snapshot.TotalCount()
	completionPercentage := 0.0
	if totalCount > 0 {
		completionPercentage = float64(len(snapshot.Done)) / float64(totalCount) * percentageScaleConstant
	}

	return Summary{
		Date:                 reportDate.Format(reportDateLayoutConstant),
		Health:               ClassifyHealth(snapshot),
		DoneCount:            len(snapshot.Done),
		TotalCount:           totalCount,
		CompletionPercentage: completionPercentage,
		ActiveWork:           copyItems(snapshot.InProgress),
		RecentlyCompleted:    lastItems(snapshot.Done, limits.RecentCompleted),
		UpNext:               firstItems(snapshot.Todo, limits.UpNext),
		UpNextLimit:          limits.UpNext,
		HasPendingWork:       len(snapshot.Todo) > 0,
	}
}

func copyItems(items []string) []string {
	duplicated := make([]string, len(items))
	copy(duplicated, items)
	return duplicated
}

func firstItems(items []string, limit int) []string {
	if limit < len(items) {
		return copyItems(items[:limit])
	}
	return copyItems(items)
}

func lastItems(items []string, limit int) []string {
	if limit < len(items) {
		return copyItems(items[len(items)-limit:])
	}
	return copyItems(items)
}
