package report

import "github.com/temirov/devscripts/internal/tasks"

const (
	healthOnTrackLabelConstant            = "🟢 On Track"
	healthTooMuchWIPLabelConstant         = "🟡 At Risk (Too much WIP)"
	healthNoActiveWorkLabelConstant       = "🟡 At Risk (No active work)"
	healthOnTrackCodeConstant             = "on_track"
	healthTooMuchWIPCodeConstant          = "at_risk_too_much_wip"
	healthNoActiveWorkCodeConstant        = "at_risk_no_active_work"
	healthyInProgressCeilingCountConstant = 1
)

// Health is the board classification shown in the executive summary.
type Health string

// Supported classifications.
const (
	HealthOnTrack      Health = Health(healthOnTrackLabelConstant)
	HealthTooMuchWIP   Health = Health(healthTooMuchWIPLabelConstant)
	HealthNoActiveWork Health = Health(healthNoActiveWorkLabelConstant)
)

var healthCodes = map[Health]string{
	HealthOnTrack:      healthOnTrackCodeConstant,
	HealthTooMuchWIP:   healthTooMuchWIPCodeConstant,
	HealthNoActiveWork: healthNoActiveWorkCodeConstant,
}

// Code returns the machine-readable identifier of the classification.
func (health Health) Code() string {
	return healthCodes[health]
}

// ClassifyHealth derives the board health. The idle-board rule is applied last and wins.
func ClassifyHealth(snapshot tasks.Snapshot) Health {
	health := HealthOnTrack
	if len(snapshot.InProgress) > healthyInProgressCeilingCountConstant {
		health = HealthTooMuchWIP
	}
	if len(snapshot.InProgress) == 0 && len(snapshot.Todo) > 0 {
		health = HealthNoActiveWork
	}
	return health
}
