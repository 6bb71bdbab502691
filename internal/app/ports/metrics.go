package ports

// ActionOutcome classifies the result of one applied game action for KPI
// recording.
type ActionOutcome string

const (
	OutcomeAlive     ActionOutcome = "alive"
	OutcomeDied      ActionOutcome = "died"
	OutcomeCompleted ActionOutcome = "completed"
)

type GameMetrics interface {
	RecordAction(outcome ActionOutcome)
	RecordConflict()
	RecordFailure()
}
