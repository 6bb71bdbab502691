package inmemory

import (
	"sync"

	"chatagotchi/internal/app/ports"
)

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionApplied  uint64            `json:"action_applied"`
	ActionConflict uint64            `json:"action_conflict"`
	ActionFailure  uint64            `json:"action_failure"`
	ByOutcome      map[string]uint64 `json:"by_outcome"`
}

// Recorder counts applied game actions by outcome plus write conflicts and
// failures, for the ops KPI endpoint.
type Recorder struct {
	mu        sync.Mutex
	applied   uint64
	conflict  uint64
	failure   uint64
	byOutcome map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
	}
}

func (r *Recorder) RecordAction(outcome ports.ActionOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied++
	r.byOutcome[string(outcome)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionApplied:  r.applied,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.applied + r.conflict + r.failure,
		ByOutcome:      make(map[string]uint64, len(r.byOutcome)),
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
