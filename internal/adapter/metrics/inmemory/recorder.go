package inmemory

import (
	"sync"

	"homestead/internal/domain/farm"
)

type ActionCounts struct {
	Success  uint64 `json:"success"`
	Conflict uint64 `json:"conflict"`
	Failure  uint64 `json:"failure"`
}

type Snapshot struct {
	ActionTotal    uint64                  `json:"action_total"`
	ActionSuccess  uint64                  `json:"action_success"`
	ActionConflict uint64                  `json:"action_conflict"`
	ActionFailure  uint64                  `json:"action_failure"`
	ByResultCode   map[string]uint64       `json:"by_result_code"`
	ByAction       map[string]ActionCounts `json:"by_action"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byResult map[string]uint64
	byAction map[string]ActionCounts
}

func NewRecorder() *Recorder {
	return &Recorder{
		byResult: map[string]uint64{},
		byAction: map[string]ActionCounts{},
	}
}

func (r *Recorder) RecordSuccess(action farm.ActionType, resultCode farm.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byResult[string(resultCode)]++
	c := r.byAction[actionKey(action)]
	c.Success++
	r.byAction[actionKey(action)] = c
}

func (r *Recorder) RecordConflict(action farm.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
	c := r.byAction[actionKey(action)]
	c.Conflict++
	r.byAction[actionKey(action)] = c
}

func (r *Recorder) RecordFailure(action farm.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	c := r.byAction[actionKey(action)]
	c.Failure++
	r.byAction[actionKey(action)] = c
}

// Rejected requests may not carry a usable action type.
func actionKey(action farm.ActionType) string {
	if action == "" {
		return "unknown"
	}
	return string(action)
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:  r.success,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.success + r.conflict + r.failure,
		ByResultCode:   make(map[string]uint64, len(r.byResult)),
		ByAction:       make(map[string]ActionCounts, len(r.byAction)),
	}
	for k, v := range r.byResult {
		out.ByResultCode[k] = v
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
