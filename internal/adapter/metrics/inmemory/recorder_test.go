package inmemory

import (
	"sync"
	"testing"

	"homestead/internal/domain/farm"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(farm.ActionHarvest, farm.ResultOK)
	r.RecordSuccess(farm.ActionClearTerritory, farm.ResultStarted)
	r.RecordConflict(farm.ActionHarvest)
	r.RecordFailure("")

	s := r.Snapshot()
	if s.ActionTotal != 4 {
		t.Fatalf("expected total 4, got %d", s.ActionTotal)
	}
	if s.ActionSuccess != 2 {
		t.Fatalf("expected success 2, got %d", s.ActionSuccess)
	}
	if s.ActionConflict != 1 {
		t.Fatalf("expected conflict 1, got %d", s.ActionConflict)
	}
	if s.ActionFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.ActionFailure)
	}
	if s.ByResultCode[string(farm.ResultOK)] != 1 {
		t.Fatalf("expected result ok count 1")
	}
	if s.ByResultCode[string(farm.ResultStarted)] != 1 {
		t.Fatalf("expected result started count 1")
	}
	harvest := s.ByAction[string(farm.ActionHarvest)]
	if harvest.Success != 1 || harvest.Conflict != 1 {
		t.Fatalf("unexpected harvest counts: %+v", harvest)
	}
	if s.ByAction["unknown"].Failure != 1 {
		t.Fatalf("expected untyped failure under unknown, got %+v", s.ByAction)
	}
}

func TestRecorderSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(farm.ActionPlant, farm.ResultOK)
	s := r.Snapshot()
	s.ByResultCode[string(farm.ResultOK)] = 99

	if got := r.Snapshot().ByResultCode[string(farm.ResultOK)]; got != 1 {
		t.Fatalf("snapshot mutation leaked into recorder: got=%d want=1", got)
	}
}

func TestRecorderConcurrentWrites(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RecordSuccess(farm.ActionFeed, farm.ResultOK)
		}()
	}
	wg.Wait()
	if got := r.Snapshot().ByAction[string(farm.ActionFeed)].Success; got != 50 {
		t.Fatalf("got=%d want=50", got)
	}
}
