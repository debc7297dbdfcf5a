package action

import (
	"context"
	"sort"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPlayerRepo struct {
	byID map[string]economy.Player
}

func (r *stubPlayerRepo) GetByID(_ context.Context, playerID string) (economy.Player, error) {
	p, ok := r.byID[playerID]
	if !ok {
		return economy.Player{}, ports.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *stubPlayerRepo) SaveWithVersion(_ context.Context, player economy.Player, expectedVersion int64) error {
	current, ok := r.byID[player.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byID[player.ID] = player.Clone()
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[player.ID] = player.Clone()
	return nil
}

type conflictOnSavePlayerRepo struct {
	stubPlayerRepo
}

func (r *conflictOnSavePlayerRepo) SaveWithVersion(context.Context, economy.Player, int64) error {
	return ports.ErrConflict
}

type stubEntityRepo struct {
	byID map[string]lifecycle.Entity
}

func newStubEntityRepo(entities ...lifecycle.Entity) *stubEntityRepo {
	r := &stubEntityRepo{byID: map[string]lifecycle.Entity{}}
	for _, e := range entities {
		r.byID[e.ID] = e
	}
	return r
}

func (r *stubEntityRepo) Get(_ context.Context, ownerID, entityID string) (lifecycle.Entity, error) {
	e, ok := r.byID[entityID]
	if !ok || e.OwnerID != ownerID {
		return lifecycle.Entity{}, ports.ErrNotFound
	}
	return e, nil
}

func (r *stubEntityRepo) ListByOwner(_ context.Context, ownerID, location string) ([]lifecycle.Entity, error) {
	out := make([]lifecycle.Entity, 0, len(r.byID))
	for _, e := range r.byID {
		if e.OwnerID != ownerID || (location != "" && e.Location != location) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubEntityRepo) Insert(_ context.Context, entity lifecycle.Entity) error {
	for _, e := range r.byID {
		if e.OwnerID == entity.OwnerID && e.Location == entity.Location && e.Position == entity.Position {
			return ports.ErrOccupied
		}
	}
	r.byID[entity.ID] = entity
	return nil
}

func (r *stubEntityRepo) UpdateWithVersion(_ context.Context, entity lifecycle.Entity, expectedVersion int64) error {
	current, ok := r.byID[entity.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[entity.ID] = entity
	return nil
}

func (r *stubEntityRepo) Delete(_ context.Context, ownerID, entityID string) error {
	e, ok := r.byID[entityID]
	if !ok || e.OwnerID != ownerID {
		return ports.ErrNotFound
	}
	delete(r.byID, entityID)
	return nil
}

func (r *stubEntityRepo) byCategory(cat catalog.Category) []lifecycle.Entity {
	var out []lifecycle.Entity
	for _, e := range r.byID {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

type stubActionRepo struct {
	byKey map[string]ports.ActionExecutionRecord
}

func (r *stubActionRepo) GetByIdempotencyKey(_ context.Context, playerID, key string) (*ports.ActionExecutionRecord, error) {
	record, ok := r.byKey[playerID+"|"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := record
	return &copy, nil
}

func (r *stubActionRepo) SaveExecution(_ context.Context, execution ports.ActionExecutionRecord) error {
	r.byKey[execution.PlayerID+"|"+execution.IdempotencyKey] = execution
	return nil
}

type stubEventRepo struct {
	events []farm.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []farm.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByPlayerID(_ context.Context, _ string, limit int) ([]farm.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]farm.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

func (r *stubEventRepo) count(eventType string) int {
	n := 0
	for _, evt := range r.events {
		if evt.Type == eventType {
			n++
		}
	}
	return n
}

type stubActionMetrics struct {
	successCalls  int
	conflictCalls int
	failureCalls  int
	lastResult    farm.ResultCode
	lastAction    farm.ActionType
}

func (m *stubActionMetrics) RecordSuccess(action farm.ActionType, resultCode farm.ResultCode) {
	m.successCalls++
	m.lastAction = action
	m.lastResult = resultCode
}

func (m *stubActionMetrics) RecordConflict(action farm.ActionType) {
	m.conflictCalls++
	m.lastAction = action
}

func (m *stubActionMetrics) RecordFailure(action farm.ActionType) {
	m.failureCalls++
	m.lastAction = action
}

type stubJournal struct {
	entries []ports.JournalEntry
	err     error
}

func (j *stubJournal) Write(entry ports.JournalEntry) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, entry)
	return nil
}

// scriptedSource replays fixed draws and falls back to values that never
// trigger a drop or hazard.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.999
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

type manualClock struct {
	at time.Time
}

func (c *manualClock) Now() time.Time { return c.at }

func (c *manualClock) Advance(d time.Duration) { c.at = c.at.Add(d) }

type fixture struct {
	uc       UseCase
	players  *stubPlayerRepo
	entities *stubEntityRepo
	actions  *stubActionRepo
	events   *stubEventRepo
	metrics  *stubActionMetrics
	journal  *stubJournal
	random   *scriptedSource
	clock    *manualClock
}

var fixtureEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newFixture(start economy.Amounts, entities ...lifecycle.Entity) *fixture {
	clock := &manualClock{at: fixtureEpoch}
	player := economy.NewPlayer("p1", start, clock.at)
	player.Version = 1
	f := &fixture{
		players:  &stubPlayerRepo{byID: map[string]economy.Player{"p1": player}},
		entities: newStubEntityRepo(entities...),
		actions:  &stubActionRepo{byKey: map[string]ports.ActionExecutionRecord{}},
		events:   &stubEventRepo{},
		metrics:  &stubActionMetrics{},
		journal:  &stubJournal{},
		random:   &scriptedSource{},
		clock:    clock,
	}
	f.uc = UseCase{
		TxManager:  stubTxManager{},
		Players:    f.players,
		Entities:   f.entities,
		ActionRepo: f.actions,
		EventRepo:  f.events,
		Catalog:    catalog.MustDefault(),
		Metrics:    f.metrics,
		Journal:    f.journal,
		Random:     f.random,
		Now:        clock.Now,
	}
	return f
}

func (f *fixture) player() economy.Player {
	return f.players.byID["p1"]
}

func testEntity(id string, cat catalog.Category, kind, position string, createdAt time.Time) lifecycle.Entity {
	return lifecycle.Entity{
		ID:        id,
		OwnerID:   "p1",
		Category:  cat,
		Kind:      kind,
		Location:  lifecycle.DefaultLocation,
		Position:  position,
		CreatedAt: createdAt,
		Version:   1,
	}
}
