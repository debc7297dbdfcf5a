package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

func TestBuildingScenario(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	built, err := f.uc.Build(ctx, "p1", "build", "saloon", Placement{Position: "5-5"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Entity.State.Status != lifecycle.StatusBuilding {
		t.Fatalf("status got=%s want=%s", built.Entity.State.Status, lifecycle.StatusBuilding)
	}
	if built.ExperienceGained != 0 || f.player().Experience != 0 {
		t.Fatalf("build must not award experience, got=%d", built.ExperienceGained)
	}
	id := built.Entity.ID

	f.clock.Advance(31 * time.Second)
	entity := f.entities.byID[id]
	state, err := CacheObservedCompletion(ctx, f.entities, f.events, f.uc.Catalog, &entity, f.clock.Now())
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if state.Status != lifecycle.StatusBuilt || state.Progress != 100 {
		t.Fatalf("state got=%+v want built at 100", state)
	}
	stored := f.entities.byID[id]
	if !stored.Built || stored.LastCollectedAt == nil || !stored.LastCollectedAt.Equal(fixtureEpoch.Add(31*time.Second)) {
		t.Fatalf("completion not cached: %+v", stored)
	}
	if f.events.count(farm.EventBuildingCompleted) != 1 {
		t.Fatalf("expected building_completed event")
	}

	f.clock.Advance(19 * time.Second)
	if _, err := f.uc.CollectBuilding(ctx, "p1", "collect-50", id); !errors.Is(err, ErrNotReady) {
		t.Fatalf("collect at t=50 got=%v want=%v", err, ErrNotReady)
	}

	f.clock.Advance(41 * time.Second)
	goldBefore := f.player().Resources.Get(economy.Gold)
	resp, err := f.uc.CollectBuilding(ctx, "p1", "collect-91", id)
	if err != nil {
		t.Fatalf("collect at t=91: %v", err)
	}
	if got := f.player().Resources.Get(economy.Gold) - goldBefore; got != 10 {
		t.Fatalf("collected gold got=%d want=10", got)
	}
	if resp.Entity.State.Ready {
		t.Fatalf("building should not be ready right after collect")
	}
}

func TestCollectBuilding_FirstObservationIsKeptOnRejection(t *testing.T) {
	f := newFixture(nil, testEntity("b1", catalog.CategoryBuilding, "saloon", "0-0", fixtureEpoch))
	f.clock.Advance(50 * time.Second)

	if _, err := f.uc.CollectBuilding(context.Background(), "p1", "k", "b1"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("got=%v want=%v", err, ErrNotReady)
	}
	stored := f.entities.byID["b1"]
	if !stored.Built || stored.LastCollectedAt == nil || !stored.LastCollectedAt.Equal(fixtureEpoch.Add(50*time.Second)) {
		t.Fatalf("observed completion not persisted: %+v", stored)
	}
}

func TestCollectBuilding_NotBuilt(t *testing.T) {
	f := newFixture(nil, testEntity("b1", catalog.CategoryBuilding, "saloon", "0-0", fixtureEpoch))
	f.clock.Advance(10 * time.Second)

	if _, err := f.uc.CollectBuilding(context.Background(), "p1", "k", "b1"); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("got=%v want=%v", err, ErrNotBuilt)
	}
}

func TestCollectBuilding_WithoutProductionIsNeverReady(t *testing.T) {
	sheriff := testEntity("b1", catalog.CategoryBuilding, "sheriff", "0-0", fixtureEpoch.Add(-time.Hour))
	sheriff.Built = true
	f := newFixture(nil, sheriff)

	if _, err := f.uc.CollectBuilding(context.Background(), "p1", "k", "b1"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("got=%v want=%v", err, ErrNotReady)
	}
}

func TestBuild_LevelGate(t *testing.T) {
	f := newFixture(nil)
	_, err := f.uc.Build(context.Background(), "p1", "k", "mine", Placement{Position: "0-0"})
	if !errors.Is(err, ErrLevelTooLow) {
		t.Fatalf("got=%v want=%v", err, ErrLevelTooLow)
	}
}
