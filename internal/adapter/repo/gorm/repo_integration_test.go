package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"homestead/internal/app/action"
	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
	"homestead/internal/domain/reward"
	"homestead/migrations"

	"gorm.io/gorm"
)

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("HOMESTEAD_DB_DSN")
	if dsn == "" {
		t.Skip("HOMESTEAD_DB_DSN is required for integration test")
	}
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, migrations.FS); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func resetPlayer(t *testing.T, db *gorm.DB, playerID string) {
	t.Helper()
	_ = db.Exec("DELETE FROM domain_events WHERE player_id = ?", playerID).Error
	_ = db.Exec("DELETE FROM action_executions WHERE player_id = ?", playerID).Error
	_ = db.Exec("DELETE FROM entities WHERE owner_id = ?", playerID).Error
	_ = db.Exec("DELETE FROM players WHERE id = ?", playerID).Error
}

func seedPlayer(t *testing.T, db *gorm.DB, playerID string, now time.Time) economy.Player {
	t.Helper()
	resetPlayer(t, db, playerID)
	p := economy.NewPlayer(playerID, nil, now)
	p.Version = 1
	if err := NewPlayerRepo(db).SaveWithVersion(context.Background(), p, 0); err != nil {
		t.Fatalf("seed player: %v", err)
	}
	return p
}

func TestPlayerRepo_RoundTripAndVersionCheck(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	seed := seedPlayer(t, db, "it-player-roundtrip", now)
	repo := NewPlayerRepo(db)

	if err := repo.SaveWithVersion(ctx, seed, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("duplicate create got=%v want=%v", err, ports.ErrConflict)
	}

	seed.Collections = seed.Collections.Add("straw", 2)
	seed.ClaimedQuests = append(seed.ClaimedQuests, "quest1")
	seed.Version = 2
	if err := repo.SaveWithVersion(ctx, seed, 1); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, seed, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("stale save got=%v want=%v", err, ports.ErrConflict)
	}

	got, err := repo.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Resources.Get(economy.Gold) != 500 || got.Collections["straw"] != 2 || !got.HasClaimed("quest1") {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestEntityRepo_SlotUniquenessAndVersions(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	seedPlayer(t, db, "it-entity-slot", now)
	repo := NewEntityRepo(db)

	first := lifecycle.Entity{ID: "it-e1", OwnerID: "it-entity-slot", Category: catalog.CategoryCrop, Kind: "wheat", Location: "main", Position: "2-3", CreatedAt: now, Version: 1}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("insert: %v", err)
	}
	second := first
	second.ID = "it-e2"
	if err := repo.Insert(ctx, second); !errors.Is(err, ports.ErrOccupied) {
		t.Fatalf("got=%v want=%v", err, ports.ErrOccupied)
	}

	first.Protected = true
	first.Version = 2
	if err := repo.UpdateWithVersion(ctx, first, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.UpdateWithVersion(ctx, first, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("got=%v want=%v", err, ports.ErrConflict)
	}
	got, err := repo.Get(ctx, "it-entity-slot", "it-e1")
	if err != nil || !got.Protected {
		t.Fatalf("get got=%+v err=%v", got, err)
	}
	if err := repo.Delete(ctx, "it-entity-slot", "it-e1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "it-entity-slot", "it-e1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("got=%v want=%v", err, ports.ErrNotFound)
	}
}

func TestEventRepo_NewestFirst(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	resetPlayer(t, db, "it-events")
	repo := NewEventRepo(db)
	now := time.Now().UTC()
	err := repo.Append(ctx, "it-events", []farm.DomainEvent{
		{Type: farm.EventEntityCreated, OccurredAt: now, Payload: map[string]any{"n": 1}},
		{Type: farm.EventResourcesChanged, OccurredAt: now, Payload: map[string]any{"n": 2}},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := repo.ListByPlayerID(ctx, "it-events", 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Type != farm.EventResourcesChanged {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestActionUseCase_PlantHarvestAgainstPostgres(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	start := time.Now().UTC().Truncate(time.Second)
	seedPlayer(t, db, "it-action", start)
	now := start

	uc := action.UseCase{
		TxManager:  NewTxManager(db),
		Players:    NewPlayerRepo(db),
		Entities:   NewEntityRepo(db),
		ActionRepo: NewActionExecutionRepo(db),
		EventRepo:  NewEventRepo(db),
		Catalog:    catalog.MustDefault(),
		Random:     reward.NewLockedSource(reward.NewSeeded(1)),
		Now:        func() time.Time { return now },
	}

	planted, err := uc.Plant(ctx, "it-action", "it-plant", "wheat", action.Placement{Position: "0-0"})
	if err != nil {
		t.Fatalf("plant: %v", err)
	}
	replayed, err := uc.Plant(ctx, "it-action", "it-plant", "wheat", action.Placement{Position: "0-0"})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if replayed.Entity == nil || replayed.Entity.ID != planted.Entity.ID {
		t.Fatalf("replay should return the stored response")
	}
	if _, err := uc.Plant(ctx, "it-action", "it-plant-2", "wheat", action.Placement{Position: "0-0"}); !errors.Is(err, action.ErrPositionOccupied) {
		t.Fatalf("got=%v want=%v", err, action.ErrPositionOccupied)
	}

	now = start.Add(60 * time.Second)
	harvested, err := uc.Harvest(ctx, "it-action", "it-harvest", planted.Entity.ID)
	if err != nil {
		t.Fatalf("harvest: %v", err)
	}
	if !harvested.Deleted || harvested.Player.Resources.Get(economy.Gold) != 495 {
		t.Fatalf("unexpected harvest: %+v", harvested.Player.Resources)
	}
}
