package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"homestead/internal/app/action"
	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
	"homestead/internal/domain/reward"
)

var memEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seededStore(start economy.Amounts) *Store {
	store := NewStore()
	player := economy.NewPlayer("p1", start, memEpoch)
	player.Version = 1
	store.SeedPlayer(player)
	return store
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	store := seededStore(nil)
	tx := NewTxManager(store)
	players := NewPlayerRepo(store)
	entities := NewEntityRepo(store)
	events := NewEventRepo(store)
	wantErr := errors.New("boom")

	err := tx.RunInTx(context.Background(), "p1", func(ctx context.Context) error {
		p, err := players.GetByID(ctx, "p1")
		if err != nil {
			return err
		}
		p.Resources = economy.Amounts{}
		p.Version = 2
		if err := players.SaveWithVersion(ctx, p, 1); err != nil {
			return err
		}
		if err := entities.Insert(ctx, lifecycle.Entity{ID: "e1", OwnerID: "p1", Location: "main", Position: "0-0", Version: 1}); err != nil {
			return err
		}
		if err := events.Append(ctx, "p1", []farm.DomainEvent{{Type: farm.EventEntityCreated}}); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("got=%v want=%v", err, wantErr)
	}

	p, err := players.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.Version != 1 || p.Resources.Get(economy.Gold) != 500 {
		t.Fatalf("player not restored: %+v", p)
	}
	if _, err := entities.Get(context.Background(), "p1", "e1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("entity should be rolled back, got %v", err)
	}
	if got, _ := events.ListByPlayerID(context.Background(), "p1", 0); len(got) != 0 {
		t.Fatalf("events should be rolled back, got %d", len(got))
	}
}

func TestEntityRepo_EnforcesOnePerPosition(t *testing.T) {
	store := NewStore()
	repo := NewEntityRepo(store)
	ctx := context.Background()

	if err := repo.Insert(ctx, lifecycle.Entity{ID: "a", OwnerID: "p1", Location: "main", Position: "1-1"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, lifecycle.Entity{ID: "b", OwnerID: "p1", Location: "main", Position: "1-1"}); !errors.Is(err, ports.ErrOccupied) {
		t.Fatalf("got=%v want=%v", err, ports.ErrOccupied)
	}
	if err := repo.Insert(ctx, lifecycle.Entity{ID: "c", OwnerID: "p2", Location: "main", Position: "1-1"}); err != nil {
		t.Fatalf("other owner may use the same position: %v", err)
	}
	if err := repo.Insert(ctx, lifecycle.Entity{ID: "d", OwnerID: "p1", Location: "island", Position: "1-1"}); err != nil {
		t.Fatalf("other location may use the same position: %v", err)
	}
}

func TestEntityRepo_VersionedUpdate(t *testing.T) {
	store := NewStore()
	repo := NewEntityRepo(store)
	ctx := context.Background()
	e := lifecycle.Entity{ID: "a", OwnerID: "p1", Location: "main", Position: "1-1", Version: 1}
	if err := repo.Insert(ctx, e); err != nil {
		t.Fatalf("insert: %v", err)
	}
	e.Version = 2
	if err := repo.UpdateWithVersion(ctx, e, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.UpdateWithVersion(ctx, e, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("got=%v want=%v", err, ports.ErrConflict)
	}
}

func TestPlayerRepo_SaveWithVersion(t *testing.T) {
	store := NewStore()
	repo := NewPlayerRepo(store)
	ctx := context.Background()
	p := economy.NewPlayer("p1", nil, memEpoch)
	p.Version = 1

	if err := repo.SaveWithVersion(ctx, p, 3); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("create with non-zero expected version got=%v", err)
	}
	if err := repo.SaveWithVersion(ctx, p, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	p.Version = 2
	if err := repo.SaveWithVersion(ctx, p, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("stale save got=%v", err)
	}
	if err := repo.SaveWithVersion(ctx, p, 1); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestEventRepo_ListsNewestFirst(t *testing.T) {
	store := NewStore()
	repo := NewEventRepo(store)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, "p1", []farm.DomainEvent{{Type: fmt.Sprintf("e%d", i)}}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	got, err := repo.ListByPlayerID(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Type != "e2" || got[1].Type != "e1" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestActionExecutionRepo_RejectsDuplicateKey(t *testing.T) {
	store := NewStore()
	repo := NewActionExecutionRepo(store)
	ctx := context.Background()
	rec := ports.ActionExecutionRecord{PlayerID: "p1", IdempotencyKey: "k"}

	if err := repo.SaveExecution(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveExecution(ctx, rec); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("got=%v want=%v", err, ports.ErrConflict)
	}
	if _, err := repo.GetByIdempotencyKey(ctx, "p1", "k"); err != nil {
		t.Fatalf("get: %v", err)
	}
}

func newActionUseCase(store *Store) action.UseCase {
	return action.UseCase{
		TxManager:  NewTxManager(store),
		Players:    NewPlayerRepo(store),
		Entities:   NewEntityRepo(store),
		ActionRepo: NewActionExecutionRepo(store),
		EventRepo:  NewEventRepo(store),
		Catalog:    catalog.MustDefault(),
		Random:     reward.NewLockedSource(reward.NewSeeded(7)),
		Now:        func() time.Time { return memEpoch },
	}
}

func TestActionUseCase_ConcurrentActionsOfOnePlayerSerialize(t *testing.T) {
	store := seededStore(economy.Amounts{economy.Gold: 200})
	uc := newActionUseCase(store)

	var wg sync.WaitGroup
	errs := make(chan error, 25)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Plant(context.Background(), "p1", fmt.Sprintf("k-%d", i), "wheat", action.Placement{Position: fmt.Sprintf("%d-0", i)})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	ok, short := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, economy.ErrInsufficientResources):
			short++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 20 || short != 5 {
		t.Fatalf("ok=%d short=%d want 20/5", ok, short)
	}
	p, _ := NewPlayerRepo(store).GetByID(context.Background(), "p1")
	if p.Resources.Get(economy.Gold) != 0 || p.Version != 21 {
		t.Fatalf("player got gold=%d version=%d", p.Resources.Get(economy.Gold), p.Version)
	}
	crops, _ := NewEntityRepo(store).ListByOwner(context.Background(), "p1", "")
	if len(crops) != 20 {
		t.Fatalf("crops got=%d want=20", len(crops))
	}
}

func TestActionUseCase_FailedPersistLeavesNothing(t *testing.T) {
	store := seededStore(nil)
	uc := newActionUseCase(store)
	ctx := context.Background()

	if _, err := uc.Plant(ctx, "p1", "k1", "wheat", action.Placement{Position: "0-0"}); err != nil {
		t.Fatalf("plant: %v", err)
	}
	if _, err := uc.Build(ctx, "p1", "k2", "saloon", action.Placement{Position: "0-0"}); !errors.Is(err, action.ErrPositionOccupied) {
		t.Fatalf("got=%v want=%v", err, action.ErrPositionOccupied)
	}
	p, _ := NewPlayerRepo(store).GetByID(ctx, "p1")
	if p.Resources.Get(economy.Gold) != 490 || p.Resources.Get(economy.Wood) != 200 || p.Version != 2 {
		t.Fatalf("failed build leaked: %+v", p)
	}
	if _, err := NewActionExecutionRepo(store).GetByIdempotencyKey(ctx, "p1", "k2"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("failed action must not be recorded, got %v", err)
	}
}
