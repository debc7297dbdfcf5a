package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/lifecycle"
)

var progressEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestUseCase_ReportsCollectionsAndQuests(t *testing.T) {
	player := economy.NewPlayer("p1", nil, progressEpoch)
	player.Collections = economy.Inventory{"wheat_seed": 5, "straw": 3, "golden_grain": 2, "egg": 1}
	player.ClaimedQuests = []string{"quest3"}
	saloon := lifecycle.Entity{
		ID: "b1", OwnerID: "p1", Category: catalog.CategoryBuilding, Kind: "saloon",
		Location: "main", Position: "0-0", CreatedAt: progressEpoch.Add(-time.Hour), Built: true,
	}
	uc := UseCase{
		Players:  progressPlayerRepo{player: player},
		Entities: progressEntityRepo{entities: []lifecycle.Entity{saloon}},
		Catalog:  catalog.MustDefault(),
		Now:      func() time.Time { return progressEpoch },
	}

	resp, err := uc.Execute(context.Background(), Request{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	collections := map[string]CollectionProgress{}
	for _, c := range resp.Collections {
		collections[c.ID] = c
	}
	if !collections["wheat_collection"].Complete {
		t.Fatalf("wheat collection should be complete: %+v", collections["wheat_collection"])
	}
	if collections["animal_collection"].Complete {
		t.Fatalf("animal collection should be incomplete")
	}

	quests := map[string]QuestProgress{}
	for _, q := range resp.Quests {
		quests[q.ID] = q
	}
	if !quests["quest1"].Claimable {
		t.Fatalf("quest1 should be claimable: %+v", quests["quest1"])
	}
	if !quests["quest3"].Claimed || quests["quest3"].Claimable {
		t.Fatalf("quest3 should be claimed: %+v", quests["quest3"])
	}
	q2 := quests["quest2"]
	if q2.Unlocked || len(q2.MissingBuildings) != 1 || q2.MissingResources.Get(economy.Gold) != 500 {
		t.Fatalf("quest2 progress got=%+v", q2)
	}
}

func TestUseCase_RejectsEmptyPlayerID(t *testing.T) {
	if _, err := (UseCase{}).Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

type progressPlayerRepo struct {
	player economy.Player
}

func (r progressPlayerRepo) GetByID(context.Context, string) (economy.Player, error) {
	return r.player, nil
}

func (r progressPlayerRepo) SaveWithVersion(context.Context, economy.Player, int64) error {
	return nil
}

type progressEntityRepo struct {
	entities []lifecycle.Entity
}

func (r progressEntityRepo) Get(context.Context, string, string) (lifecycle.Entity, error) {
	return lifecycle.Entity{}, ports.ErrNotFound
}

func (r progressEntityRepo) ListByOwner(context.Context, string, string) ([]lifecycle.Entity, error) {
	return r.entities, nil
}

func (r progressEntityRepo) Insert(context.Context, lifecycle.Entity) error { return nil }

func (r progressEntityRepo) UpdateWithVersion(context.Context, lifecycle.Entity, int64) error {
	return nil
}

func (r progressEntityRepo) Delete(context.Context, string, string) error { return nil }
