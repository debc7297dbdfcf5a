package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
)

func TestAnimalCycle(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	bought, err := f.uc.BuyAnimal(ctx, "p1", "buy", "chicken", Placement{Position: "3-3"})
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	id := bought.Entity.ID
	if got := f.player().Resources.Get(economy.Wood); got != 170 {
		t.Fatalf("wood got=%d want=170", got)
	}

	if _, err := f.uc.CollectAnimal(ctx, "p1", "young", id); !errors.Is(err, ErrNotAdult) {
		t.Fatalf("got=%v want=%v", err, ErrNotAdult)
	}

	f.clock.Advance(180 * time.Second)
	if _, err := f.uc.CollectAnimal(ctx, "p1", "adult", id); !errors.Is(err, ErrNotReady) {
		t.Fatalf("got=%v want=%v", err, ErrNotReady)
	}

	f.clock.Advance(300 * time.Second)
	f.random.floats = []float64{0.10, 0.90}
	resp, err := f.uc.CollectAnimal(ctx, "p1", "collect", id)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(resp.Drops) != 1 || resp.Drops[0] != "egg" {
		t.Fatalf("drops got=%v want=[egg]", resp.Drops)
	}
	p := f.player()
	if p.Resources.Get(economy.Food) != 115 || p.Experience != 10 {
		t.Fatalf("unexpected rewards: %+v xp=%d", p.Resources, p.Experience)
	}
	stored := f.entities.byID[id]
	if stored.LastCollectedAt == nil || !stored.LastCollectedAt.Equal(f.clock.Now()) {
		t.Fatalf("last collected not stamped: %+v", stored)
	}

	if _, err := f.uc.CollectAnimal(ctx, "p1", "again", id); !errors.Is(err, ErrNotReady) {
		t.Fatalf("got=%v want=%v", err, ErrNotReady)
	}
}

func TestFeed(t *testing.T) {
	f := newFixture(nil, testEntity("a1", catalog.CategoryAnimal, "chicken", "0-0", fixtureEpoch))

	if _, err := f.uc.Feed(context.Background(), "p1", "k", "a1"); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got := f.player().Resources.Get(economy.Food); got != 95 {
		t.Fatalf("food got=%d want=95", got)
	}
	stored := f.entities.byID["a1"]
	if stored.LastFedAt == nil || stored.Version != 2 {
		t.Fatalf("feed not stored: %+v", stored)
	}
}

func TestFeed_InsufficientFood(t *testing.T) {
	f := newFixture(economy.Amounts{economy.Food: 1}, testEntity("a1", catalog.CategoryAnimal, "chicken", "0-0", fixtureEpoch))

	if _, err := f.uc.Feed(context.Background(), "p1", "k", "a1"); !errors.Is(err, economy.ErrInsufficientResources) {
		t.Fatalf("got=%v want=%v", err, economy.ErrInsufficientResources)
	}
	if f.entities.byID["a1"].LastFedAt != nil {
		t.Fatalf("failed feed must not touch the animal")
	}
}

func TestCollectAnimal_HorseNeverProduces(t *testing.T) {
	f := newFixture(nil, testEntity("a1", catalog.CategoryAnimal, "horse", "0-0", fixtureEpoch.Add(-24*time.Hour)))

	if _, err := f.uc.CollectAnimal(context.Background(), "p1", "k", "a1"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("got=%v want=%v", err, ErrNotReady)
	}
}
