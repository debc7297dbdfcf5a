package catalog

import (
	"time"

	"homestead/internal/domain/economy"
)

type Category string

const (
	CategoryCrop       Category = "crop"
	CategoryAnimal     Category = "animal"
	CategoryBuilding   Category = "building"
	CategoryTerritory  Category = "territory"
	CategoryPest       Category = "pest"
	CategoryCollection Category = "collection"
	CategoryQuest      Category = "quest"
	CategoryMarket     Category = "market"
)

const (
	DefaultCropDropChance   = 0.30
	DefaultAnimalDropChance = 0.25
)

type CropDef struct {
	Kind        string
	Cost        economy.Amounts
	GrowTime    time.Duration
	WitherTime  time.Duration
	Yield       economy.Amounts
	XP          int
	Level       int
	Drops       []string
	Butterflies bool
}

type AnimalDef struct {
	Kind               string
	Cost               economy.Amounts
	AdultAge           time.Duration
	ProductionInterval time.Duration
	Yield              economy.Amounts
	FeedCost           economy.Amounts
	XP                 int
	Level              int
	Drops              []string
}

func (d AnimalDef) Produces() bool {
	return d.ProductionInterval > 0 && !d.Yield.IsZero()
}

type BuildingDef struct {
	Kind       string
	Cost       economy.Amounts
	BuildTime  time.Duration
	Production economy.Amounts
	Level      int
}

func (d BuildingDef) Produces() bool {
	return !d.Production.IsZero()
}

// HazardChance is one row of a territory spawn table. Tables are ordered.
type HazardChance struct {
	Pest        string
	Probability float64
}

type TerritoryDef struct {
	Kind      string
	ClearCost economy.Amounts
	ClearTime time.Duration
	Reward    economy.Amounts
	XP        int
	Hazards   []HazardChance
}

type PestDef struct {
	Kind      string
	ChaseCost economy.Amounts
	ChaseTime time.Duration
	Reward    economy.Amounts
	XP        int
}

type CollectionDef struct {
	ID          string
	Name        string
	ItemsNeeded map[string]int
	Rewards     economy.Amounts
	XP          int
}

type QuestDef struct {
	ID                string
	Name              string
	RequiredBuildings []string
	RequiredResources economy.Amounts
	Rewards           economy.Amounts
	XP                int
	LevelRequired     int
}

type MarketItemDef struct {
	ID      string
	Cost    economy.Amounts
	Rewards economy.Amounts
}
