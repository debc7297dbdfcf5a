package catalog

import (
	"fmt"
	"sort"
	"time"

	"homestead/internal/domain/economy"
)

// Registry is built once at startup and never mutated afterwards.
type Registry struct {
	crops       map[string]CropDef
	animals     map[string]AnimalDef
	buildings   map[string]BuildingDef
	territory   map[string]TerritoryDef
	pests       map[string]PestDef
	collections map[string]CollectionDef
	quests      map[string]QuestDef
	market      map[string]MarketItemDef
	levels      economy.LevelCurve

	cropDropChance   float64
	animalDropChance float64
}

func NewRegistry(doc Document) (*Registry, error) {
	r := &Registry{
		crops:            map[string]CropDef{},
		animals:          map[string]AnimalDef{},
		buildings:        map[string]BuildingDef{},
		territory:        map[string]TerritoryDef{},
		pests:            map[string]PestDef{},
		collections:      map[string]CollectionDef{},
		quests:           map[string]QuestDef{},
		market:           map[string]MarketItemDef{},
		cropDropChance:   DefaultCropDropChance,
		animalDropChance: DefaultAnimalDropChance,
	}

	levels, err := economy.NewLevelCurve(doc.Levels)
	if err != nil {
		return nil, err
	}
	r.levels = levels
	if doc.DropChances.Crop != nil {
		r.cropDropChance = *doc.DropChances.Crop
	}
	if doc.DropChances.Animal != nil {
		r.animalDropChance = *doc.DropChances.Animal
	}

	for _, d := range doc.Pests {
		def := PestDef{Kind: d.Kind, ChaseTime: seconds(d.ChaseSeconds), XP: d.Experience}
		if def.ChaseCost, err = amounts(CategoryPest, d.Kind, "chase_cost", d.ChaseCost); err != nil {
			return nil, err
		}
		if def.Reward, err = amounts(CategoryPest, d.Kind, "rewards", d.Rewards); err != nil {
			return nil, err
		}
		if err := putUnique(r.pests, CategoryPest, d.Kind, def); err != nil {
			return nil, err
		}
	}

	for _, d := range doc.Crops {
		def := CropDef{
			Kind:        d.Kind,
			GrowTime:    seconds(d.GrowSeconds),
			WitherTime:  seconds(d.WitherSeconds),
			XP:          d.Experience,
			Level:       atLeastOne(d.LevelRequired),
			Drops:       append([]string(nil), d.Drops...),
			Butterflies: d.Butterflies,
		}
		if def.Cost, err = amounts(CategoryCrop, d.Kind, "cost", d.Cost); err != nil {
			return nil, err
		}
		if def.Yield, err = amounts(CategoryCrop, d.Kind, "yield", d.Yield); err != nil {
			return nil, err
		}
		if err := putUnique(r.crops, CategoryCrop, d.Kind, def); err != nil {
			return nil, err
		}
	}

	for _, d := range doc.Animals {
		def := AnimalDef{
			Kind:               d.Kind,
			AdultAge:           seconds(d.AdultSeconds),
			ProductionInterval: seconds(d.ProductionSeconds),
			XP:                 d.Experience,
			Level:              atLeastOne(d.LevelRequired),
			Drops:              append([]string(nil), d.Drops...),
		}
		if def.Cost, err = amounts(CategoryAnimal, d.Kind, "cost", d.Cost); err != nil {
			return nil, err
		}
		if def.Yield, err = amounts(CategoryAnimal, d.Kind, "production_yield", d.Yield); err != nil {
			return nil, err
		}
		if def.FeedCost, err = amounts(CategoryAnimal, d.Kind, "feed_cost", d.FeedCost); err != nil {
			return nil, err
		}
		if err := putUnique(r.animals, CategoryAnimal, d.Kind, def); err != nil {
			return nil, err
		}
	}

	for _, d := range doc.Buildings {
		def := BuildingDef{
			Kind:      d.Kind,
			BuildTime: seconds(d.BuildSeconds),
			Level:     atLeastOne(d.LevelRequired),
		}
		if def.Cost, err = amounts(CategoryBuilding, d.Kind, "cost", d.Cost); err != nil {
			return nil, err
		}
		if def.Production, err = amounts(CategoryBuilding, d.Kind, "production", d.Production); err != nil {
			return nil, err
		}
		if err := putUnique(r.buildings, CategoryBuilding, d.Kind, def); err != nil {
			return nil, err
		}
	}

	for _, d := range doc.Territory {
		def := TerritoryDef{Kind: d.Kind, ClearTime: seconds(d.ClearSeconds), XP: d.Experience}
		if def.ClearCost, err = amounts(CategoryTerritory, d.Kind, "clear_cost", d.ClearCost); err != nil {
			return nil, err
		}
		if def.Reward, err = amounts(CategoryTerritory, d.Kind, "rewards", d.Rewards); err != nil {
			return nil, err
		}
		for _, h := range d.Hazards {
			if _, ok := r.pests[h.Pest]; !ok {
				return nil, fmt.Errorf("%w: territory %q spawns unknown pest %q", ErrInvalidDocument, d.Kind, h.Pest)
			}
			if h.Chance < 0 || h.Chance > 1 {
				return nil, fmt.Errorf("%w: territory %q hazard %q chance %v out of range", ErrInvalidDocument, d.Kind, h.Pest, h.Chance)
			}
			def.Hazards = append(def.Hazards, HazardChance{Pest: h.Pest, Probability: h.Chance})
		}
		if err := putUnique(r.territory, CategoryTerritory, d.Kind, def); err != nil {
			return nil, err
		}
	}

	for _, d := range doc.Collections {
		def := CollectionDef{ID: d.ID, Name: d.Name, ItemsNeeded: map[string]int{}, XP: d.Experience}
		for item, n := range d.ItemsNeeded {
			def.ItemsNeeded[item] = n
		}
		if def.Rewards, err = amounts(CategoryCollection, d.ID, "rewards", d.Rewards); err != nil {
			return nil, err
		}
		if err := putUnique(r.collections, CategoryCollection, d.ID, def); err != nil {
			return nil, err
		}
	}

	for _, d := range doc.Quests {
		def := QuestDef{
			ID:                d.ID,
			Name:              d.Name,
			RequiredBuildings: append([]string(nil), d.RequiredBuildings...),
			XP:                d.Experience,
			LevelRequired:     atLeastOne(d.LevelRequired),
		}
		for _, b := range d.RequiredBuildings {
			if _, ok := r.buildings[b]; !ok {
				return nil, fmt.Errorf("%w: quest %q requires unknown building %q", ErrInvalidDocument, d.ID, b)
			}
		}
		if def.RequiredResources, err = amounts(CategoryQuest, d.ID, "required_resources", d.RequiredResources); err != nil {
			return nil, err
		}
		if def.Rewards, err = amounts(CategoryQuest, d.ID, "rewards", d.Rewards); err != nil {
			return nil, err
		}
		if err := putUnique(r.quests, CategoryQuest, d.ID, def); err != nil {
			return nil, err
		}
	}

	for _, d := range doc.Market {
		def := MarketItemDef{ID: d.ID}
		if def.Cost, err = amounts(CategoryMarket, d.ID, "cost", d.Cost); err != nil {
			return nil, err
		}
		if def.Rewards, err = amounts(CategoryMarket, d.ID, "rewards", d.Rewards); err != nil {
			return nil, err
		}
		if err := putUnique(r.market, CategoryMarket, d.ID, def); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) Crop(kind string) (CropDef, error) {
	return lookup(r.crops, CategoryCrop, kind)
}

func (r *Registry) Animal(kind string) (AnimalDef, error) {
	return lookup(r.animals, CategoryAnimal, kind)
}

func (r *Registry) Building(kind string) (BuildingDef, error) {
	return lookup(r.buildings, CategoryBuilding, kind)
}

func (r *Registry) Territory(kind string) (TerritoryDef, error) {
	return lookup(r.territory, CategoryTerritory, kind)
}

func (r *Registry) Pest(kind string) (PestDef, error) {
	return lookup(r.pests, CategoryPest, kind)
}

func (r *Registry) Collection(id string) (CollectionDef, error) {
	return lookup(r.collections, CategoryCollection, id)
}

func (r *Registry) Quest(id string) (QuestDef, error) {
	return lookup(r.quests, CategoryQuest, id)
}

func (r *Registry) MarketItem(id string) (MarketItemDef, error) {
	return lookup(r.market, CategoryMarket, id)
}

func (r *Registry) Levels() economy.LevelCurve {
	return r.levels
}

func (r *Registry) CropDropChance() float64 {
	return r.cropDropChance
}

func (r *Registry) AnimalDropChance() float64 {
	return r.animalDropChance
}

func (r *Registry) Kinds(cat Category) []string {
	switch cat {
	case CategoryCrop:
		return sortedKeys(r.crops)
	case CategoryAnimal:
		return sortedKeys(r.animals)
	case CategoryBuilding:
		return sortedKeys(r.buildings)
	case CategoryTerritory:
		return sortedKeys(r.territory)
	case CategoryPest:
		return sortedKeys(r.pests)
	case CategoryCollection:
		return sortedKeys(r.collections)
	case CategoryQuest:
		return sortedKeys(r.quests)
	case CategoryMarket:
		return sortedKeys(r.market)
	default:
		return nil
	}
}

func (r *Registry) Collections() []CollectionDef {
	out := make([]CollectionDef, 0, len(r.collections))
	for _, id := range sortedKeys(r.collections) {
		out = append(out, r.collections[id])
	}
	return out
}

func (r *Registry) Quests() []QuestDef {
	out := make([]QuestDef, 0, len(r.quests))
	for _, id := range sortedKeys(r.quests) {
		out = append(out, r.quests[id])
	}
	return out
}

func lookup[T any](m map[string]T, cat Category, kind string) (T, error) {
	def, ok := m[kind]
	if !ok {
		var zero T
		return zero, unknownKind(cat, kind, sortedKeys(m))
	}
	return def, nil
}

func putUnique[T any](m map[string]T, cat Category, kind string, def T) error {
	if kind == "" {
		return fmt.Errorf("%w: %s with empty id", ErrInvalidDocument, cat)
	}
	if _, dup := m[kind]; dup {
		return fmt.Errorf("%w: duplicate %s %q", ErrInvalidDocument, cat, kind)
	}
	m[kind] = def
	return nil
}

func amounts(cat Category, kind, field string, raw map[string]int) (economy.Amounts, error) {
	out, err := economy.ParseAmounts(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q %s: %v", ErrInvalidDocument, cat, kind, field, err)
	}
	return out, nil
}

func sortedKeys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
