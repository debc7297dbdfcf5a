package lifecycle

import (
	"fmt"
	"time"

	"homestead/internal/domain/catalog"
)

const BuildingProductionInterval = 60 * time.Second

func EvaluateCrop(e Entity, def catalog.CropDef, now time.Time) State {
	elapsed := since(e.CreatedAt, now)
	if elapsed < def.GrowTime {
		return State{
			Status:           StatusGrowing,
			Progress:         progress(elapsed, def.GrowTime),
			RemainingSeconds: remaining(elapsed, def.GrowTime),
		}
	}
	if e.Protected || elapsed < def.GrowTime+def.WitherTime {
		return State{Status: StatusReady, Progress: 100, Ready: true}
	}
	return State{Status: StatusWithered, Progress: 100}
}

func EvaluateAnimal(e Entity, def catalog.AnimalDef, now time.Time) State {
	age := since(e.CreatedAt, now)
	if age < def.AdultAge {
		return State{
			Status:           StatusGrowing,
			Progress:         progress(age, def.AdultAge),
			RemainingSeconds: remaining(age, def.AdultAge),
		}
	}
	st := State{Status: StatusAdult, Progress: 100, Adult: true}
	if !def.Produces() {
		return st
	}
	idle := age - def.AdultAge
	if e.LastCollectedAt != nil {
		idle = since(*e.LastCollectedAt, now)
	}
	if idle >= def.ProductionInterval {
		st.Status = StatusProducing
		st.Ready = true
		return st
	}
	st.RemainingSeconds = remaining(idle, def.ProductionInterval)
	return st
}

// EvaluateBuilding reports Transitioned when completion is first observed; the
// caller decides whether to persist it via Entity.CacheBuildCompletion.
func EvaluateBuilding(e Entity, def catalog.BuildingDef, now time.Time) State {
	if !e.Built {
		elapsed := since(e.CreatedAt, now)
		if elapsed < def.BuildTime {
			return State{
				Status:           StatusBuilding,
				Progress:         progress(elapsed, def.BuildTime),
				RemainingSeconds: remaining(elapsed, def.BuildTime),
			}
		}
		at := now
		return State{
			Status:           StatusBuilt,
			Progress:         100,
			Transitioned:     true,
			LastCollectedAt:  &at,
			RemainingSeconds: productionRemaining(def, 0),
		}
	}

	last := e.CreatedAt.Add(def.BuildTime)
	if e.LastCollectedAt != nil {
		last = *e.LastCollectedAt
	}
	idle := since(last, now)
	st := State{Status: StatusBuilt, Progress: 100, LastCollectedAt: &last}
	if def.Produces() && idle >= BuildingProductionInterval {
		st.Ready = true
		return st
	}
	st.RemainingSeconds = productionRemaining(def, idle)
	return st
}

func productionRemaining(def catalog.BuildingDef, idle time.Duration) int {
	if !def.Produces() {
		return 0
	}
	return remaining(idle, BuildingProductionInterval)
}

func EvaluateTerritory(e Entity, def catalog.TerritoryDef, now time.Time) State {
	if e.ClearStartedAt == nil {
		return State{Status: StatusActive}
	}
	elapsed := since(*e.ClearStartedAt, now)
	if elapsed >= def.ClearTime {
		return State{Status: StatusCleared, Progress: 100, Ready: true}
	}
	return State{
		Status:           StatusClearing,
		Progress:         progress(elapsed, def.ClearTime),
		RemainingSeconds: remaining(elapsed, def.ClearTime),
	}
}

func EvaluatePest(Entity, catalog.PestDef, time.Time) State {
	return State{Status: StatusActive, Ready: true}
}

// Evaluate resolves the entity's definition and dispatches on its category.
func Evaluate(e Entity, reg *catalog.Registry, now time.Time) (State, error) {
	switch e.Category {
	case catalog.CategoryCrop:
		def, err := reg.Crop(e.Kind)
		if err != nil {
			return State{}, err
		}
		return EvaluateCrop(e, def, now), nil
	case catalog.CategoryAnimal:
		def, err := reg.Animal(e.Kind)
		if err != nil {
			return State{}, err
		}
		return EvaluateAnimal(e, def, now), nil
	case catalog.CategoryBuilding:
		def, err := reg.Building(e.Kind)
		if err != nil {
			return State{}, err
		}
		return EvaluateBuilding(e, def, now), nil
	case catalog.CategoryTerritory:
		def, err := reg.Territory(e.Kind)
		if err != nil {
			return State{}, err
		}
		return EvaluateTerritory(e, def, now), nil
	case catalog.CategoryPest:
		def, err := reg.Pest(e.Kind)
		if err != nil {
			return State{}, err
		}
		return EvaluatePest(e, def, now), nil
	default:
		return State{}, fmt.Errorf("%w: entity category %q", catalog.ErrInvalidKind, e.Category)
	}
}
