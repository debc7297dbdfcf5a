package action

import (
	"context"
	"fmt"

	"homestead/internal/domain/catalog"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

const (
	TerritoryGridSize        = 16
	DefaultGeneratedElements = 20
	maxGeneratedElements     = TerritoryGridSize * TerritoryGridSize
)

type clearTerritoryActionHandler struct{ BaseHandler }

func (clearTerritoryActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	if state := ac.View.TargetState; state.Status == lifecycle.StatusClearing {
		return notReady(state)
	}
	return nil
}

func (clearTerritoryActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	e := *ac.View.Target
	def, err := uc.Catalog.Territory(e.Kind)
	if err != nil {
		return err
	}
	if ac.View.TargetState.Status == lifecycle.StatusCleared {
		return finishClearing(uc, ac, def)
	}

	if err := ac.debit(def.ClearCost); err != nil {
		return err
	}
	startedAt := ac.In.NowAt
	e.ClearStartedAt = &startedAt
	state := lifecycle.EvaluateTerritory(e, def, ac.In.NowAt)
	if state.Status == lifecycle.StatusCleared {
		return finishClearing(uc, ac, def)
	}
	ac.updateTarget(e, state)
	ac.emit(farm.EventClearingStarted, map[string]any{
		"entity_id":         e.ID,
		"kind":              e.Kind,
		"remaining_seconds": state.RemainingSeconds,
	})
	ac.Plan.ResultCode = farm.ResultStarted
	return nil
}

func finishClearing(uc UseCase, ac *ActionContext, def catalog.TerritoryDef) error {
	e := *ac.View.Target
	ac.credit(def.Reward)
	ac.gainExperience(uc.Catalog.Levels(), def.XP)
	ac.removeTarget()

	pest, spawned := uc.roller().RollHazard(def.Hazards)
	if !spawned {
		return nil
	}
	pestDef, err := uc.Catalog.Pest(pest)
	if err != nil {
		return err
	}
	p := newEntity(ac, catalog.CategoryPest, pestDef.Kind, e.Location, e.Position)
	ac.Tmp.Spawned = ac.placeEntity(p, lifecycle.EvaluatePest(p, pestDef, ac.In.NowAt))
	ac.emit(farm.EventHazardSpawned, map[string]any{
		"entity_id": p.ID,
		"kind":      p.Kind,
		"source":    e.Kind,
		"position":  p.Position,
	})
	return nil
}

type generateTerritoryActionHandler struct{ BaseHandler }

func (generateTerritoryActionHandler) ExecuteActionAndPlan(ctx context.Context, uc UseCase, ac *ActionContext) error {
	intent := ac.Tmp.Intent
	existing, err := uc.Entities.ListByOwner(ctx, ac.In.PlayerID, intent.Location)
	if err != nil {
		return err
	}
	occupied := make(map[string]bool, len(existing))
	for _, e := range existing {
		if e.Category == catalog.CategoryTerritory {
			return nil
		}
		occupied[e.Position] = true
	}

	kinds := uc.Catalog.Kinds(catalog.CategoryTerritory)
	if len(kinds) == 0 {
		return nil
	}
	count := intent.Count
	if count == 0 {
		count = DefaultGeneratedElements
	}
	src := uc.roller().Src
	for attempts := 0; len(ac.Tmp.Created) < count && attempts < count*8; attempts++ {
		pos := fmt.Sprintf("%d-%d", src.IntN(TerritoryGridSize), src.IntN(TerritoryGridSize))
		if occupied[pos] {
			continue
		}
		occupied[pos] = true
		def, err := uc.Catalog.Territory(kinds[src.IntN(len(kinds))])
		if err != nil {
			return err
		}
		e := newEntity(ac, catalog.CategoryTerritory, def.Kind, intent.Location, pos)
		view := ac.placeEntity(e, lifecycle.EvaluateTerritory(e, def, ac.In.NowAt))
		ac.Tmp.Created = append(ac.Tmp.Created, *view)
	}
	return nil
}

type chasePestActionHandler struct{ BaseHandler }

func (chasePestActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Pest(ac.View.Target.Kind)
	if err != nil {
		return err
	}
	if err := ac.debit(def.ChaseCost); err != nil {
		return err
	}
	ac.credit(def.Reward)
	ac.gainExperience(uc.Catalog.Levels(), def.XP)
	ac.removeTarget()
	return nil
}
