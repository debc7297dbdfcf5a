package action

import (
	"context"

	"homestead/internal/domain/catalog"
	"homestead/internal/domain/lifecycle"
)

type buildActionHandler struct{ BaseHandler }

func (buildActionHandler) Precheck(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Building(ac.Tmp.Intent.Kind)
	if err != nil {
		return err
	}
	return ac.requireLevel(def.Level)
}

func (buildActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Building(ac.Tmp.Intent.Kind)
	if err != nil {
		return err
	}
	if err := ac.debit(def.Cost); err != nil {
		return err
	}

	intent := ac.Tmp.Intent
	e := newEntity(ac, catalog.CategoryBuilding, def.Kind, intent.Location, intent.Position)
	e.Level = 1
	ac.Tmp.Entity = ac.placeEntity(e, lifecycle.EvaluateBuilding(e, def, ac.In.NowAt))
	return nil
}

type collectBuildingActionHandler struct{ BaseHandler }

func (collectBuildingActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	state := ac.View.TargetState
	if state.Status != lifecycle.StatusBuilt {
		return ErrNotBuilt
	}
	if !state.Ready {
		return notReady(state)
	}
	return nil
}

func (collectBuildingActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	e := *ac.View.Target
	def, err := uc.Catalog.Building(e.Kind)
	if err != nil {
		return err
	}
	ac.credit(def.Production)

	collectedAt := ac.In.NowAt
	e.LastCollectedAt = &collectedAt
	ac.updateTarget(e, lifecycle.EvaluateBuilding(e, def, ac.In.NowAt))
	return nil
}
