package action

import (
	"context"

	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/lifecycle"
)

type plantActionHandler struct{ BaseHandler }

func (plantActionHandler) Precheck(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Crop(ac.Tmp.Intent.Kind)
	if err != nil {
		return err
	}
	return ac.requireLevel(def.Level)
}

func (plantActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Crop(ac.Tmp.Intent.Kind)
	if err != nil {
		return err
	}
	if err := ac.debit(def.Cost); err != nil {
		return err
	}
	intent := ac.Tmp.Intent
	e := newEntity(ac, catalog.CategoryCrop, def.Kind, intent.Location, intent.Position)
	ac.Tmp.Entity = ac.placeEntity(e, lifecycle.EvaluateCrop(e, def, ac.In.NowAt))
	return nil
}

type harvestActionHandler struct{ BaseHandler }

func (harvestActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	state := ac.View.TargetState
	if state.Status == lifecycle.StatusWithered {
		return ErrWithered
	}
	if !state.Ready {
		return notReady(state)
	}
	return nil
}

func (harvestActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Crop(ac.View.Target.Kind)
	if err != nil {
		return err
	}
	if err := ac.debit(economy.Amounts{economy.Energy: HarvestEnergyCost}); err != nil {
		return err
	}
	ac.credit(def.Yield)
	ac.gainExperience(uc.Catalog.Levels(), def.XP)

	roller := uc.roller()
	ac.collectDrops(roller.RollDrops(def.Drops, uc.Catalog.CropDropChance()))
	if def.Butterflies {
		n := roller.RollButterflies()
		ac.Tmp.Butterflies = n
		ac.credit(economy.Amounts{economy.Butterflies: n})
	}
	ac.removeTarget()
	return nil
}

type protectActionHandler struct{ BaseHandler }

func (protectActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	e := *ac.View.Target
	if e.Protected {
		ac.Tmp.Entity = &lifecycle.View{Entity: e, State: ac.View.TargetState}
		return nil
	}
	def, err := uc.Catalog.Crop(e.Kind)
	if err != nil {
		return err
	}
	if err := ac.debit(economy.Amounts{economy.DroughtProtection: 1}); err != nil {
		return err
	}
	e.Protected = true
	ac.updateTarget(e, lifecycle.EvaluateCrop(e, def, ac.In.NowAt))
	return nil
}
