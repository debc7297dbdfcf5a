package action

import (
	"context"

	"homestead/internal/domain/catalog"
	"homestead/internal/domain/lifecycle"
)

type buyAnimalActionHandler struct{ BaseHandler }

func (buyAnimalActionHandler) Precheck(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Animal(ac.Tmp.Intent.Kind)
	if err != nil {
		return err
	}
	return ac.requireLevel(def.Level)
}

func (buyAnimalActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Animal(ac.Tmp.Intent.Kind)
	if err != nil {
		return err
	}
	if err := ac.debit(def.Cost); err != nil {
		return err
	}
	intent := ac.Tmp.Intent
	e := newEntity(ac, catalog.CategoryAnimal, def.Kind, intent.Location, intent.Position)
	ac.Tmp.Entity = ac.placeEntity(e, lifecycle.EvaluateAnimal(e, def, ac.In.NowAt))
	return nil
}

type feedActionHandler struct{ BaseHandler }

func (feedActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	e := *ac.View.Target
	def, err := uc.Catalog.Animal(e.Kind)
	if err != nil {
		return err
	}
	if err := ac.debit(def.FeedCost); err != nil {
		return err
	}
	fedAt := ac.In.NowAt
	e.LastFedAt = &fedAt
	ac.updateTarget(e, lifecycle.EvaluateAnimal(e, def, ac.In.NowAt))
	return nil
}

type collectAnimalActionHandler struct{ BaseHandler }

func (collectAnimalActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	state := ac.View.TargetState
	if !state.Adult {
		return ErrNotAdult
	}
	if !state.Ready {
		return notReady(state)
	}
	return nil
}

func (collectAnimalActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	e := *ac.View.Target
	def, err := uc.Catalog.Animal(e.Kind)
	if err != nil {
		return err
	}
	ac.credit(def.Yield)
	ac.gainExperience(uc.Catalog.Levels(), def.XP)
	ac.collectDrops(uc.roller().RollDrops(def.Drops, uc.Catalog.AnimalDropChance()))

	collectedAt := ac.In.NowAt
	e.LastCollectedAt = &collectedAt
	ac.updateTarget(e, lifecycle.EvaluateAnimal(e, def, ac.In.NowAt))
	return nil
}
