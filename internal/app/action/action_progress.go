package action

import (
	"context"
	"fmt"
	"sort"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

type QuestIncompleteError struct {
	QuestID          string
	MissingBuildings []string
	MissingResources economy.Amounts
}

func (e *QuestIncompleteError) Error() string {
	return fmt.Sprintf("%s: quest %s requirements not met", ErrNotReady, e.QuestID)
}

func (e *QuestIncompleteError) Unwrap() error {
	return ErrNotReady
}

func notFoundDefinition(err error) error {
	return fmt.Errorf("%w: %w", ErrNotFound, err)
}

type exchangeCollectionActionHandler struct{ BaseHandler }

func (exchangeCollectionActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Collection(ac.Tmp.Intent.TargetID)
	if err != nil {
		return notFoundDefinition(err)
	}
	inv, err := ac.Tmp.Player.Collections.Spend(def.ItemsNeeded)
	if err != nil {
		return err
	}
	ac.Tmp.Player.Collections = inv
	ac.credit(def.Rewards)
	ac.gainExperience(uc.Catalog.Levels(), def.XP)
	ac.emit(farm.EventCollectionExchange, map[string]any{
		"collection_id": def.ID,
		"items":         def.ItemsNeeded,
	})
	return nil
}

type claimQuestActionHandler struct{ BaseHandler }

func (claimQuestActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Quest(ac.Tmp.Intent.TargetID)
	if err != nil {
		return notFoundDefinition(err)
	}
	if ac.Tmp.Player.HasClaimed(def.ID) {
		return ErrAlreadyClaimed
	}
	if err := ac.requireLevel(def.LevelRequired); err != nil {
		return err
	}
	built, err := BuiltBuildingKinds(ctx, uc.Entities, uc.Catalog, ac.In.PlayerID, ac.In.NowAt)
	if err != nil {
		return err
	}
	missing := MissingQuestRequirements(def, ac.Tmp.Player.Resources, built)
	if missing != nil {
		return missing
	}
	return nil
}

func (claimQuestActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	def, err := uc.Catalog.Quest(ac.Tmp.Intent.TargetID)
	if err != nil {
		return notFoundDefinition(err)
	}
	ac.credit(def.Rewards)
	ac.gainExperience(uc.Catalog.Levels(), def.XP)
	ac.Tmp.Player.ClaimedQuests = append(ac.Tmp.Player.ClaimedQuests, def.ID)
	ac.emit(farm.EventQuestClaimed, map[string]any{"quest_id": def.ID})
	return nil
}

// BuiltBuildingKinds returns the kinds of the player's buildings that are
// complete at now, across every location.
func BuiltBuildingKinds(ctx context.Context, entities ports.EntityRepository, reg *catalog.Registry, playerID string, now time.Time) (map[string]bool, error) {
	all, err := entities.ListByOwner(ctx, playerID, "")
	if err != nil {
		return nil, err
	}
	built := map[string]bool{}
	for _, e := range all {
		if e.Category != catalog.CategoryBuilding {
			continue
		}
		def, err := reg.Building(e.Kind)
		if err != nil {
			continue
		}
		if lifecycle.EvaluateBuilding(e, def, now).Status == lifecycle.StatusBuilt {
			built[e.Kind] = true
		}
	}
	return built, nil
}

// MissingQuestRequirements returns nil when the quest can be claimed.
func MissingQuestRequirements(def catalog.QuestDef, held economy.Amounts, built map[string]bool) *QuestIncompleteError {
	var missingBuildings []string
	for _, kind := range def.RequiredBuildings {
		if !built[kind] {
			missingBuildings = append(missingBuildings, kind)
		}
	}
	sort.Strings(missingBuildings)
	missingResources := economy.Amounts{}
	for r, need := range def.RequiredResources {
		if have := held.Get(r); have < need {
			missingResources[r] = need - have
		}
	}
	if len(missingBuildings) == 0 && missingResources.IsZero() {
		return nil
	}
	return &QuestIncompleteError{
		QuestID:          def.ID,
		MissingBuildings: missingBuildings,
		MissingResources: missingResources,
	}
}

type purchaseActionHandler struct{ BaseHandler }

func (purchaseActionHandler) ExecuteActionAndPlan(_ context.Context, uc UseCase, ac *ActionContext) error {
	item, err := uc.Catalog.MarketItem(ac.Tmp.Intent.TargetID)
	if err != nil {
		return notFoundDefinition(err)
	}
	if err := ac.debit(item.Cost); err != nil {
		return err
	}
	ac.credit(item.Rewards)
	return nil
}

type removeActionHandler struct{ BaseHandler }

func (removeActionHandler) ExecuteActionAndPlan(_ context.Context, _ UseCase, ac *ActionContext) error {
	ac.removeTarget()
	return nil
}
