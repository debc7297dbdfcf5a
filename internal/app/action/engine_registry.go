package action

import (
	"context"
	"strings"
	"time"

	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

type ActionSpec struct {
	Type           farm.ActionType
	TargetCategory catalog.Category
	Handler        ActionHandler
}

func (s ActionSpec) NeedsTarget() bool {
	return s.TargetCategory != ""
}

type ActionHandler interface {
	Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error
	ExecuteActionAndPlan(ctx context.Context, uc UseCase, ac *ActionContext) error
}

type BaseHandler struct{}

func (BaseHandler) Precheck(context.Context, UseCase, *ActionContext) error { return nil }
func (BaseHandler) ExecuteActionAndPlan(context.Context, UseCase, *ActionContext) error {
	return nil
}

type ActionInput struct {
	Req            Request
	NowAt          time.Time
	PlayerID       string
	IdempotencyKey string
}

type ActionView struct {
	Spec         ActionSpec
	PlayerBefore economy.Player
	Target       *lifecycle.Entity
	TargetState  lifecycle.State
}

type entityUpdate struct {
	Entity          lifecycle.Entity
	ExpectedVersion int64
}

type ActionWritePlan struct {
	PlayerToSave      *economy.Player
	PlayerVersion     int64
	EntityIDsToDelete []string
	EntitiesToInsert  []lifecycle.Entity
	EntitiesToUpdate  []entityUpdate
	EventsToAppend    []farm.DomainEvent
	ResultCode        farm.ResultCode
}

type ActionTmp struct {
	Intent      farm.ActionIntent
	Player      economy.Player
	Delta       economy.Amounts
	Drops       []string
	Butterflies int
	XP          int
	LevelUp     bool
	Entity      *lifecycle.View
	Deleted     bool
	Spawned     *lifecycle.View
	Created     []lifecycle.View
	Response    Response
}

type ActionContext struct {
	In   ActionInput
	View ActionView
	Plan ActionWritePlan
	Tmp  ActionTmp
}

func actionRegistry() map[farm.ActionType]ActionSpec {
	return map[farm.ActionType]ActionSpec{
		farm.ActionPlant:              {Type: farm.ActionPlant, Handler: plantActionHandler{}},
		farm.ActionHarvest:            {Type: farm.ActionHarvest, TargetCategory: catalog.CategoryCrop, Handler: harvestActionHandler{}},
		farm.ActionProtect:            {Type: farm.ActionProtect, TargetCategory: catalog.CategoryCrop, Handler: protectActionHandler{}},
		farm.ActionBuyAnimal:          {Type: farm.ActionBuyAnimal, Handler: buyAnimalActionHandler{}},
		farm.ActionFeed:               {Type: farm.ActionFeed, TargetCategory: catalog.CategoryAnimal, Handler: feedActionHandler{}},
		farm.ActionCollectAnimal:      {Type: farm.ActionCollectAnimal, TargetCategory: catalog.CategoryAnimal, Handler: collectAnimalActionHandler{}},
		farm.ActionBuild:              {Type: farm.ActionBuild, Handler: buildActionHandler{}},
		farm.ActionCollectBuilding:    {Type: farm.ActionCollectBuilding, TargetCategory: catalog.CategoryBuilding, Handler: collectBuildingActionHandler{}},
		farm.ActionClearTerritory:     {Type: farm.ActionClearTerritory, TargetCategory: catalog.CategoryTerritory, Handler: clearTerritoryActionHandler{}},
		farm.ActionGenerateTerritory:  {Type: farm.ActionGenerateTerritory, Handler: generateTerritoryActionHandler{}},
		farm.ActionChasePest:          {Type: farm.ActionChasePest, TargetCategory: catalog.CategoryPest, Handler: chasePestActionHandler{}},
		farm.ActionExchangeCollection: {Type: farm.ActionExchangeCollection, Handler: exchangeCollectionActionHandler{}},
		farm.ActionClaimQuest:         {Type: farm.ActionClaimQuest, Handler: claimQuestActionHandler{}},
		farm.ActionPurchase:           {Type: farm.ActionPurchase, Handler: purchaseActionHandler{}},
		farm.ActionRemove:             {Type: farm.ActionRemove, TargetCategory: categoryAny, Handler: removeActionHandler{}},
	}
}

// categoryAny lets remove target an entity of any category.
const categoryAny catalog.Category = "*"

func supportedActionTypes() []farm.ActionType {
	return []farm.ActionType{
		farm.ActionPlant,
		farm.ActionHarvest,
		farm.ActionProtect,
		farm.ActionBuyAnimal,
		farm.ActionFeed,
		farm.ActionCollectAnimal,
		farm.ActionBuild,
		farm.ActionCollectBuilding,
		farm.ActionClearTerritory,
		farm.ActionGenerateTerritory,
		farm.ActionChasePest,
		farm.ActionExchangeCollection,
		farm.ActionClaimQuest,
		farm.ActionPurchase,
		farm.ActionRemove,
	}
}

func isSupportedActionType(t farm.ActionType) bool {
	for _, actionType := range supportedActionTypes() {
		if t == actionType {
			return true
		}
	}
	return false
}

func actionParamValidators() map[farm.ActionType]func(farm.ActionIntent) bool {
	return map[farm.ActionType]func(farm.ActionIntent) bool{
		farm.ActionPlant:              validatePlacementParams,
		farm.ActionHarvest:            validateTargetParams,
		farm.ActionProtect:            validateTargetParams,
		farm.ActionBuyAnimal:          validatePlacementParams,
		farm.ActionFeed:               validateTargetParams,
		farm.ActionCollectAnimal:      validateTargetParams,
		farm.ActionBuild:              validatePlacementParams,
		farm.ActionCollectBuilding:    validateTargetParams,
		farm.ActionClearTerritory:     validateTargetParams,
		farm.ActionGenerateTerritory:  validateGenerateParams,
		farm.ActionChasePest:          validateTargetParams,
		farm.ActionExchangeCollection: validateTargetParams,
		farm.ActionClaimQuest:         validateTargetParams,
		farm.ActionPurchase:           validateTargetParams,
		farm.ActionRemove:             validateTargetParams,
	}
}

func hasValidActionParams(intent farm.ActionIntent) bool {
	validate, ok := actionParamValidators()[intent.Type]
	if !ok {
		return false
	}
	return validate(intent)
}

func validatePlacementParams(intent farm.ActionIntent) bool {
	return intent.Kind != "" && intent.Position != ""
}

func validateTargetParams(intent farm.ActionIntent) bool {
	return intent.TargetID != ""
}

func validateGenerateParams(intent farm.ActionIntent) bool {
	return intent.Count >= 0 && intent.Count <= maxGeneratedElements
}

func normalizeIntent(intent farm.ActionIntent) farm.ActionIntent {
	intent.Type = farm.ActionType(strings.ToLower(strings.TrimSpace(string(intent.Type))))
	intent.Kind = strings.TrimSpace(intent.Kind)
	intent.TargetID = strings.TrimSpace(intent.TargetID)
	intent.Location = strings.TrimSpace(intent.Location)
	intent.Position = strings.TrimSpace(intent.Position)
	if intent.Location == "" {
		intent.Location = lifecycle.DefaultLocation
	}
	return intent
}
