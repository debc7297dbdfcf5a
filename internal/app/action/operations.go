package action

import (
	"context"

	"homestead/internal/domain/farm"
)

type Placement struct {
	Location string
	Position string
}

func (u UseCase) run(ctx context.Context, playerID, key string, intent farm.ActionIntent) (Response, error) {
	return u.Execute(ctx, Request{PlayerID: playerID, IdempotencyKey: key, Intent: intent})
}

func (u UseCase) Plant(ctx context.Context, playerID, key, kind string, at Placement) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionPlant, Kind: kind, Location: at.Location, Position: at.Position})
}

func (u UseCase) Harvest(ctx context.Context, playerID, key, cropID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionHarvest, TargetID: cropID})
}

func (u UseCase) Protect(ctx context.Context, playerID, key, cropID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionProtect, TargetID: cropID})
}

func (u UseCase) BuyAnimal(ctx context.Context, playerID, key, kind string, at Placement) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionBuyAnimal, Kind: kind, Location: at.Location, Position: at.Position})
}

func (u UseCase) Feed(ctx context.Context, playerID, key, animalID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionFeed, TargetID: animalID})
}

func (u UseCase) CollectAnimal(ctx context.Context, playerID, key, animalID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionCollectAnimal, TargetID: animalID})
}

func (u UseCase) Build(ctx context.Context, playerID, key, kind string, at Placement) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionBuild, Kind: kind, Location: at.Location, Position: at.Position})
}

func (u UseCase) CollectBuilding(ctx context.Context, playerID, key, buildingID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionCollectBuilding, TargetID: buildingID})
}

func (u UseCase) ClearTerritory(ctx context.Context, playerID, key, elementID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionClearTerritory, TargetID: elementID})
}

func (u UseCase) GenerateTerritory(ctx context.Context, playerID, key, location string, count int) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionGenerateTerritory, Location: location, Count: count})
}

func (u UseCase) ChasePest(ctx context.Context, playerID, key, pestID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionChasePest, TargetID: pestID})
}

func (u UseCase) ExchangeCollection(ctx context.Context, playerID, key, collectionID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionExchangeCollection, TargetID: collectionID})
}

func (u UseCase) ClaimQuest(ctx context.Context, playerID, key, questID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionClaimQuest, TargetID: questID})
}

func (u UseCase) Purchase(ctx context.Context, playerID, key, itemID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionPurchase, TargetID: itemID})
}

func (u UseCase) Remove(ctx context.Context, playerID, key, entityID string) (Response, error) {
	return u.run(ctx, playerID, key, farm.ActionIntent{Type: farm.ActionRemove, TargetID: entityID})
}
