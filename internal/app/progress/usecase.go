package progress

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"homestead/internal/app/action"
	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
)

var ErrInvalidRequest = errors.New("invalid progress request")

type UseCase struct {
	Players  ports.PlayerRepository
	Entities ports.EntityRepository
	Catalog  *catalog.Registry
	Now      func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	player, err := u.Players.GetByID(ctx, req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	player = economy.RegenerateEnergy(player, now)

	built, err := action.BuiltBuildingKinds(ctx, u.Entities, u.Catalog, req.PlayerID, now)
	if err != nil {
		return Response{}, err
	}

	resp := Response{}
	for _, def := range u.Catalog.Collections() {
		resp.Collections = append(resp.Collections, collectionProgress(def, player.Collections))
	}
	for _, def := range u.Catalog.Quests() {
		qp := QuestProgress{
			ID:            def.ID,
			Name:          def.Name,
			LevelRequired: def.LevelRequired,
			Unlocked:      player.Level >= def.LevelRequired,
			Claimed:       player.HasClaimed(def.ID),
			Rewards:       def.Rewards,
		}
		if missing := action.MissingQuestRequirements(def, player.Resources, built); missing != nil {
			qp.MissingBuildings = missing.MissingBuildings
			qp.MissingResources = missing.MissingResources
		}
		qp.Claimable = qp.Unlocked && !qp.Claimed && len(qp.MissingBuildings) == 0 && qp.MissingResources.IsZero()
		resp.Quests = append(resp.Quests, qp)
	}
	return resp, nil
}

func collectionProgress(def catalog.CollectionDef, held economy.Inventory) CollectionProgress {
	items := make([]string, 0, len(def.ItemsNeeded))
	for item := range def.ItemsNeeded {
		items = append(items, item)
	}
	sort.Strings(items)

	out := CollectionProgress{ID: def.ID, Name: def.Name, Rewards: def.Rewards, Complete: true}
	for _, item := range items {
		need := def.ItemsNeeded[item]
		have := held[item]
		out.Items = append(out.Items, ItemProgress{Item: item, Have: have, Need: need})
		if have < need {
			out.Complete = false
		}
	}
	return out
}
