package action

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"

	"github.com/google/uuid"
)

func (u UseCase) ValidateRequest(req Request) (ActionContext, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Intent = normalizeIntent(req.Intent)

	if req.PlayerID == "" || !isSupportedActionType(req.Intent.Type) {
		return ActionContext{}, ErrInvalidRequest
	}
	if !hasValidActionParams(req.Intent) {
		return ActionContext{}, ErrInvalidActionParams
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}

	return ActionContext{
		In: ActionInput{
			Req:            req,
			PlayerID:       req.PlayerID,
			IdempotencyKey: req.IdempotencyKey,
		},
		Tmp: ActionTmp{Intent: req.Intent, Delta: economy.Amounts{}},
	}, nil
}

// ObserveTarget persists a building completion before the action itself runs,
// so that a rejected collect still leaves the observed transition behind.
func (u UseCase) ObserveTarget(ctx context.Context, ac *ActionContext) error {
	spec, ok := actionRegistry()[ac.Tmp.Intent.Type]
	if !ok || spec.TargetCategory != catalog.CategoryBuilding {
		return nil
	}
	return u.TxManager.RunInTx(ctx, ac.In.PlayerID, func(txCtx context.Context) error {
		entity, err := u.Entities.Get(txCtx, ac.In.PlayerID, ac.Tmp.Intent.TargetID)
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = CacheObservedCompletion(txCtx, u.Entities, u.EventRepo, u.Catalog, &entity, ac.In.NowAt)
		return err
	})
}

func (u UseCase) ReplayIdempotent(ctx context.Context, ac *ActionContext) (Response, bool, error) {
	exec, err := u.ActionRepo.GetByIdempotencyKey(ctx, ac.In.PlayerID, ac.In.IdempotencyKey)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return Response{}, false, err
	}
	if err != nil || exec == nil {
		return Response{}, false, nil
	}
	var out Response
	if err := json.Unmarshal(exec.Result, &out); err != nil {
		return Response{}, false, fmt.Errorf("decode stored action result: %w", err)
	}
	return out, true, nil
}

func (u UseCase) LoadPlayer(ctx context.Context, ac *ActionContext) error {
	player, err := u.Players.GetByID(ctx, ac.In.PlayerID)
	if errors.Is(err, ports.ErrNotFound) {
		return ErrPlayerNotFound
	}
	if err != nil {
		return err
	}
	ac.View.PlayerBefore = player
	ac.Tmp.Player = economy.RegenerateEnergy(player.Clone(), ac.In.NowAt)
	return nil
}

func (u UseCase) ResolveSpec(ac *ActionContext) error {
	spec, ok := actionRegistry()[ac.Tmp.Intent.Type]
	if !ok {
		return ErrInvalidRequest
	}
	ac.View.Spec = spec
	return nil
}

func (u UseCase) LoadTarget(ctx context.Context, ac *ActionContext) error {
	if !ac.View.Spec.NeedsTarget() {
		return nil
	}
	entity, err := u.Entities.Get(ctx, ac.In.PlayerID, ac.Tmp.Intent.TargetID)
	if errors.Is(err, ports.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if ac.View.Spec.TargetCategory != categoryAny && entity.Category != ac.View.Spec.TargetCategory {
		return ErrNotFound
	}
	if ac.View.Spec.TargetCategory != categoryAny {
		state, err := lifecycle.Evaluate(entity, u.Catalog, ac.In.NowAt)
		if err != nil {
			return err
		}
		ac.View.TargetState = state
	}
	ac.View.Target = &entity
	return nil
}

func (u UseCase) RunPrechecks(ctx context.Context, ac *ActionContext) error {
	if ac.View.Spec.Handler != nil {
		return ac.View.Spec.Handler.Precheck(ctx, u, ac)
	}
	return nil
}

func (u UseCase) ExecuteActionAndPlan(ctx context.Context, ac *ActionContext) error {
	if ac.View.Spec.Handler == nil {
		return nil
	}
	if err := ac.View.Spec.Handler.ExecuteActionAndPlan(ctx, u, ac); err != nil {
		return err
	}
	if ac.Plan.ResultCode == "" {
		ac.Plan.ResultCode = farm.ResultOK
	}
	ac.appendLedgerEvents()

	player := ac.Tmp.Player
	player.Version = ac.View.PlayerBefore.Version + 1
	player.UpdatedAt = ac.In.NowAt
	ac.Tmp.Player = player
	ac.Plan.PlayerToSave = &player
	ac.Plan.PlayerVersion = ac.View.PlayerBefore.Version
	return nil
}

func (u UseCase) PersistAndRespond(ctx context.Context, ac *ActionContext) error {
	for _, id := range ac.Plan.EntityIDsToDelete {
		if err := u.Entities.Delete(ctx, ac.In.PlayerID, id); err != nil {
			return err
		}
	}
	for _, entity := range ac.Plan.EntitiesToInsert {
		if err := u.Entities.Insert(ctx, entity); err != nil {
			if errors.Is(err, ports.ErrOccupied) {
				return &PositionOccupiedError{Location: entity.Location, Position: entity.Position}
			}
			return err
		}
	}
	for _, upd := range ac.Plan.EntitiesToUpdate {
		if err := u.Entities.UpdateWithVersion(ctx, upd.Entity, upd.ExpectedVersion); err != nil {
			return err
		}
	}
	if ac.Plan.PlayerToSave != nil {
		if err := u.Players.SaveWithVersion(ctx, *ac.Plan.PlayerToSave, ac.Plan.PlayerVersion); err != nil {
			return err
		}
	}

	for i := range ac.Plan.EventsToAppend {
		if ac.Plan.EventsToAppend[i].Payload == nil {
			ac.Plan.EventsToAppend[i].Payload = map[string]any{}
		}
		ac.Plan.EventsToAppend[i].Payload["player_id"] = ac.In.PlayerID
		ac.Plan.EventsToAppend[i].Payload["action"] = string(ac.Tmp.Intent.Type)
	}

	resp := Response{
		Action:           ac.Tmp.Intent.Type,
		Player:           ac.Tmp.Player,
		Entity:           ac.Tmp.Entity,
		Deleted:          ac.Tmp.Deleted,
		Spawned:          ac.Tmp.Spawned,
		Created:          ac.Tmp.Created,
		Delta:            ac.Tmp.Delta,
		Drops:            ac.Tmp.Drops,
		Butterflies:      ac.Tmp.Butterflies,
		ExperienceGained: ac.Tmp.XP,
		LevelUp:          ac.Tmp.LevelUp,
		Events:           ac.Plan.EventsToAppend,
		ResultCode:       ac.Plan.ResultCode,
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode action result: %w", err)
	}
	if err := u.ActionRepo.SaveExecution(ctx, ports.ActionExecutionRecord{
		PlayerID:       ac.In.PlayerID,
		IdempotencyKey: ac.In.IdempotencyKey,
		IntentType:     ac.Tmp.Intent.Type,
		ResultCode:     ac.Plan.ResultCode,
		Result:         raw,
		AppliedAt:      ac.In.NowAt,
	}); err != nil {
		return err
	}

	if len(ac.Plan.EventsToAppend) > 0 {
		if err := u.EventRepo.Append(ctx, ac.In.PlayerID, ac.Plan.EventsToAppend); err != nil {
			return err
		}
	}
	ac.Tmp.Response = resp
	return nil
}

// CacheObservedCompletion evaluates a building and, when its completion is
// observed for the first time, stores the cached fields and records a
// building_completed event. Other entities are left untouched.
func CacheObservedCompletion(ctx context.Context, repo ports.EntityRepository, events ports.EventRepository, reg *catalog.Registry, entity *lifecycle.Entity, now time.Time) (lifecycle.State, error) {
	state, err := lifecycle.Evaluate(*entity, reg, now)
	if err != nil {
		return lifecycle.State{}, err
	}
	if entity.Category != catalog.CategoryBuilding {
		return state, nil
	}
	expected := entity.Version
	if !entity.CacheBuildCompletion(state) {
		return state, nil
	}
	entity.Version = expected + 1
	if err := repo.UpdateWithVersion(ctx, *entity, expected); err != nil {
		return lifecycle.State{}, err
	}
	if events != nil {
		evt := farm.DomainEvent{
			Type:       farm.EventBuildingCompleted,
			OccurredAt: now,
			Payload: map[string]any{
				"player_id": entity.OwnerID,
				"entity_id": entity.ID,
				"kind":      entity.Kind,
			},
		}
		if err := events.Append(ctx, entity.OwnerID, []farm.DomainEvent{evt}); err != nil {
			return lifecycle.State{}, err
		}
	}
	return state, nil
}
