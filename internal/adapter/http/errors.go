package httpadapter

import (
	"context"
	"errors"

	"homestead/internal/app/action"
	"homestead/internal/app/farmview"
	"homestead/internal/app/onboard"
	"homestead/internal/app/ports"
	"homestead/internal/app/progress"
	"homestead/internal/app/replay"
	"homestead/internal/app/status"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/economy"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func writeError(c context.Context, ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error(), nil)
	case errors.Is(err, catalog.ErrInvalidKind):
		details := map[string]any{}
		var kindErr *catalog.UnknownKindError
		if errors.As(err, &kindErr) {
			details["category"] = string(kindErr.Category)
			details["kind"] = kindErr.Kind
			if kindErr.Suggestion != "" {
				details["suggestion"] = kindErr.Suggestion
			}
		}
		// Unknown collection, quest and market ids surface as not found.
		code := consts.StatusBadRequest
		name := "invalid_kind"
		if errors.Is(err, action.ErrNotFound) {
			code = consts.StatusNotFound
			name = "not_found"
		}
		writeErrorBody(ctx, code, name, err.Error(), details)
	case errors.Is(err, action.ErrLevelTooLow):
		details := map[string]any{}
		var levelErr *action.LevelTooLowError
		if errors.As(err, &levelErr) {
			details["required"] = levelErr.Required
			details["current"] = levelErr.Current
		}
		writeErrorBody(ctx, consts.StatusForbidden, "level_too_low", err.Error(), details)
	case errors.Is(err, economy.ErrInsufficientResources):
		details := map[string]any{}
		var resErr *economy.InsufficientResourcesError
		if errors.As(err, &resErr) {
			details["resource"] = string(resErr.Resource)
			details["have"] = resErr.Have
			details["need"] = resErr.Need
		}
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_resources", err.Error(), details)
	case errors.Is(err, economy.ErrInsufficientItems):
		details := map[string]any{}
		var itemErr *economy.InsufficientItemsError
		if errors.As(err, &itemErr) {
			details["item"] = itemErr.Item
			details["have"] = itemErr.Have
			details["need"] = itemErr.Need
		}
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_items", err.Error(), details)
	case errors.Is(err, action.ErrPositionOccupied):
		details := map[string]any{}
		var posErr *action.PositionOccupiedError
		if errors.As(err, &posErr) {
			details["location"] = posErr.Location
			details["position"] = posErr.Position
		}
		writeErrorBody(ctx, consts.StatusConflict, "position_occupied", err.Error(), details)
	case errors.Is(err, action.ErrNotReady):
		writeErrorBody(ctx, consts.StatusConflict, "not_ready", err.Error(), notReadyDetails(err))
	case errors.Is(err, action.ErrNotAdult):
		writeErrorBody(ctx, consts.StatusConflict, "not_adult", err.Error(), nil)
	case errors.Is(err, action.ErrNotBuilt):
		writeErrorBody(ctx, consts.StatusConflict, "not_built", err.Error(), nil)
	case errors.Is(err, action.ErrWithered):
		writeErrorBody(ctx, consts.StatusConflict, "withered", err.Error(), nil)
	case errors.Is(err, action.ErrAlreadyClaimed):
		writeErrorBody(ctx, consts.StatusConflict, "already_claimed", err.Error(), nil)
	case errors.Is(err, action.ErrInvalidActionParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error(), nil)
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, onboard.ErrInvalidRequest),
		errors.Is(err, farmview.ErrInvalidRequest),
		errors.Is(err, progress.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error(), nil)
	case errors.Is(err, action.ErrPlayerNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "player_not_found", err.Error(), nil)
	case errors.Is(err, action.ErrNotFound),
		errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error(), nil)
	default:
		hlog.CtxErrorf(c, "request %s %s failed: %v", ctx.Method(), ctx.Path(), err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func notReadyDetails(err error) map[string]any {
	var readyErr *action.NotReadyError
	if errors.As(err, &readyErr) {
		return map[string]any{
			"status":            string(readyErr.Status),
			"remaining_seconds": readyErr.RemainingSeconds,
		}
	}
	var questErr *action.QuestIncompleteError
	if errors.As(err, &questErr) {
		details := map[string]any{"quest_id": questErr.QuestID}
		if len(questErr.MissingBuildings) > 0 {
			details["missing_buildings"] = questErr.MissingBuildings
		}
		if len(questErr.MissingResources) > 0 {
			details["missing_resources"] = questErr.MissingResources
		}
		return details
	}
	return nil
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	body := map[string]any{
		"code":    code,
		"message": message,
	}
	if len(details) > 0 {
		body["details"] = details
	}
	ctx.JSON(status, map[string]any{"error": body})
}
