package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"homestead/internal/app/action"
	"homestead/internal/app/farmview"
	"homestead/internal/app/onboard"
	"homestead/internal/app/progress"
	"homestead/internal/app/replay"
	"homestead/internal/app/status"
	"homestead/internal/domain/catalog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"
const idempotencyKeyHeader = "Idempotency-Key"

var ErrMissingPlayerIDHeader = errors.New("missing x-player-id header")

type Handler struct {
	OnboardUC  onboard.UseCase
	ActionUC   action.UseCase
	StatusUC   status.UseCase
	FarmViewUC farmview.UseCase
	ProgressUC progress.UseCase
	ReplayUC   replay.UseCase
	Catalog    *catalog.Registry
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/health", h.health)
	api.GET("/catalog", h.catalog)
	api.POST("/player", h.createPlayer)
	api.GET("/player/profile", h.profile)
	api.GET("/player/events", h.events)
	api.GET("/farm", h.farm)
	api.GET("/progress", h.progress)

	api.POST("/crops", h.plant)
	api.POST("/crops/:id/harvest", h.harvest)
	api.POST("/crops/:id/protect", h.protect)
	api.POST("/animals", h.buyAnimal)
	api.POST("/animals/:id/feed", h.feed)
	api.POST("/animals/:id/collect", h.collectAnimal)
	api.POST("/buildings", h.build)
	api.POST("/buildings/:id/collect", h.collectBuilding)
	api.POST("/territory/generate", h.generateTerritory)
	api.POST("/territory/:id/clear", h.clearTerritory)
	api.POST("/pests/:id/chase", h.chasePest)
	api.POST("/collections/:id/exchange", h.exchange)
	api.POST("/quests/:id/claim", h.claimQuest)
	api.POST("/market/purchase", h.purchase)
	api.DELETE("/entities/:id", h.remove)

	s.GET("/ops/kpi", h.kpi)
}

type placementRequest struct {
	Kind     string `json:"kind"`
	Position string `json:"position"`
	Location string `json:"location,omitempty"`
}

type generateRequest struct {
	Location string `json:"location,omitempty"`
	Count    int    `json:"count,omitempty"`
}

type purchaseRequest struct {
	ItemID string `json:"item_id"`
}

type createPlayerRequest struct {
	PlayerID string `json:"player_id,omitempty"`
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

var catalogCategories = []catalog.Category{
	catalog.CategoryCrop,
	catalog.CategoryAnimal,
	catalog.CategoryBuilding,
	catalog.CategoryTerritory,
	catalog.CategoryPest,
	catalog.CategoryCollection,
	catalog.CategoryQuest,
	catalog.CategoryMarket,
}

func (h Handler) catalog(_ context.Context, ctx *app.RequestContext) {
	if h.Catalog == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "catalog not configured", nil)
		return
	}
	kinds := make(map[string][]string, len(catalogCategories))
	for _, cat := range catalogCategories {
		kinds[string(cat)] = h.Catalog.Kinds(cat)
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"kinds":            kinds,
		"level_thresholds": h.Catalog.Levels().Thresholds(),
	})
}

func (h Handler) createPlayer(c context.Context, ctx *app.RequestContext) {
	var body createPlayerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", nil)
		return
	}
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		playerID = body.PlayerID
	}
	resp, err := h.OnboardUC.Execute(c, onboard.Request{PlayerID: playerID})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	code := consts.StatusOK
	if resp.Created {
		code = consts.StatusCreated
	}
	ctx.JSON(code, resp)
}

func (h Handler) profile(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{PlayerID: playerID})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) farm(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.FarmViewUC.Execute(c, farmview.Request{
		PlayerID: playerID,
		Location: string(ctx.Query("location")),
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) progress(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.ProgressUC.Execute(c, progress.Request{PlayerID: playerID})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		PlayerID:     playerID,
		Limit:        limit,
		Type:         string(ctx.Query("type")),
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type actionFunc func(c context.Context, playerID, key string) (action.Response, error)

// runAction resolves the caller and idempotency key shared by every mutating
// route and renders the action outcome.
func (h Handler) runAction(c context.Context, ctx *app.RequestContext, fn actionFunc) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	key := strings.TrimSpace(string(ctx.GetHeader(idempotencyKeyHeader)))
	resp, err := fn(c, playerID, key)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) placement(ctx *app.RequestContext) (placementRequest, bool) {
	var body placementRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", nil)
		return placementRequest{}, false
	}
	return body, true
}

func (h Handler) plant(c context.Context, ctx *app.RequestContext) {
	body, ok := h.placement(ctx)
	if !ok {
		return
	}
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.Plant(c, playerID, key, body.Kind, action.Placement{Location: body.Location, Position: body.Position})
	})
}

func (h Handler) harvest(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.Harvest(c, playerID, key, id)
	})
}

func (h Handler) protect(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.Protect(c, playerID, key, id)
	})
}

func (h Handler) buyAnimal(c context.Context, ctx *app.RequestContext) {
	body, ok := h.placement(ctx)
	if !ok {
		return
	}
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.BuyAnimal(c, playerID, key, body.Kind, action.Placement{Location: body.Location, Position: body.Position})
	})
}

func (h Handler) feed(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.Feed(c, playerID, key, id)
	})
}

func (h Handler) collectAnimal(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.CollectAnimal(c, playerID, key, id)
	})
}

func (h Handler) build(c context.Context, ctx *app.RequestContext) {
	body, ok := h.placement(ctx)
	if !ok {
		return
	}
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.Build(c, playerID, key, body.Kind, action.Placement{Location: body.Location, Position: body.Position})
	})
}

func (h Handler) collectBuilding(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.CollectBuilding(c, playerID, key, id)
	})
}

func (h Handler) generateTerritory(c context.Context, ctx *app.RequestContext) {
	var body generateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", nil)
		return
	}
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.GenerateTerritory(c, playerID, key, body.Location, body.Count)
	})
}

func (h Handler) clearTerritory(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.ClearTerritory(c, playerID, key, id)
	})
}

func (h Handler) chasePest(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.ChasePest(c, playerID, key, id)
	})
}

func (h Handler) exchange(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.ExchangeCollection(c, playerID, key, id)
	})
}

func (h Handler) claimQuest(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.ClaimQuest(c, playerID, key, id)
	})
}

func (h Handler) purchase(c context.Context, ctx *app.RequestContext) {
	var body purchaseRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", nil)
		return
	}
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.Purchase(c, playerID, key, body.ItemID)
	})
}

func (h Handler) remove(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	h.runAction(c, ctx, func(c context.Context, playerID, key string) (action.Response, error) {
		return h.ActionUC.Remove(c, playerID, key, id)
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured", nil)
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func requirePlayer(ctx *app.RequestContext) (string, error) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		return "", ErrMissingPlayerIDHeader
	}
	return playerID, nil
}
