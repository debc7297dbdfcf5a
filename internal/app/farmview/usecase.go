package farmview

import (
	"context"
	"errors"
	"strings"
	"time"

	"homestead/internal/app/action"
	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/lifecycle"
)

var ErrInvalidRequest = errors.New("invalid farm view request")

type UseCase struct {
	TxManager ports.TxManager
	Entities  ports.EntityRepository
	Events    ports.EventRepository
	Catalog   *catalog.Registry
	Now       func() time.Time
}

// Execute lists the player's entities with their derived state. Building
// completions observed here are written back in the same transaction.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return Response{}, ErrInvalidRequest
	}
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = lifecycle.DefaultLocation
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	resp := Response{Location: location, Entities: []lifecycle.View{}, Counts: map[catalog.Category]int{}}
	err := u.TxManager.RunInTx(ctx, req.PlayerID, func(txCtx context.Context) error {
		entities, err := u.Entities.ListByOwner(txCtx, req.PlayerID, location)
		if err != nil {
			return err
		}
		for i := range entities {
			e := entities[i]
			state, err := action.CacheObservedCompletion(txCtx, u.Entities, u.Events, u.Catalog, &e, now)
			if err != nil {
				return err
			}
			resp.Entities = append(resp.Entities, lifecycle.View{Entity: e, State: state})
			resp.Counts[e.Category]++
			if state.Ready {
				resp.Ready++
			}
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}
