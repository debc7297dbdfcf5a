package action

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
	"homestead/internal/domain/reward"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNotFound            = errors.New("entity not found")
	ErrLevelTooLow         = errors.New("level too low")
	ErrPositionOccupied    = errors.New("position occupied")
	ErrNotReady            = errors.New("not ready")
	ErrNotAdult            = errors.New("not adult")
	ErrNotBuilt            = errors.New("not built")
	ErrWithered            = errors.New("withered")
	ErrAlreadyClaimed      = errors.New("already claimed")
)

type LevelTooLowError struct {
	Required int
	Current  int
}

func (e *LevelTooLowError) Error() string {
	return fmt.Sprintf("%s: required=%d current=%d", ErrLevelTooLow, e.Required, e.Current)
}

func (e *LevelTooLowError) Unwrap() error {
	return ErrLevelTooLow
}

type NotReadyError struct {
	Status           lifecycle.Status
	RemainingSeconds int
}

func (e *NotReadyError) Error() string {
	return ErrNotReady.Error()
}

func (e *NotReadyError) Unwrap() error {
	return ErrNotReady
}

type PositionOccupiedError struct {
	Location string
	Position string
}

func (e *PositionOccupiedError) Error() string {
	return fmt.Sprintf("%s: %s/%s", ErrPositionOccupied, e.Location, e.Position)
}

func (e *PositionOccupiedError) Unwrap() error {
	return ErrPositionOccupied
}

type UseCase struct {
	TxManager  ports.TxManager
	Players    ports.PlayerRepository
	Entities   ports.EntityRepository
	ActionRepo ports.ActionExecutionRepository
	EventRepo  ports.EventRepository
	Catalog    *catalog.Registry
	Metrics    ports.ActionMetrics
	Journal    ports.ActionJournal
	Random     reward.Source
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	ac, err := u.ValidateRequest(req)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	ac.In.NowAt = nowFn()

	if err := u.ObserveTarget(ctx, &ac); err != nil {
		u.recordFailure(ac.Tmp.Intent.Type, err)
		return Response{}, err
	}

	var out Response
	replayed := false
	err = u.TxManager.RunInTx(ctx, ac.In.PlayerID, func(txCtx context.Context) error {
		replay, ok, err := u.ReplayIdempotent(txCtx, &ac)
		if err != nil {
			return err
		}
		if ok {
			out = replay
			replayed = true
			return nil
		}
		if err := u.LoadPlayer(txCtx, &ac); err != nil {
			return err
		}
		if err := u.ResolveSpec(&ac); err != nil {
			return err
		}
		if err := u.LoadTarget(txCtx, &ac); err != nil {
			return err
		}
		if err := u.RunPrechecks(txCtx, &ac); err != nil {
			return err
		}
		if err := u.ExecuteActionAndPlan(txCtx, &ac); err != nil {
			return err
		}
		if err := u.PersistAndRespond(txCtx, &ac); err != nil {
			return err
		}
		out = ac.Tmp.Response
		return nil
	})
	if err != nil {
		u.recordFailure(ac.Tmp.Intent.Type, err)
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(ac.Tmp.Intent.Type, out.ResultCode)
	}
	if !replayed {
		u.writeJournal(ctx, &ac, out)
	}
	return out, nil
}

func (u UseCase) recordFailure(action farm.ActionType, err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict(action)
		return
	}
	u.Metrics.RecordFailure(action)
}

func (u UseCase) writeJournal(ctx context.Context, ac *ActionContext, out Response) {
	if u.Journal == nil {
		return
	}
	err := u.Journal.Write(ports.JournalEntry{
		PlayerID:       ac.In.PlayerID,
		IdempotencyKey: ac.In.IdempotencyKey,
		Action:         out.Action,
		ResultCode:     out.ResultCode,
		Events:         out.Events,
		AppliedAt:      ac.In.NowAt,
	})
	if err != nil {
		hlog.CtxWarnf(ctx, "journal write failed player=%s key=%s: %v", ac.In.PlayerID, ac.In.IdempotencyKey, err)
	}
}

func (u UseCase) roller() reward.Roller {
	src := u.Random
	if src == nil {
		src = reward.NewSeeded(uint64(time.Now().UnixNano()))
	}
	return reward.Roller{Src: src}
}
