package onboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/economy"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid onboarding request")

type Request struct {
	PlayerID string
}

type Response struct {
	Player  economy.Player `json:"player"`
	Created bool           `json:"created"`
}

// UseCase creates players with the starting balance. Registering an existing
// id returns the stored player unchanged.
type UseCase struct {
	Players        ports.PlayerRepository
	TxManager      ports.TxManager
	StartResources economy.Amounts
	Now            func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Players == nil || u.TxManager == nil {
		return Response{}, ErrInvalidRequest
	}
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		playerID = uuid.NewString()
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	var out Response
	err := u.TxManager.RunInTx(ctx, playerID, func(txCtx context.Context) error {
		existing, err := u.Players.GetByID(txCtx, playerID)
		if err == nil {
			out = Response{Player: existing}
			return nil
		}
		if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		seed := economy.NewPlayer(playerID, u.StartResources, now)
		seed.Version = 1
		if err := u.Players.SaveWithVersion(txCtx, seed, 0); err != nil {
			return err
		}
		out = Response{Player: seed, Created: true}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
