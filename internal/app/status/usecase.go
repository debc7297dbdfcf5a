package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/economy"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Players ports.PlayerRepository
	Levels  economy.LevelCurve
	Now     func() time.Time
}

// Execute derives the player's current energy without writing it back; the
// next action persists the regenerated value.
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

	resp := Response{
		Player:     player,
		Energy:     player.Resources.Get(economy.Energy),
		MaxEnergy:  player.MaxEnergy,
		Level:      player.Level,
		Experience: player.Experience,
	}
	if resp.Energy < player.MaxEnergy && player.RegenRate > 0 {
		elapsed := now.Sub(player.LastEnergyUpdate)
		if elapsed < 0 {
			elapsed = 0
		}
		resp.NextEnergyInSeconds = int((economy.EnergyRegenInterval - elapsed%economy.EnergyRegenInterval) / time.Second)
	}
	if next, ok := u.Levels.NextThreshold(player.Experience); ok {
		resp.NextLevelAt = next
	} else {
		resp.MaxLevel = true
	}
	return resp, nil
}
