package memory

import (
	"context"

	"homestead/internal/app/ports"
	"homestead/internal/domain/economy"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetByID(ctx context.Context, playerID string) (economy.Player, error) {
	var out economy.Player
	err := r.store.with(ctx, playerID, func(p *partition) error {
		if p.player == nil {
			return ports.ErrNotFound
		}
		out = p.player.Clone()
		return nil
	})
	return out, err
}

func (r PlayerRepo) SaveWithVersion(ctx context.Context, player economy.Player, expectedVersion int64) error {
	return r.store.with(ctx, player.ID, func(p *partition) error {
		if p.player == nil {
			if expectedVersion != 0 {
				return ports.ErrConflict
			}
		} else if p.player.Version != expectedVersion {
			return ports.ErrConflict
		}
		saved := player.Clone()
		p.player = &saved
		return nil
	})
}
