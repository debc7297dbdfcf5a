package memory

import (
	"context"

	"homestead/internal/domain/farm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, playerID string, events []farm.DomainEvent) error {
	return r.store.with(ctx, playerID, func(p *partition) error {
		p.events = append(p.events, events...)
		return nil
	})
}

func (r EventRepo) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]farm.DomainEvent, error) {
	var out []farm.DomainEvent
	err := r.store.with(ctx, playerID, func(p *partition) error {
		n := len(p.events)
		if limit <= 0 || limit > n {
			limit = n
		}
		out = make([]farm.DomainEvent, 0, limit)
		for i := n - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, p.events[i])
		}
		return nil
	})
	return out, err
}
