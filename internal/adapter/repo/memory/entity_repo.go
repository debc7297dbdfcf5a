package memory

import (
	"context"
	"sort"

	"homestead/internal/app/ports"
	"homestead/internal/domain/lifecycle"
)

type EntityRepo struct {
	store *Store
}

func NewEntityRepo(store *Store) EntityRepo {
	return EntityRepo{store: store}
}

func (r EntityRepo) Get(ctx context.Context, ownerID, entityID string) (lifecycle.Entity, error) {
	var out lifecycle.Entity
	err := r.store.with(ctx, ownerID, func(p *partition) error {
		e, ok := p.entities[entityID]
		if !ok {
			return ports.ErrNotFound
		}
		out = e
		return nil
	})
	return out, err
}

func (r EntityRepo) ListByOwner(ctx context.Context, ownerID, location string) ([]lifecycle.Entity, error) {
	var out []lifecycle.Entity
	err := r.store.with(ctx, ownerID, func(p *partition) error {
		out = make([]lifecycle.Entity, 0, len(p.entities))
		for _, e := range p.entities {
			if location != "" && e.Location != location {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, err
}

func (r EntityRepo) Insert(ctx context.Context, entity lifecycle.Entity) error {
	return r.store.with(ctx, entity.OwnerID, func(p *partition) error {
		if _, exists := p.entities[entity.ID]; exists {
			return ports.ErrConflict
		}
		for _, e := range p.entities {
			if e.Location == entity.Location && e.Position == entity.Position {
				return ports.ErrOccupied
			}
		}
		p.entities[entity.ID] = entity
		return nil
	})
}

func (r EntityRepo) UpdateWithVersion(ctx context.Context, entity lifecycle.Entity, expectedVersion int64) error {
	return r.store.with(ctx, entity.OwnerID, func(p *partition) error {
		current, ok := p.entities[entity.ID]
		if !ok {
			return ports.ErrNotFound
		}
		if current.Version != expectedVersion {
			return ports.ErrConflict
		}
		p.entities[entity.ID] = entity
		return nil
	})
}

func (r EntityRepo) Delete(ctx context.Context, ownerID, entityID string) error {
	return r.store.with(ctx, ownerID, func(p *partition) error {
		if _, ok := p.entities[entityID]; !ok {
			return ports.ErrNotFound
		}
		delete(p.entities, entityID)
		return nil
	})
}
