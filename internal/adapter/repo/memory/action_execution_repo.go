package memory

import (
	"context"

	"homestead/internal/app/ports"
)

type ActionExecutionRepo struct {
	store *Store
}

func NewActionExecutionRepo(store *Store) ActionExecutionRepo {
	return ActionExecutionRepo{store: store}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ports.ActionExecutionRecord, error) {
	var out *ports.ActionExecutionRecord
	err := r.store.with(ctx, playerID, func(p *partition) error {
		rec, ok := p.executions[execKey(playerID, key)]
		if !ok {
			return ports.ErrNotFound
		}
		copy := rec
		out = &copy
		return nil
	})
	return out, err
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	return r.store.with(ctx, execution.PlayerID, func(p *partition) error {
		k := execKey(execution.PlayerID, execution.IdempotencyKey)
		if _, exists := p.executions[k]; exists {
			return ports.ErrConflict
		}
		p.executions[k] = execution
		return nil
	})
}
