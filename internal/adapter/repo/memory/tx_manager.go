package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx serializes units of the same player and rolls the partition back
// when fn fails.
func (t TxManager) RunInTx(ctx context.Context, playerID string, fn func(ctx context.Context) error) error {
	if locked, _ := ctx.Value(txKey{}).(string); locked == playerID {
		return fn(ctx)
	}
	p := t.store.partition(playerID)
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := p.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, playerID)); err != nil {
		p.restore(snap)
		return err
	}
	return nil
}
