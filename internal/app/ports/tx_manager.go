package ports

import "context"

// TxManager runs fn as one unit scoped to a single player. Implementations
// serialize units of the same player and never share that scope across players.
type TxManager interface {
	RunInTx(ctx context.Context, playerID string, fn func(ctx context.Context) error) error
}
