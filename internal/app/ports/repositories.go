package ports

import (
	"context"
	"time"

	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

type ActionExecutionRecord struct {
	PlayerID       string
	IdempotencyKey string
	IntentType     farm.ActionType
	ResultCode     farm.ResultCode
	Result         []byte
	AppliedAt      time.Time
}

type PlayerRepository interface {
	GetByID(ctx context.Context, playerID string) (economy.Player, error)
	SaveWithVersion(ctx context.Context, player economy.Player, expectedVersion int64) error
}

type EntityRepository interface {
	Get(ctx context.Context, ownerID, entityID string) (lifecycle.Entity, error)
	ListByOwner(ctx context.Context, ownerID, location string) ([]lifecycle.Entity, error)
	// Insert fails with ErrOccupied when the owner already has an entity at
	// the same location and position.
	Insert(ctx context.Context, entity lifecycle.Entity) error
	UpdateWithVersion(ctx context.Context, entity lifecycle.Entity, expectedVersion int64) error
	Delete(ctx context.Context, ownerID, entityID string) error
}

type ActionExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ActionExecutionRecord, error)
	SaveExecution(ctx context.Context, execution ActionExecutionRecord) error
}

// EventRepository lists events newest first.
type EventRepository interface {
	Append(ctx context.Context, playerID string, events []farm.DomainEvent) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]farm.DomainEvent, error)
}
