package ports

import (
	"time"

	"homestead/internal/domain/farm"
)

type JournalEntry struct {
	PlayerID       string             `json:"player_id"`
	IdempotencyKey string             `json:"idempotency_key"`
	Action         farm.ActionType    `json:"action"`
	ResultCode     farm.ResultCode    `json:"result_code"`
	Events         []farm.DomainEvent `json:"events"`
	AppliedAt      time.Time          `json:"applied_at"`
}

// ActionJournal receives committed actions. Writes are best effort.
type ActionJournal interface {
	Write(entry JournalEntry) error
}
