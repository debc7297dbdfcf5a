package replay

import (
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
)

type Request struct {
	PlayerID     string
	Limit        int
	Type         string
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events          []farm.DomainEvent `json:"events"`
	LatestResources economy.Amounts    `json:"latest_resources,omitempty"`
}
