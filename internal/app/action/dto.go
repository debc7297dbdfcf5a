package action

import (
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

type Request struct {
	PlayerID       string
	IdempotencyKey string
	Intent         farm.ActionIntent
}

type Response struct {
	Action           farm.ActionType    `json:"action"`
	Player           economy.Player     `json:"player"`
	Entity           *lifecycle.View    `json:"entity,omitempty"`
	Deleted          bool               `json:"deleted,omitempty"`
	Spawned          *lifecycle.View    `json:"spawned,omitempty"`
	Created          []lifecycle.View   `json:"created,omitempty"`
	Delta            economy.Amounts    `json:"delta"`
	Drops            []string           `json:"drops,omitempty"`
	Butterflies      int                `json:"butterflies,omitempty"`
	ExperienceGained int                `json:"experience_gained"`
	LevelUp          bool               `json:"level_up,omitempty"`
	Events           []farm.DomainEvent `json:"events"`
	ResultCode       farm.ResultCode    `json:"result_code"`
}
