package status

import "homestead/internal/domain/economy"

type Request struct {
	PlayerID string
}

type Response struct {
	Player              economy.Player `json:"player"`
	Energy              int            `json:"energy"`
	MaxEnergy           int            `json:"max_energy"`
	NextEnergyInSeconds int            `json:"next_energy_in_seconds"`
	Level               int            `json:"level"`
	Experience          int            `json:"experience"`
	NextLevelAt         int            `json:"next_level_at,omitempty"`
	MaxLevel            bool           `json:"max_level"`
}
