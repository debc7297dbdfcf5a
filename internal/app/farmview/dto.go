package farmview

import (
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/lifecycle"
)

type Request struct {
	PlayerID string
	Location string
}

type Response struct {
	Location string                   `json:"location"`
	Entities []lifecycle.View         `json:"entities"`
	Counts   map[catalog.Category]int `json:"counts"`
	Ready    int                      `json:"ready"`
}
