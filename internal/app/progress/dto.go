package progress

import "homestead/internal/domain/economy"

type Request struct {
	PlayerID string
}

type ItemProgress struct {
	Item string `json:"item"`
	Have int    `json:"have"`
	Need int    `json:"need"`
}

type CollectionProgress struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Items    []ItemProgress  `json:"items"`
	Rewards  economy.Amounts `json:"rewards"`
	Complete bool            `json:"complete"`
}

type QuestProgress struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	LevelRequired    int             `json:"level_required"`
	Unlocked         bool            `json:"unlocked"`
	Claimed          bool            `json:"claimed"`
	Claimable        bool            `json:"claimable"`
	MissingBuildings []string        `json:"missing_buildings,omitempty"`
	MissingResources economy.Amounts `json:"missing_resources,omitempty"`
	Rewards          economy.Amounts `json:"rewards"`
}

type Response struct {
	Collections []CollectionProgress `json:"collections"`
	Quests      []QuestProgress      `json:"quests"`
}
