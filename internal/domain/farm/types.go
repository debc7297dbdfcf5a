package farm

import "time"

type ActionType string

const (
	ActionPlant              ActionType = "plant"
	ActionHarvest            ActionType = "harvest"
	ActionProtect            ActionType = "protect"
	ActionBuyAnimal          ActionType = "buy_animal"
	ActionFeed               ActionType = "feed"
	ActionCollectAnimal      ActionType = "collect_animal"
	ActionBuild              ActionType = "build"
	ActionCollectBuilding    ActionType = "collect_building"
	ActionClearTerritory     ActionType = "clear_territory"
	ActionGenerateTerritory  ActionType = "generate_territory"
	ActionChasePest          ActionType = "chase_pest"
	ActionExchangeCollection ActionType = "exchange_collection"
	ActionClaimQuest         ActionType = "claim_quest"
	ActionPurchase           ActionType = "purchase"
	ActionRemove             ActionType = "remove"
)

// ActionIntent carries the parameters of one player action. Which fields
// matter depends on Type.
type ActionIntent struct {
	Type     ActionType `json:"type"`
	Kind     string     `json:"kind,omitempty"`
	TargetID string     `json:"target_id,omitempty"`
	Location string     `json:"location,omitempty"`
	Position string     `json:"position,omitempty"`
	Count    int        `json:"count,omitempty"`
}

type ResultCode string

const (
	ResultOK      ResultCode = "OK"
	ResultStarted ResultCode = "STARTED"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventEntityCreated      = "entity_created"
	EventEntityRemoved      = "entity_removed"
	EventResourcesChanged   = "resources_changed"
	EventExperienceGained   = "experience_gained"
	EventLevelUp            = "level_up"
	EventItemsDropped       = "items_dropped"
	EventHazardSpawned      = "hazard_spawned"
	EventClearingStarted    = "clearing_started"
	EventCollectionExchange = "collection_exchanged"
	EventQuestClaimed       = "quest_claimed"
	EventBuildingCompleted  = "building_completed"
)
