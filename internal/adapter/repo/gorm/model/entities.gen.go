package model

import "time"

const TableNameEntity = "entities"

// Entity mapped from table <entities>
type Entity struct {
	ID              string     `gorm:"column:id;primaryKey" json:"id"`
	OwnerID         string     `gorm:"column:owner_id;not null" json:"owner_id"`
	Category        string     `gorm:"column:category;not null" json:"category"`
	Kind            string     `gorm:"column:kind;not null" json:"kind"`
	Location        string     `gorm:"column:location;not null" json:"location"`
	Position        string     `gorm:"column:position;not null" json:"position"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	LastCollectedAt *time.Time `gorm:"column:last_collected_at" json:"last_collected_at"`
	LastFedAt       *time.Time `gorm:"column:last_fed_at" json:"last_fed_at"`
	ClearStartedAt  *time.Time `gorm:"column:clear_started_at" json:"clear_started_at"`
	Protected       bool       `gorm:"column:protected;not null" json:"protected"`
	Level           int32      `gorm:"column:level;not null" json:"level"`
	Built           bool       `gorm:"column:built;not null" json:"built"`
	Version         int64      `gorm:"column:version;not null" json:"version"`
}

// TableName Entity's table name
func (*Entity) TableName() string {
	return TableNameEntity
}
