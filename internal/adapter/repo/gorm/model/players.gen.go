package model

import "time"

const TableNamePlayer = "players"

// Player mapped from table <players>
type Player struct {
	ID               string    `gorm:"column:id;primaryKey" json:"id"`
	Resources        []byte    `gorm:"column:resources;not null" json:"resources"`
	Experience       int64     `gorm:"column:experience;not null" json:"experience"`
	Level            int32     `gorm:"column:level;not null" json:"level"`
	LastEnergyUpdate time.Time `gorm:"column:last_energy_update;not null" json:"last_energy_update"`
	MaxEnergy        int32     `gorm:"column:max_energy;not null" json:"max_energy"`
	RegenRate        int32     `gorm:"column:regen_rate;not null" json:"regen_rate"`
	Collections      []byte    `gorm:"column:collections;not null" json:"collections"`
	ClaimedQuests    []byte    `gorm:"column:claimed_quests;not null" json:"claimed_quests"`
	Version          int64     `gorm:"column:version;not null" json:"version"`
	CreatedAt        time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName Player's table name
func (*Player) TableName() string {
	return TableNamePlayer
}
