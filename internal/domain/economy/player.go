package economy

import (
	"slices"
	"time"
)

type Player struct {
	ID               string    `json:"id"`
	Resources        Amounts   `json:"resources"`
	Experience       int       `json:"experience"`
	Level            int       `json:"level"`
	LastEnergyUpdate time.Time `json:"last_energy_update"`
	MaxEnergy        int       `json:"max_energy"`
	RegenRate        int       `json:"regen_rate"`
	Collections      Inventory `json:"collections"`
	ClaimedQuests    []string  `json:"claimed_quests"`
	Version          int64     `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func DefaultStartingResources() Amounts {
	return Amounts{
		Gold:      500,
		Wood:      200,
		Stone:     150,
		Food:      100,
		Energy:    100,
		Agrobucks: 10,
	}
}

func NewPlayer(id string, start Amounts, now time.Time) Player {
	if start == nil {
		start = DefaultStartingResources()
	}
	return Player{
		ID:               id,
		Resources:        start.Clone(),
		Level:            1,
		LastEnergyUpdate: now,
		MaxEnergy:        DefaultMaxEnergy,
		RegenRate:        DefaultRegenRate,
		Collections:      Inventory{},
		ClaimedQuests:    []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// GainExperience recomputes the level from total experience. The stored level
// never goes down.
func (p *Player) GainExperience(xp int, curve LevelCurve) bool {
	if xp > 0 {
		p.Experience += xp
	}
	before := p.Level
	if lvl := curve.LevelFor(p.Experience); lvl > p.Level {
		p.Level = lvl
	}
	if p.Level < 1 {
		p.Level = 1
	}
	return p.Level > before && before > 0
}

func (p Player) HasClaimed(questID string) bool {
	return slices.Contains(p.ClaimedQuests, questID)
}

func (p Player) Clone() Player {
	out := p
	out.Resources = p.Resources.Clone()
	out.Collections = p.Collections.Clone()
	out.ClaimedQuests = slices.Clone(p.ClaimedQuests)
	return out
}
