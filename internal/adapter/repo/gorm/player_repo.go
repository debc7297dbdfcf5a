package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"homestead/internal/adapter/repo/gorm/model"
	"homestead/internal/app/ports"
	"homestead/internal/domain/economy"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetByID(ctx context.Context, playerID string) (economy.Player, error) {
	var m model.Player
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return economy.Player{}, ports.ErrNotFound
		}
		return economy.Player{}, err
	}
	return playerFromModel(m)
}

func (r PlayerRepo) SaveWithVersion(ctx context.Context, player economy.Player, expectedVersion int64) error {
	m, err := playerToModel(player)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		return translateWriteError(db.Create(&m).Error)
	}

	updates := map[string]any{
		"resources":          m.Resources,
		"experience":         m.Experience,
		"level":              m.Level,
		"last_energy_update": m.LastEnergyUpdate,
		"max_energy":         m.MaxEnergy,
		"regen_rate":         m.RegenRate,
		"collections":        m.Collections,
		"claimed_quests":     m.ClaimedQuests,
		"version":            m.Version,
		"updated_at":         m.UpdatedAt,
	}
	res := db.Model(&model.Player{}).
		Where("id = ? AND version = ?", player.ID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func playerToModel(p economy.Player) (model.Player, error) {
	resources, err := json.Marshal(p.Resources)
	if err != nil {
		return model.Player{}, fmt.Errorf("encode resources: %w", err)
	}
	collections, err := json.Marshal(p.Collections)
	if err != nil {
		return model.Player{}, fmt.Errorf("encode collections: %w", err)
	}
	claimed := p.ClaimedQuests
	if claimed == nil {
		claimed = []string{}
	}
	quests, err := json.Marshal(claimed)
	if err != nil {
		return model.Player{}, fmt.Errorf("encode claimed quests: %w", err)
	}
	return model.Player{
		ID:               p.ID,
		Resources:        resources,
		Experience:       int64(p.Experience),
		Level:            int32(p.Level),
		LastEnergyUpdate: p.LastEnergyUpdate,
		MaxEnergy:        int32(p.MaxEnergy),
		RegenRate:        int32(p.RegenRate),
		Collections:      collections,
		ClaimedQuests:    quests,
		Version:          p.Version,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

func playerFromModel(m model.Player) (economy.Player, error) {
	p := economy.Player{
		ID:               m.ID,
		Experience:       int(m.Experience),
		Level:            int(m.Level),
		LastEnergyUpdate: m.LastEnergyUpdate,
		MaxEnergy:        int(m.MaxEnergy),
		RegenRate:        int(m.RegenRate),
		Version:          m.Version,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if err := json.Unmarshal(m.Resources, &p.Resources); err != nil {
		return economy.Player{}, fmt.Errorf("decode resources: %w", err)
	}
	if err := json.Unmarshal(m.Collections, &p.Collections); err != nil {
		return economy.Player{}, fmt.Errorf("decode collections: %w", err)
	}
	if err := json.Unmarshal(m.ClaimedQuests, &p.ClaimedQuests); err != nil {
		return economy.Player{}, fmt.Errorf("decode claimed quests: %w", err)
	}
	if p.Resources == nil {
		p.Resources = economy.Amounts{}
	}
	if p.Collections == nil {
		p.Collections = economy.Inventory{}
	}
	return p, nil
}
