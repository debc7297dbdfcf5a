package gormrepo

import (
	"context"
	"errors"

	"homestead/internal/adapter/repo/gorm/model"
	"homestead/internal/app/ports"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/lifecycle"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntityRepo struct {
	db *gorm.DB
}

func NewEntityRepo(db *gorm.DB) EntityRepo {
	return EntityRepo{db: db}
}

func (r EntityRepo) Get(ctx context.Context, ownerID, entityID string) (lifecycle.Entity, error) {
	var m model.Entity
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND id = ?", ownerID, entityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lifecycle.Entity{}, ports.ErrNotFound
		}
		return lifecycle.Entity{}, err
	}
	return entityFromModel(m), nil
}

func (r EntityRepo) ListByOwner(ctx context.Context, ownerID, location string) ([]lifecycle.Entity, error) {
	rows := []model.Entity{}
	query := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID)
	if location != "" {
		query = query.Where("location = ?", location)
	}
	if err := query.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]lifecycle.Entity, 0, len(rows))
	for _, row := range rows {
		out = append(out, entityFromModel(row))
	}
	return out, nil
}

// Insert relies on the unique (owner_id, location, position) index: a taken
// slot inserts nothing.
func (r EntityRepo) Insert(ctx context.Context, entity lifecycle.Entity) error {
	m := entityToModel(entity)
	res := getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrOccupied
	}
	return nil
}

func (r EntityRepo) UpdateWithVersion(ctx context.Context, entity lifecycle.Entity, expectedVersion int64) error {
	m := entityToModel(entity)
	updates := map[string]any{
		"last_collected_at": m.LastCollectedAt,
		"last_fed_at":       m.LastFedAt,
		"clear_started_at":  m.ClearStartedAt,
		"protected":         m.Protected,
		"level":             m.Level,
		"built":             m.Built,
		"version":           m.Version,
	}
	res := getDBFromCtx(ctx, r.db).Model(&model.Entity{}).
		Where("id = ? AND owner_id = ? AND version = ?", entity.ID, entity.OwnerID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r EntityRepo) Delete(ctx context.Context, ownerID, entityID string) error {
	res := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND id = ?", ownerID, entityID).
		Delete(&model.Entity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func entityToModel(e lifecycle.Entity) model.Entity {
	return model.Entity{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Category:        string(e.Category),
		Kind:            e.Kind,
		Location:        e.Location,
		Position:        e.Position,
		CreatedAt:       e.CreatedAt,
		LastCollectedAt: e.LastCollectedAt,
		LastFedAt:       e.LastFedAt,
		ClearStartedAt:  e.ClearStartedAt,
		Protected:       e.Protected,
		Level:           int32(e.Level),
		Built:           e.Built,
		Version:         e.Version,
	}
}

func entityFromModel(m model.Entity) lifecycle.Entity {
	return lifecycle.Entity{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Category:        catalog.Category(m.Category),
		Kind:            m.Kind,
		Location:        m.Location,
		Position:        m.Position,
		CreatedAt:       m.CreatedAt,
		LastCollectedAt: m.LastCollectedAt,
		LastFedAt:       m.LastFedAt,
		ClearStartedAt:  m.ClearStartedAt,
		Protected:       m.Protected,
		Level:           int(m.Level),
		Built:           m.Built,
		Version:         m.Version,
	}
}
