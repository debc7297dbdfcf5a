package gormrepo

import (
	"context"
	"errors"

	"homestead/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

// RunInTx locks the player row for the duration of fn. A call nested inside
// an open transaction joins it.
func (t TxManager) RunInTx(ctx context.Context, playerID string, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.Player
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", playerID).
			Take(&locked).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fn(withTx(ctx, tx))
	})
}
