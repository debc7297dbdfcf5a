package gormrepo

import (
	"context"
	"errors"

	"homestead/internal/adapter/repo/gorm/model"
	"homestead/internal/app/ports"
	"homestead/internal/domain/farm"

	"gorm.io/gorm"
)

type ActionExecutionRepo struct {
	db *gorm.DB
}

func NewActionExecutionRepo(db *gorm.DB) ActionExecutionRepo {
	return ActionExecutionRepo{db: db}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ports.ActionExecutionRecord, error) {
	var m model.ActionExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.ActionExecution{PlayerID: playerID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.ActionExecutionRecord{
		PlayerID:       m.PlayerID,
		IdempotencyKey: m.IdempotencyKey,
		IntentType:     farm.ActionType(m.IntentType),
		ResultCode:     farm.ResultCode(m.ResultCode),
		Result:         m.Result,
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	m := model.ActionExecution{
		PlayerID:       execution.PlayerID,
		IdempotencyKey: execution.IdempotencyKey,
		IntentType:     string(execution.IntentType),
		ResultCode:     string(execution.ResultCode),
		Result:         execution.Result,
		AppliedAt:      execution.AppliedAt,
	}
	return translateWriteError(getDBFromCtx(ctx, r.db).Create(&m).Error)
}
