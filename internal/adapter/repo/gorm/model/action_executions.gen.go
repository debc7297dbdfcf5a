package model

import "time"

const TableNameActionExecution = "action_executions"

// ActionExecution mapped from table <action_executions>
type ActionExecution struct {
	PlayerID       string    `gorm:"column:player_id;primaryKey" json:"player_id"`
	IdempotencyKey string    `gorm:"column:idempotency_key;primaryKey" json:"idempotency_key"`
	IntentType     string    `gorm:"column:intent_type;not null" json:"intent_type"`
	ResultCode     string    `gorm:"column:result_code;not null" json:"result_code"`
	Result         []byte    `gorm:"column:result;not null" json:"result"`
	AppliedAt      time.Time `gorm:"column:applied_at;not null" json:"applied_at"`
}

// TableName ActionExecution's table name
func (*ActionExecution) TableName() string {
	return TableNameActionExecution
}
