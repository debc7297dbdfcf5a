package ports

import "homestead/internal/domain/farm"

type ActionMetrics interface {
	RecordSuccess(action farm.ActionType, resultCode farm.ResultCode)
	RecordConflict(action farm.ActionType)
	RecordFailure(action farm.ActionType)
}
