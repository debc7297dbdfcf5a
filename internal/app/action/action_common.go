package action

import (
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"

	"github.com/google/uuid"
)

func newEntity(ac *ActionContext, category catalog.Category, kind, location, position string) lifecycle.Entity {
	if location == "" {
		location = lifecycle.DefaultLocation
	}
	return lifecycle.Entity{
		ID:        uuid.NewString(),
		OwnerID:   ac.In.PlayerID,
		Category:  category,
		Kind:      kind,
		Location:  location,
		Position:  position,
		CreatedAt: ac.In.NowAt,
		Version:   1,
	}
}

func (ac *ActionContext) placeEntity(e lifecycle.Entity, state lifecycle.State) *lifecycle.View {
	ac.Plan.EntitiesToInsert = append(ac.Plan.EntitiesToInsert, e)
	ac.emit(farm.EventEntityCreated, map[string]any{
		"entity_id": e.ID,
		"category":  string(e.Category),
		"kind":      e.Kind,
		"location":  e.Location,
		"position":  e.Position,
	})
	return &lifecycle.View{Entity: e, State: state}
}

// updateTarget stages the modified target for an optimistic write.
func (ac *ActionContext) updateTarget(e lifecycle.Entity, state lifecycle.State) {
	expected := ac.View.Target.Version
	e.Version = expected + 1
	ac.Plan.EntitiesToUpdate = append(ac.Plan.EntitiesToUpdate, entityUpdate{Entity: e, ExpectedVersion: expected})
	ac.Tmp.Entity = &lifecycle.View{Entity: e, State: state}
}

func (ac *ActionContext) removeTarget() {
	e := *ac.View.Target
	ac.Plan.EntityIDsToDelete = append(ac.Plan.EntityIDsToDelete, e.ID)
	ac.Tmp.Deleted = true
	ac.Tmp.Entity = nil
	ac.emit(farm.EventEntityRemoved, map[string]any{
		"entity_id": e.ID,
		"category":  string(e.Category),
		"kind":      e.Kind,
		"position":  e.Position,
	})
}

func notReady(state lifecycle.State) error {
	return &NotReadyError{Status: state.Status, RemainingSeconds: state.RemainingSeconds}
}
