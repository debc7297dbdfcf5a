package lifecycle

import (
	"time"

	"homestead/internal/domain/catalog"
)

const DefaultLocation = "main"

type Entity struct {
	ID              string           `json:"id"`
	OwnerID         string           `json:"owner_id"`
	Category        catalog.Category `json:"category"`
	Kind            string           `json:"kind"`
	Location        string           `json:"location"`
	Position        string           `json:"position"`
	CreatedAt       time.Time        `json:"created_at"`
	LastCollectedAt *time.Time       `json:"last_collected_at,omitempty"`
	LastFedAt       *time.Time       `json:"last_fed_at,omitempty"`
	ClearStartedAt  *time.Time       `json:"clear_started_at,omitempty"`
	Protected       bool             `json:"protected,omitempty"`
	Level           int              `json:"level,omitempty"`
	Built           bool             `json:"built,omitempty"`
	Version         int64            `json:"version"`
}

type Status string

const (
	StatusGrowing   Status = "growing"
	StatusReady     Status = "ready"
	StatusWithered  Status = "withered"
	StatusAdult     Status = "adult"
	StatusProducing Status = "producing"
	StatusBuilding  Status = "building"
	StatusBuilt     Status = "built"
	StatusActive    Status = "active"
	StatusClearing  Status = "clearing"
	StatusCleared   Status = "cleared"
)

// State is what an entity looks like at a given instant. It is never stored
// as the source of truth.
type State struct {
	Status           Status     `json:"status"`
	Progress         float64    `json:"progress"`
	Ready            bool       `json:"ready"`
	Adult            bool       `json:"adult,omitempty"`
	RemainingSeconds int        `json:"remaining_seconds,omitempty"`
	Transitioned     bool       `json:"-"`
	LastCollectedAt  *time.Time `json:"-"`
}

// CacheBuildCompletion copies an observed building completion onto the entity.
// It reports whether anything changed and needs saving.
func (e *Entity) CacheBuildCompletion(st State) bool {
	if !st.Transitioned || e.Built {
		return false
	}
	e.Built = true
	if st.LastCollectedAt != nil {
		at := *st.LastCollectedAt
		e.LastCollectedAt = &at
	}
	return true
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 100
	}
	p := float64(elapsed) / float64(total) * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

func remaining(elapsed, total time.Duration) int {
	left := total - elapsed
	if left <= 0 {
		return 0
	}
	secs := int(left / time.Second)
	if left%time.Second != 0 {
		secs++
	}
	return secs
}

func since(from, now time.Time) time.Duration {
	d := now.Sub(from)
	if d < 0 {
		return 0
	}
	return d
}

type View struct {
	Entity
	State State `json:"state"`
}
