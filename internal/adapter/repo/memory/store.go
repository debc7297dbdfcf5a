package memory

import (
	"context"
	"sync"

	"homestead/internal/app/ports"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
	"homestead/internal/domain/lifecycle"
)

// partition holds everything owned by one player. Its mutex is the unit of
// isolation: actions of different players never contend.
type partition struct {
	mu         sync.Mutex
	player     *economy.Player
	entities   map[string]lifecycle.Entity
	executions map[string]ports.ActionExecutionRecord
	events     []farm.DomainEvent
}

type partitionSnapshot struct {
	player     *economy.Player
	entities   map[string]lifecycle.Entity
	executions map[string]ports.ActionExecutionRecord
	events     int
}

type Store struct {
	mu         sync.Mutex
	partitions map[string]*partition
}

func NewStore() *Store {
	return &Store{partitions: make(map[string]*partition)}
}

func execKey(playerID, key string) string {
	return playerID + "::" + key
}

func (s *Store) SeedPlayer(player economy.Player) {
	p := s.partition(player.ID)
	p.mu.Lock()
	defer p.mu.Unlock()
	seeded := player.Clone()
	p.player = &seeded
}

func (s *Store) partition(playerID string) *partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.partitions[playerID]
	if !ok {
		p = &partition{
			entities:   make(map[string]lifecycle.Entity),
			executions: make(map[string]ports.ActionExecutionRecord),
		}
		s.partitions[playerID] = p
	}
	return p
}

type txKey struct{}

// with runs fn against the player's partition, taking its lock unless ctx is
// already inside a transaction for that player.
func (s *Store) with(ctx context.Context, playerID string, fn func(p *partition) error) error {
	p := s.partition(playerID)
	if locked, _ := ctx.Value(txKey{}).(string); locked == playerID {
		return fn(p)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p)
}

func (p *partition) snapshot() partitionSnapshot {
	snap := partitionSnapshot{
		entities:   make(map[string]lifecycle.Entity, len(p.entities)),
		executions: make(map[string]ports.ActionExecutionRecord, len(p.executions)),
		events:     len(p.events),
	}
	if p.player != nil {
		player := p.player.Clone()
		snap.player = &player
	}
	for k, v := range p.entities {
		snap.entities[k] = v
	}
	for k, v := range p.executions {
		snap.executions[k] = v
	}
	return snap
}

func (p *partition) restore(snap partitionSnapshot) {
	p.player = snap.player
	p.entities = snap.entities
	p.executions = snap.executions
	p.events = p.events[:snap.events]
}
