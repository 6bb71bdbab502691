package memory

import (
	"context"
	"sync"

	"chatagotchi/internal/app/ports"
)

// Store backs the in-memory repositories. One mutex guards everything: the
// tx manager holds it for a whole load-transform-save sequence, and repo
// methods called outside a transaction take it themselves.
type Store struct {
	mu          sync.RWMutex
	records     map[string]ports.GameRecord
	credentials map[string]ports.PlayerCredentialRecord
	events      map[string][]ports.GameEvent
}

func NewStore() *Store {
	return &Store{
		records:     make(map[string]ports.GameRecord),
		credentials: make(map[string]ports.PlayerCredentialRecord),
		events:      make(map[string][]ports.GameEvent),
	}
}

// lock acquires the write lock unless the context already runs under the tx
// manager; the returned func releases whatever was taken.
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) rlock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// SeedRecord installs a game record directly, bypassing version checks.
func (s *Store) SeedRecord(record ports.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.UserID] = record
}
