package testutil

import (
	"context"
	"sync"

	"github.com/hireloop/pricing-engine/internal/domain/tier"
)

// InMemoryTierStore implements tier.Repository
type InMemoryTierStore struct {
	mu       sync.RWMutex
	volume   map[string]tier.Table
	duration map[string]tier.Table
}

func NewInMemoryTierStore() *InMemoryTierStore {
	return &InMemoryTierStore{
		volume:   make(map[string]tier.Table),
		duration: make(map[string]tier.Table),
	}
}

func (s *InMemoryTierStore) SetVolumeTable(businessUnitID string, table tier.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume[businessUnitID] = table
}

func (s *InMemoryTierStore) SetDurationTable(businessUnitID string, table tier.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duration[businessUnitID] = table
}

func (s *InMemoryTierStore) VolumeTable(ctx context.Context, businessUnitID string) (tier.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume[businessUnitID], nil
}

func (s *InMemoryTierStore) DurationTable(ctx context.Context, businessUnitID string) (tier.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.duration[businessUnitID], nil
}

func (s *InMemoryTierStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = make(map[string]tier.Table)
	s.duration = make(map[string]tier.Table)
}
