package testutil

import (
	"context"
	"sync"

	"github.com/hireloop/pricing-engine/internal/domain/baseline"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
)

// InMemoryBaselineStore implements baseline.Repository
type InMemoryBaselineStore struct {
	mu        sync.RWMutex
	baselines map[string]*baseline.PricingBaseline
}

func NewInMemoryBaselineStore() *InMemoryBaselineStore {
	return &InMemoryBaselineStore{
		baselines: make(map[string]*baseline.PricingBaseline),
	}
}

func (s *InMemoryBaselineStore) Create(b *baseline.PricingBaseline) error {
	if b == nil {
		return ierr.NewError("baseline cannot be nil").
			WithHint("Baseline cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *b
	s.baselines[b.BusinessUnitID] = &copied
	return nil
}

func (s *InMemoryBaselineStore) Resolve(ctx context.Context, businessUnitID string) (*baseline.PricingBaseline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.baselines[businessUnitID]
	if !ok {
		return nil, ierr.NewError("no pricing baseline configured").
			WithHintf("Business unit %s has no pricing baseline", businessUnitID).
			Mark(ierr.ErrMissingBaseline)
	}
	return b, nil
}

func (s *InMemoryBaselineStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baselines = make(map[string]*baseline.PricingBaseline)
}
