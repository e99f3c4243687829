package testutil

import (
	"context"
	"sync"

	"github.com/hireloop/pricing-engine/internal/domain/bundle"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
)

// InMemoryBundleStore implements bundle.Repository
type InMemoryBundleStore struct {
	mu      sync.RWMutex
	bundles []*bundle.Bundle
}

func NewInMemoryBundleStore() *InMemoryBundleStore {
	return &InMemoryBundleStore{}
}

func (s *InMemoryBundleStore) Add(b *bundle.Bundle) error {
	if b == nil {
		return ierr.NewError("bundle cannot be nil").
			WithHint("Bundle cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := b.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *b
	s.bundles = append(s.bundles, &copied)
	return nil
}

func (s *InMemoryBundleStore) List(ctx context.Context) ([]*bundle.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*bundle.Bundle, len(s.bundles))
	copy(out, s.bundles)
	return out, nil
}

func (s *InMemoryBundleStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles = nil
}
