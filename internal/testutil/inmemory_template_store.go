package testutil

import (
	"context"
	"sync"

	"github.com/hireloop/pricing-engine/internal/domain/billing"
	ierr "github.com/hireloop/pricing-engine/internal/errors"
)

// InMemoryTemplateStore implements billing.TemplateRepository
type InMemoryTemplateStore struct {
	mu        sync.RWMutex
	templates map[string]*billing.MilestoneTemplate
}

func NewInMemoryTemplateStore() *InMemoryTemplateStore {
	return &InMemoryTemplateStore{
		templates: make(map[string]*billing.MilestoneTemplate),
	}
}

func (s *InMemoryTemplateStore) Set(t *billing.MilestoneTemplate) error {
	if t == nil {
		return ierr.NewError("template cannot be nil").
			WithHint("Template cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *t
	copied.Entries = append([]billing.TemplateEntry(nil), t.Entries...)
	s.templates[t.BusinessUnitID] = &copied
	return nil
}

func (s *InMemoryTemplateStore) GetTemplate(ctx context.Context, businessUnitID string) (*billing.MilestoneTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[businessUnitID]
	if !ok {
		return nil, ierr.NewError("no milestone template configured").
			WithHintf("Business unit %s has no milestone template", businessUnitID).
			Mark(ierr.ErrNotFound)
	}
	return t, nil
}

func (s *InMemoryTemplateStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = make(map[string]*billing.MilestoneTemplate)
}
