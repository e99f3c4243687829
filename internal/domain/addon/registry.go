package addon

import (
	"sync"
	"sync/atomic"

	ierr "github.com/hireloop/pricing-engine/internal/errors"
)

// catalog is an immutable snapshot of registered addons. Readers load it
// atomically so a concurrent Register or ReplaceAll is never observed
// half-applied.
type catalog struct {
	byID  map[string]*AddonDefinition
	order []string
}

// Registry is the process wide catalog of sellable addons. It is
// populated once at startup in declared order and read-mostly afterwards;
// writes swap a fresh snapshot instead of mutating in place.
type Registry struct {
	mu   sync.Mutex
	snap atomic.Pointer[catalog]
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.snap.Store(&catalog{byID: map[string]*AddonDefinition{}})
	return r
}

// Register adds a new addon definition. Registering an already known
// addon id fails loudly rather than silently overwriting it.
func (r *Registry) Register(def AddonDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.snap.Load()
	if _, exists := current.byID[def.ID]; exists {
		return ierr.NewError("addon already registered").
			WithHintf("Addon %s is already registered", def.ID).
			WithReportableDetails(map[string]any{
				"addon_id": def.ID,
			}).
			Mark(ierr.ErrDuplicateAddon)
	}

	next := current.clone()
	copied := def
	next.byID[def.ID] = &copied
	next.order = append(next.order, def.ID)
	r.snap.Store(next)
	return nil
}

// ReplaceAll atomically swaps the entire catalog. Used for hot reloads so
// in-flight calculations keep the snapshot they started with.
func (r *Registry) ReplaceAll(defs []AddonDefinition) error {
	next := &catalog{byID: make(map[string]*AddonDefinition, len(defs))}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return err
		}
		if _, exists := next.byID[def.ID]; exists {
			return ierr.NewError("duplicate addon in catalog").
				WithHintf("Addon %s appears more than once", def.ID).
				WithReportableDetails(map[string]any{
					"addon_id": def.ID,
				}).
				Mark(ierr.ErrDuplicateAddon)
		}
		copied := def
		next.byID[def.ID] = &copied
		next.order = append(next.order, def.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Store(next)
	return nil
}

// Get returns the definition for an addon id
func (r *Registry) Get(id string) (*AddonDefinition, error) {
	current := r.snap.Load()
	def, ok := current.byID[id]
	if !ok {
		return nil, ierr.NewError("addon not registered").
			WithHintf("Addon %s is not registered", id).
			WithReportableDetails(map[string]any{
				"addon_id": id,
			}).
			Mark(ierr.ErrUnknownAddon)
	}
	return def, nil
}

// All returns every registered addon in registration order
func (r *Registry) All() []*AddonDefinition {
	current := r.snap.Load()
	defs := make([]*AddonDefinition, 0, len(current.order))
	for _, id := range current.order {
		defs = append(defs, current.byID[id])
	}
	return defs
}

// ListBundleEligible returns bundle eligible addons in registration order
func (r *Registry) ListBundleEligible() []*AddonDefinition {
	var defs []*AddonDefinition
	for _, def := range r.All() {
		if def.BundleEligible {
			defs = append(defs, def)
		}
	}
	return defs
}

func (c *catalog) clone() *catalog {
	next := &catalog{
		byID:  make(map[string]*AddonDefinition, len(c.byID)+1),
		order: make([]string, len(c.order), len(c.order)+1),
	}
	for id, def := range c.byID {
		next.byID[id] = def
	}
	copy(next.order, c.order)
	return next
}
