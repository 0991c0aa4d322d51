package registry

import (
	"strings"
	"sync"

	"TreasureDig/internal/model"
)

// Registry holds the mutable pool list and the immutable asset catalog.
// All mutations touch a single pool by id, so they are total: no partial
// application, no rollback.
type Registry struct {
	mu    sync.Mutex
	pools []model.TreasurePool
	seed  []model.TreasurePool
}

// AdminEdit carries optional per-pool admin changes. Nil fields are left
// untouched.
type AdminEdit struct {
	DigCost *float64
	Ends    *string
}

// New creates a Registry populated from the seed catalog.
func New() *Registry {
	return NewWithPools(seedPools)
}

// NewWithPools creates a Registry with a custom pool set.
func NewWithPools(pools []model.TreasurePool) *Registry {
	r := &Registry{
		pools: make([]model.TreasurePool, len(pools)),
		seed:  make([]model.TreasurePool, len(pools)),
	}
	copy(r.pools, pools)
	copy(r.seed, pools)
	return r
}

// List returns a copy of all pools in seed order.
func (r *Registry) List() []model.TreasurePool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.TreasurePool, len(r.pools))
	copy(out, r.pools)
	return out
}

// FindByID returns a copy of the pool with the given id.
func (r *Registry) FindByID(id string) (model.TreasurePool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.find(id); p != nil {
		return *p, true
	}
	return model.TreasurePool{}, false
}

// DecrementRemaining reduces a pool's remaining count by 1, clamped at 0.
// A missing pool is a no-op, not an error. Returns the new remaining
// count so the caller can detect the exhaustion moment.
func (r *Registry) DecrementRemaining(id string) (remaining int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return 0, false
	}
	if p.Remaining > 0 {
		p.Remaining--
	}
	return p.Remaining, true
}

// ApplyAdminEdit updates dig cost and/or the ends label. Cost is clamped
// to >= 0; a blank ends label keeps the prior value.
func (r *Registry) ApplyAdminEdit(id string, edit AdminEdit) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return false
	}
	if edit.DigCost != nil {
		cost := *edit.DigCost
		if cost < 0 {
			cost = 0
		}
		p.DigCost = cost
	}
	if edit.Ends != nil {
		if label := strings.TrimSpace(*edit.Ends); label != "" {
			p.Ends = label
		}
	}
	return true
}

// TogglePause flips a pool's pause flag and returns the new value.
func (r *Registry) TogglePause(id string) (paused, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return false, false
	}
	p.Paused = !p.Paused
	return p.Paused, true
}

// BumpRemaining adds delta to a pool's remaining count. Admin-only
// restock path; the result never drops below 0.
func (r *Registry) BumpRemaining(id string, delta int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return false
	}
	p.Remaining += delta
	if p.Remaining < 0 {
		p.Remaining = 0
	}
	return true
}

// Reset restores every pool to its seed values.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools = make([]model.TreasurePool, len(r.seed))
	copy(r.pools, r.seed)
}

func (r *Registry) find(id string) *model.TreasurePool {
	for i := range r.pools {
		if r.pools[i].ID == id {
			return &r.pools[i]
		}
	}
	return nil
}

// Assets returns the immutable reward asset catalog.
func Assets() []model.Asset {
	out := make([]model.Asset, len(seedAssets))
	copy(out, seedAssets)
	return out
}

// AssetByID looks up an asset in the catalog.
func AssetByID(id string) (model.Asset, bool) {
	for _, a := range seedAssets {
		if a.ID == id {
			return a, true
		}
	}
	return model.Asset{}, false
}
