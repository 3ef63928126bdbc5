package cecs

import "github.com/zafericen/cecs/component"

// EntityHandle bundles an EntityID with the Pool that owns it, so
// call sites that pass entities around don't need to carry both
// separately. It adds nothing a Pool method couldn't already do; it
// exists purely for callers who prefer an object-shaped API.
type EntityHandle struct {
	ID   EntityID
	pool *Pool
}

// Handle returns an EntityHandle bundling id with p.
func (p *Pool) Handle(id EntityID) EntityHandle {
	return EntityHandle{ID: id, pool: p}
}

// Valid reports whether the handle refers to anything but NullEntity.
// It does not check that the entity is still alive in the pool.
func (h EntityHandle) Valid() bool { return h.ID != NullEntity }

// HasComponent reports whether the entity carries a component named name.
func (h EntityHandle) HasComponent(name component.TypeName) bool {
	return h.pool.HasComponent(h.ID, name)
}

// ComponentNames returns, sorted, every component name this entity
// currently carries.
func (h EntityHandle) ComponentNames() []component.TypeName {
	return h.pool.ComponentNames(h.ID)
}

// RemoveComponent removes the named component from the entity.
func (h EntityHandle) RemoveComponent(name component.TypeName) error {
	return h.pool.RemoveComponent(h.ID, name)
}

// Destroy removes the entity and every component it carries.
func (h EntityHandle) Destroy() error {
	return h.pool.DestroyEntity(h.ID)
}
