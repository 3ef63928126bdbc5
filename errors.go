package cecs

import (
	"fmt"

	"github.com/zafericen/cecs/component"
)

// PoolLockedError reports that a mutating call reached a pool while a
// Cursor was iterating over it.
type PoolLockedError struct{}

func (e PoolLockedError) Error() string {
	return "cecs: pool is locked by an active cursor"
}

// ErrPoolLocked is the sentinel value returned for PoolLockedError.
var ErrPoolLocked error = PoolLockedError{}

// EntityRelationError reports an operation that named the same entity
// as both the source and the destination of a copy.
type EntityRelationError struct {
	Entity EntityID
}

func (e EntityRelationError) Error() string {
	return fmt.Sprintf("cecs: entity %d cannot be copied onto itself", e.Entity)
}

// ComponentExistsError describes a component already present on an
// entity. AddComponent and AddComponents do not return it: they ignore
// values for components the entity already carries.
type ComponentExistsError struct {
	Name component.TypeName
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("cecs: component %q already exists on entity", e.Name)
}

// ComponentNotFoundError reports that a component lookup, set, or
// removal named a component the entity does not carry.
type ComponentNotFoundError struct {
	Name component.TypeName
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("cecs: component %q not found on entity", e.Name)
}

// UnknownComponentError reports that a TypeName was never registered.
type UnknownComponentError struct {
	Name component.TypeName
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("cecs: component type %q is not registered", e.Name)
}

// ClusterNotFoundError reports a reference to a ClusterID with no live
// cluster, or an entity with no owning cluster where one was required.
type ClusterNotFoundError struct {
	ID ClusterID
}

func (e ClusterNotFoundError) Error() string {
	return fmt.Sprintf("cecs: no cluster with id %d", e.ID)
}
