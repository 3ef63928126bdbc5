package cecs

import "github.com/zafericen/cecs/component"

// AccessibleComponent is a typed handle to a registered component,
// returned by FactoryNewComponent. It carries the component's TypeName
// and recovers the concrete type on access, so callers never need to
// repeat a type assertion by hand.
type AccessibleComponent[T any] struct {
	name component.TypeName
}

// NewComponent returns a handle for the component registered under name.
func NewComponent[T any](name component.TypeName) AccessibleComponent[T] {
	return AccessibleComponent[T]{name: name}
}

// Name returns the component's TypeName, satisfying Named.
func (c AccessibleComponent[T]) Name() component.TypeName { return c.name }

// GetFromEntity returns a pointer to id's value for this component.
func (c AccessibleComponent[T]) GetFromEntity(p *Pool, id EntityID) *T {
	return GetComponent[T](p, id, c.name)
}

// GetFromCursor returns a pointer to the cursor's current entity's
// value for this component.
func (c AccessibleComponent[T]) GetFromCursor(cur *Cursor) *T {
	col, _ := cur.cluster().Column(c.name)
	return component.RowOf[T](col, cur.row())
}

// CheckCursor reports whether the cursor's current cluster carries this
// component at all.
func (c AccessibleComponent[T]) CheckCursor(cur *Cursor) bool {
	return cur.cluster().HasColumn(c.name)
}

// GetFromCursorSafe behaves like GetFromCursor but first checks
// CheckCursor, useful inside an Or query where not every matched
// cluster carries this component.
func (c AccessibleComponent[T]) GetFromCursorSafe(cur *Cursor) (bool, *T) {
	if !c.CheckCursor(cur) {
		return false, nil
	}
	return true, c.GetFromCursor(cur)
}
