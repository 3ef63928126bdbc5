package cecs

// factory implements the factory pattern for cecs components.
type factory struct{}

// Factory is the global factory instance for creating cecs values.
var Factory factory

// NewPool creates a new, empty Pool.
func (f factory) NewPool() *Pool {
	return NewPool()
}

// NewQuery creates a new, empty Query.
func (f factory) NewQuery() *Query {
	return NewQuery()
}

// NewCursor creates a new Cursor over query within pool.
func (f factory) NewCursor(query QueryNode, pool *Pool) *Cursor {
	return NewCursor(query, pool)
}

// FactoryNewComponent creates an AccessibleComponent[T] for the given
// TypeName. The TypeName is not registered with any particular Pool
// until a component of that name is first added to one of its entities
// (AddComponent or AddComponents); getting or querying through the
// handle never registers it.
func FactoryNewComponent[T any](name string) AccessibleComponent[T] {
	return NewComponent[T](name)
}
