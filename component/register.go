// Package component assigns a dense ComponentID to each distinct
// component TypeName on first sighting, and remembers how to build an
// empty typed Column for that ID (a recipe).
package component

// ID is a dense, process-local identifier for a registered component
// type, assigned in registration order starting at 0.
type ID = uint32

// TypeName is the external identity of a component type: an opaque
// string supplied by the caller. Two different logical types must not
// share a name.
type TypeName = string

// Recipe constructs an empty typed Column for a registered component.
type Recipe func() Column

// Register interns TypeName -> ID bijectively and keeps each ID's
// recipe for materializing new columns.
type Register struct {
	ids     map[TypeName]ID
	names   []TypeName
	recipes []Recipe
	freed   []ID
	next    ID
}

// NewRegister returns an empty component register.
func NewRegister() *Register {
	return &Register{ids: make(map[TypeName]ID)}
}

// Registered reports whether name has already been registered.
func (r *Register) Registered(name TypeName) bool {
	_, ok := r.ids[name]
	return ok
}

// Register assigns an ID to name on first sighting using recipe to
// build future columns for it; subsequent calls with the same name are
// no-ops that return the existing ID.
func (r *Register) Register(name TypeName, recipe Recipe) ID {
	if id, ok := r.ids[name]; ok {
		return id
	}

	var id ID
	if n := len(r.freed); n > 0 {
		id = r.freed[n-1]
		r.freed = r.freed[:n-1]
	} else {
		id = r.next
		r.next++
	}

	r.ids[name] = id
	if int(id) >= len(r.names) {
		r.names = append(r.names, make([]TypeName, int(id)-len(r.names)+1)...)
		r.recipes = append(r.recipes, make([]Recipe, int(id)-len(r.recipes)+1)...)
	}
	r.names[id] = name
	r.recipes[id] = recipe
	return id
}

// ID returns the ComponentID for a registered name.
func (r *Register) ID(name TypeName) (ID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name returns the TypeName a ComponentID was registered with.
func (r *Register) Name(id ID) TypeName {
	return r.names[id]
}

// NewColumn materializes a fresh, empty column for id using its recipe.
func (r *Register) NewColumn(id ID) Column {
	return r.recipes[id]()
}
