package cecs

import "github.com/zafericen/cecs/component"

// componentValue carries a named value into AddComponents without
// forcing every call site to know every component's concrete type:
// the recipe and apply closure close over T once, at the call site
// that does know it.
type componentValue struct {
	name   component.TypeName
	recipe component.Recipe
	apply  func(col component.Column)
}

// NewComponentValue packages name and value for a call to
// (*Pool).AddComponents.
func NewComponentValue[T any](name component.TypeName, value T) componentValue {
	return componentValue{
		name:   name,
		recipe: component.NewTypedColumn[T](),
		apply: func(col component.Column) {
			component.AppendValue[T](col, value)
		},
	}
}
