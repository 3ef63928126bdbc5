// Package cluster implements the archetype: a storage block holding
// one typed column per component type in its signature, plus the
// entity<->row index that keeps those columns addressable by entity.
package cluster

import (
	"github.com/zafericen/cecs/chunked"
	"github.com/zafericen/cecs/component"
	"github.com/zafericen/cecs/signature"
)

// EntityID identifies an entity. It is an alias for uint32 so callers
// outside this package never need to convert.
type EntityID = uint32

// ID identifies a cluster. Null is never a valid, live cluster.
type ID = uint16

// Null is the null ClusterID.
const Null ID = 0

// Cluster is the archetype: every entity stored here carries exactly
// the component set described by Signature.
type Cluster struct {
	id       ID
	sig      signature.Signature
	columns  map[component.TypeName]component.Column
	rowOf    map[EntityID]int
	entityAt *chunked.Array[EntityID]
}

// New creates an empty cluster for the given signature. Columns are
// added afterward via AddColumn, one per component in sig.
func New(id ID, sig signature.Signature) *Cluster {
	return &Cluster{
		id:       id,
		sig:      sig,
		columns:  make(map[component.TypeName]component.Column),
		rowOf:    make(map[EntityID]int),
		entityAt: chunked.New[EntityID](),
	}
}

// ID returns the cluster's identifier.
func (c *Cluster) ID() ID {
	return c.id
}

// Signature returns the cluster's component signature.
func (c *Cluster) Signature() signature.Signature {
	return c.sig
}

// AddColumn installs an empty column under name. Called once per
// component in the cluster's signature, at creation time.
func (c *Cluster) AddColumn(name component.TypeName, col component.Column) {
	c.columns[name] = col
}

// Column returns the type-erased column for name, if present.
func (c *Cluster) Column(name component.TypeName) (component.Column, bool) {
	col, ok := c.columns[name]
	return col, ok
}

// HasColumn reports whether the cluster stores a column under name.
func (c *Cluster) HasColumn(name component.TypeName) bool {
	_, ok := c.columns[name]
	return ok
}

// Len returns the number of entities (and thus rows) in the cluster.
func (c *Cluster) Len() int {
	return c.entityAt.Len()
}

// Empty reports whether the cluster currently holds no entities.
func (c *Cluster) Empty() bool {
	return c.entityAt.Empty()
}

// HasEntity reports whether id currently has a row in this cluster.
func (c *Cluster) HasEntity(id EntityID) bool {
	_, ok := c.rowOf[id]
	return ok
}

// RowOf returns the row index backing id, if it is present.
func (c *Cluster) RowOf(id EntityID) (int, bool) {
	row, ok := c.rowOf[id]
	return row, ok
}

// EntityAt returns the entity currently occupying row.
func (c *Cluster) EntityAt(row int) EntityID {
	return *c.entityAt.Get(row)
}

// AddEntity appends id as a new row. Columns are not touched here —
// the caller appends into each column immediately after, matching the
// source's division of labor between Cluster.addEntity and the
// transition/pool code that knows the values being carried in.
func (c *Cluster) AddEntity(id EntityID) int {
	row := c.entityAt.Len()
	c.rowOf[id] = row
	c.entityAt.PushBack(id)
	return row
}

// RemoveEntity evicts id via swap-and-pop: every column and the
// entity_at/row_of bijection shrink together in O(columns) regardless
// of which row was removed.
func (c *Cluster) RemoveEntity(id EntityID) {
	row := c.rowOf[id]
	last := c.entityAt.Len() - 1

	for _, col := range c.columns {
		col.SwapRows(row, last)
		col.PopBack()
	}

	lastEntity := *c.entityAt.Get(last)
	c.entityAt.Swap(row, last)
	c.entityAt.PopBack()

	if lastEntity != id {
		c.rowOf[lastEntity] = row
	}
	delete(c.rowOf, id)
}

// CarryEntity moves an entity from source to destination: values in
// every column destination shares with source are relocated, then the
// entity is removed from source. Columns unique to destination are
// left untouched — the caller appends whatever new value is being
// added, if any, right after this returns. Calling this with
// source == destination is undefined; the pool layer skips the
// transition in that case instead (see the pool's CarryEntity).
func CarryEntity(newID, oldID EntityID, source, destination *Cluster) {
	row, ok := source.RowOf(oldID)
	if !ok {
		panic("cluster: CarryEntity: entity not present in source")
	}

	destination.AddEntity(newID)
	for name, destCol := range destination.columns {
		if srcCol, ok := source.columns[name]; ok {
			destCol.MoveAppendFrom(srcCol, row)
		}
	}
	source.RemoveEntity(oldID)
}

// CopyEntity behaves like CarryEntity but copy-appends instead of
// move-appending, and never removes the source row.
func CopyEntity(newID, oldID EntityID, source, destination *Cluster) {
	row, ok := source.RowOf(oldID)
	if !ok {
		panic("cluster: CopyEntity: entity not present in source")
	}

	destination.AddEntity(newID)
	for name, destCol := range destination.columns {
		if srcCol, ok := source.columns[name]; ok {
			destCol.CopyAppendFrom(srcCol, row)
		}
	}
}
