/*
Package cecs provides an archetype-based Entity-Component-System (ECS)
storage engine. It stores heterogeneous, per-entity component bundles in
a column-major layout grouped by the exact set of component types each
entity carries (an archetype, called a Cluster here), and answers
iteration queries filtered by component-set predicates.

Core Concepts:

  - EntityID: a unique identifier for a stored object.
  - Component: a typed value attached to an entity, named by an opaque
    TypeName string at the API boundary.
  - Cluster: the archetype - a storage block for every entity currently
    carrying exactly one set of component types.
  - Query / Cursor: a composable predicate over cluster signatures and
    the lazy iterator that walks every entity matching it.

Basic usage:

	pool := cecs.NewPool()

	position := cecs.FactoryNewComponent[Position]("Position")
	velocity := cecs.FactoryNewComponent[Velocity]("Velocity")

	e := pool.CreateEntity()
	cecs.AddComponent(pool, e, "Position", Position{X: 1, Y: 2})
	cecs.AddComponent(pool, e, "Velocity", Velocity{X: 3, Y: 4})

	query := cecs.Factory.NewQuery()
	node := query.And(position, velocity)
	cursor := cecs.Factory.NewCursor(node, pool)

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

cecs is built leaves-first from four packages: chunked (the growable
chunk-allocated array backing every column), signature (the sparse
ComponentID bitset), component (the TypeName/ComponentID register and
typed column machinery), and cluster (the archetype itself). This
package is the façade that coordinates all of them.
*/
package cecs
