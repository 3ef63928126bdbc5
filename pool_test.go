package cecs

import "testing"

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

func TestCreateEntity(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	if e == NullEntity {
		t.Fatal("CreateEntity returned NullEntity")
	}
	if p.ClusterID(e) != NullCluster {
		t.Errorf("fresh entity should have no cluster, got %d", p.ClusterID(e))
	}
}

func TestAddComponentsSingleTransition(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()

	err := p.AddComponents(e,
		NewComponentValue("Position", Position{X: 1, Y: 2}),
		NewComponentValue("Velocity", Velocity{X: 3, Y: 4}),
	)
	if err != nil {
		t.Fatalf("AddComponents: %v", err)
	}

	if !p.HasComponent(e, "Position") || !p.HasComponent(e, "Velocity") {
		t.Fatal("entity missing components after AddComponents")
	}

	firstCluster := p.ClusterID(e)

	pos := GetComponent[Position](p, e, "Position")
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Position = %+v, want {1 2}", *pos)
	}
	vel := GetComponent[Velocity](p, e, "Velocity")
	if vel.X != 3 || vel.Y != 4 {
		t.Errorf("Velocity = %+v, want {3 4}", *vel)
	}

	// Re-adding an already-held component plus a new one should still
	// be one transition, and must not disturb the existing values.
	err = p.AddComponents(e,
		NewComponentValue("Position", Position{X: 99, Y: 99}),
		NewComponentValue("Health", Health{Current: 10, Max: 10}),
	)
	if err != nil {
		t.Fatalf("AddComponents (mixed): %v", err)
	}
	if !p.HasComponent(e, "Health") {
		t.Fatal("entity missing Health after mixed AddComponents")
	}
	pos = GetComponent[Position](p, e, "Position")
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Position was overwritten by a duplicate AddComponents call: %+v", *pos)
	}
	if p.ClusterID(e) == firstCluster {
		t.Error("entity did not move cluster after gaining a new component")
	}
}

func TestAddComponentIdempotent(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()

	if err := AddComponent(p, e, "Position", Position{X: 1, Y: 1}); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	cluster1 := p.ClusterID(e)

	if err := AddComponent(p, e, "Position", Position{X: 2, Y: 2}); err != nil {
		t.Fatalf("AddComponent (repeat): %v", err)
	}
	if p.ClusterID(e) != cluster1 {
		t.Error("repeated AddComponent for an already-held type moved the entity")
	}
	pos := GetComponent[Position](p, e, "Position")
	if pos.X != 1 {
		t.Error("repeated AddComponent overwrote the existing value")
	}
}

func TestRemoveComponent(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})
	AddComponent(p, e, "Velocity", Velocity{X: 2, Y: 2})

	if err := p.RemoveComponent(e, "Velocity"); err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	if p.HasComponent(e, "Velocity") {
		t.Error("Velocity still present after RemoveComponent")
	}
	if !p.HasComponent(e, "Position") {
		t.Error("Position lost as a side effect of removing Velocity")
	}
}

func TestRemoveLastComponentDestroysEntity(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})

	if err := p.RemoveComponent(e, "Position"); err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	if p.ClusterID(e) != NullCluster {
		t.Error("entity should be fully destroyed once its last component is removed")
	}
	if p.HasComponent(e, "Position") {
		t.Error("destroyed entity still reports HasComponent true")
	}
}

func TestRemoveComponentUnknown(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})

	if err := p.RemoveComponent(e, "Velocity"); err == nil {
		t.Error("RemoveComponent for a component the entity never had should error")
	}
}

func TestDestroyEntity(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})

	if err := p.DestroyEntity(e); err != nil {
		t.Fatalf("DestroyEntity: %v", err)
	}
	if p.HasComponent(e, "Position") {
		t.Error("destroyed entity still reports a component")
	}

	// Destroying an already-destroyed entity is a no-op, not an error.
	if err := p.DestroyEntity(e); err != nil {
		t.Errorf("second DestroyEntity should be a no-op, got: %v", err)
	}
}

func TestDestroyEntityReclaimsID(t *testing.T) {
	p := NewPool()
	e1 := p.CreateEntity()
	if err := p.DestroyEntity(e1); err != nil {
		t.Fatalf("DestroyEntity: %v", err)
	}
	e2 := p.CreateEntity()
	if e2 != e1 {
		t.Skip("indexer did not reuse the id on this run, not a contract violation")
	}
}

func TestCarryEntity(t *testing.T) {
	p := NewPool()
	a := p.CreateEntity()
	b := p.CreateEntity()
	AddComponent(p, a, "Position", Position{X: 1, Y: 1})
	AddComponent(p, b, "Position", Position{X: 2, Y: 2})
	AddComponent(p, b, "Velocity", Velocity{X: 5, Y: 5})

	targetCluster := p.ClusterID(b)
	if err := p.CarryEntity(a, targetCluster); err != nil {
		t.Fatalf("CarryEntity: %v", err)
	}
	if p.ClusterID(a) != targetCluster {
		t.Error("entity did not land in the requested cluster")
	}
	if !p.HasComponent(a, "Velocity") {
		t.Error("entity carried into a Velocity cluster should report HasComponent Velocity")
	}
}

func TestCarryEntityUnknownCluster(t *testing.T) {
	p := NewPool()
	a := p.CreateEntity()
	AddComponent(p, a, "Position", Position{X: 1, Y: 1})

	if err := p.CarryEntity(a, ClusterID(999)); err == nil {
		t.Error("CarryEntity to a nonexistent cluster should error")
	}
}

func TestCopyEntity(t *testing.T) {
	p := NewPool()
	src := p.CreateEntity()
	AddComponent(p, src, "Position", Position{X: 7, Y: 8})
	AddComponent(p, src, "Velocity", Velocity{X: 1, Y: 1})

	dst := p.CreateEntity()
	if err := p.CopyEntity(dst, src); err != nil {
		t.Fatalf("CopyEntity: %v", err)
	}

	if !p.HasComponent(dst, "Position") || !p.HasComponent(dst, "Velocity") {
		t.Fatal("copy is missing components the source had")
	}
	if !p.HasComponent(src, "Position") {
		t.Error("CopyEntity must leave the source entity untouched")
	}

	dstPos := GetComponent[Position](p, dst, "Position")
	srcPos := GetComponent[Position](p, src, "Position")
	if *dstPos != *srcPos {
		t.Errorf("copied Position %+v does not match source %+v", *dstPos, *srcPos)
	}

	// Mutating the copy must not affect the source (distinct storage rows).
	dstPos.X = 1000
	srcPos = GetComponent[Position](p, src, "Position")
	if srcPos.X == 1000 {
		t.Error("mutating the copy's component mutated the source's row")
	}
}

func TestCopyEntitySelfRejected(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})

	err := p.CopyEntity(e, e)
	if err == nil {
		t.Fatal("CopyEntity(id, id) should be rejected")
	}
	if _, ok := err.(EntityRelationError); !ok {
		t.Errorf("expected EntityRelationError, got %T", err)
	}
}

func TestPoolLockingRejectsMutation(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})

	p.Lock()
	defer p.Unlock()

	if p.DestroyEntity(e) != ErrPoolLocked {
		t.Error("DestroyEntity should fail with ErrPoolLocked while locked")
	}
	if err := p.RemoveComponent(e, "Position"); err != ErrPoolLocked {
		t.Error("RemoveComponent should fail with ErrPoolLocked while locked")
	}
}

func TestEnqueueDestroyEntityAppliesAfterUnlock(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})

	p.Lock()
	if err := p.EnqueueDestroyEntity(e); err != nil {
		t.Fatalf("EnqueueDestroyEntity: %v", err)
	}
	if !p.HasComponent(e, "Position") {
		t.Error("queued destroy must not take effect before Unlock")
	}
	p.Unlock()

	if p.HasComponent(e, "Position") {
		t.Error("queued destroy should have applied once the pool unlocked")
	}
}

func TestStaleOperationIsDropped(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{X: 1, Y: 1})

	// An op built against a generation that no longer matches the
	// entity's current generation (e.g. because it was destroyed and
	// its EntityID recycled between enqueue and replay) must silently
	// no-op rather than act on the wrong entity.
	staleGen := p.generationOf(e) + 1
	op := removeComponentOp{id: e, gen: staleGen, name: "Position"}
	if err := op.Apply(p); err != nil {
		t.Fatalf("stale op should silently no-op, got error: %v", err)
	}
	if !p.HasComponent(e, "Position") {
		t.Error("a stale op must not touch the entity's current components")
	}
}

func TestQueryViaCursor(t *testing.T) {
	p := NewPool()

	for i := 0; i < 5; i++ {
		e := p.CreateEntity()
		AddComponent(p, e, "Position", Position{X: float64(i)})
		AddComponent(p, e, "Velocity", Velocity{X: float64(i)})
	}
	for i := 0; i < 3; i++ {
		e := p.CreateEntity()
		AddComponent(p, e, "Position", Position{X: float64(i)})
	}

	q := NewQuery()
	node := q.And("Position", "Velocity")
	cur := NewCursor(node, p)

	count := 0
	for cur.Next() {
		count++
	}
	if count != 5 {
		t.Errorf("matched %d entities, want 5", count)
	}
}

func TestHasComponentType(t *testing.T) {
	p := NewPool()
	if p.HasComponentType("Position") {
		t.Error("HasComponentType should be false before any registration")
	}
	e := p.CreateEntity()
	AddComponent(p, e, "Position", Position{})
	if !p.HasComponentType("Position") {
		t.Error("HasComponentType should be true once a component has been added")
	}
}

func TestComponentNamesSorted(t *testing.T) {
	p := NewPool()
	e := p.CreateEntity()
	AddComponent(p, e, "Velocity", Velocity{})
	AddComponent(p, e, "Position", Position{})
	AddComponent(p, e, "Health", Health{})

	names := p.ComponentNames(e)
	want := []string{"Health", "Position", "Velocity"}
	if len(names) != len(want) {
		t.Fatalf("ComponentNames = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ComponentNames[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
