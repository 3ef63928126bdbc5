package cecs

import "github.com/zafericen/cecs/component"

// EntityOperation is a deferred mutation applied once a Pool's last
// lock releases.
type EntityOperation interface {
	Apply(p *Pool) error
}

// opQueue holds operations queued while a pool was locked.
type opQueue struct {
	ops []EntityOperation
}

func (q *opQueue) enqueue(op EntityOperation) {
	q.ops = append(q.ops, op)
}

// processAll applies every queued operation in order and clears the
// queue, returning the first error any operation reported. Called by
// Pool.Unlock once the last lock releases; a no-op if the pool is
// (somehow) still locked when this runs.
func (q *opQueue) processAll(p *Pool) error {
	if p.Locked() {
		return nil
	}
	pending := q.ops
	q.ops = nil
	var first error
	for _, op := range pending {
		if err := op.Apply(p); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// destroyEntityOp is a queued DestroyEntity call.
type destroyEntityOp struct {
	id  EntityID
	gen uint32
}

// Apply destroys id, unless it was destroyed and its EntityID recycled
// for a different entity between enqueue and replay.
func (op destroyEntityOp) Apply(p *Pool) error {
	if p.generationOf(op.id) != op.gen {
		return nil
	}
	return p.DestroyEntity(op.id)
}

// addComponentOp is a queued AddComponent call.
type addComponentOp struct {
	id    EntityID
	gen   uint32
	value componentValue
}

func (op addComponentOp) Apply(p *Pool) error {
	if p.generationOf(op.id) != op.gen {
		return nil
	}
	return p.AddComponents(op.id, op.value)
}

// removeComponentOp is a queued RemoveComponent call.
type removeComponentOp struct {
	id   EntityID
	gen  uint32
	name component.TypeName
}

func (op removeComponentOp) Apply(p *Pool) error {
	if p.generationOf(op.id) != op.gen {
		return nil
	}
	return p.RemoveComponent(op.id, op.name)
}

// carryEntityOp is a queued CarryEntity call.
type carryEntityOp struct {
	id     EntityID
	gen    uint32
	target ClusterID
}

func (op carryEntityOp) Apply(p *Pool) error {
	if p.generationOf(op.id) != op.gen {
		return nil
	}
	return p.CarryEntity(op.id, op.target)
}
