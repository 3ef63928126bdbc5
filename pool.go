package cecs

import (
	"sort"

	"github.com/TheBitDrifter/bark"
	"github.com/zafericen/cecs/cluster"
	"github.com/zafericen/cecs/component"
	"github.com/zafericen/cecs/signature"
)

// Pool is the storage façade: it coordinates entity identity, the
// component register, and every live cluster behind a small set of
// operations, so callers never touch clusters directly.
type Pool struct {
	register  *component.Register
	clusters  *clusterContainer
	entities  *entityContainer
	entityIDs *indexer[EntityID]
	queue     *opQueue

	lockCount   int
	generations map[EntityID]uint32
}

// NewPool returns an empty pool with no registered component types.
func NewPool() *Pool {
	return &Pool{
		register:    component.NewRegister(),
		clusters:    newClusterContainer(),
		entities:    newEntityContainer(),
		entityIDs:   newIndexer[EntityID](1),
		queue:       &opQueue{},
		generations: make(map[EntityID]uint32),
	}
}

// Locked reports whether a Cursor currently holds the pool open for
// iteration. Mutating calls made while locked fail with ErrPoolLocked;
// EnqueueDestroyEntity and friends queue the mutation instead.
func (p *Pool) Locked() bool { return p.lockCount > 0 }

// Lock prevents cluster membership from changing out from under an
// in-flight Cursor. Safe to call re-entrantly; Unlock must be called
// once per Lock.
func (p *Pool) Lock() { p.lockCount++ }

// Unlock releases one lock acquired by Lock. Once the last lock is
// released, every operation queued while locked is applied in order.
func (p *Pool) Unlock() {
	if p.lockCount == 0 {
		return
	}
	p.lockCount--
	if p.lockCount == 0 {
		p.queue.processAll(p)
	}
}

func (p *Pool) generationOf(id EntityID) uint32 { return p.generations[id] }

func (p *Pool) clusterOf(id EntityID) *cluster.Cluster { return p.entities.get(id) }

// CreateEntity allocates a fresh EntityID with no components.
func (p *Pool) CreateEntity() EntityID {
	id := p.entityIDs.create()
	p.entities.add(id, nil)
	return id
}

// DestroyEntity removes id and every component it carries. Destroying
// NullEntity, or an id that no longer exists, is a no-op.
func (p *Pool) DestroyEntity(id EntityID) error {
	if id == NullEntity {
		return nil
	}
	if p.Locked() {
		return ErrPoolLocked
	}
	c := p.clusterOf(id)
	if c != nil {
		c.RemoveEntity(id)
		if c.Empty() {
			p.clusters.remove(c)
		}
	} else {
		if id >= p.entityIDs.next {
			return nil
		}
		for _, freed := range p.entityIDs.freed {
			if freed == id {
				return nil
			}
		}
	}
	p.entities.remove(id)
	p.entityIDs.release(id)
	p.generations[id]++
	return nil
}

// EnqueueDestroyEntity behaves like DestroyEntity but, when the pool is
// locked, defers the destruction until the last Unlock instead of
// failing.
func (p *Pool) EnqueueDestroyEntity(id EntityID) error {
	if !p.Locked() {
		return p.DestroyEntity(id)
	}
	p.queue.enqueue(destroyEntityOp{id: id, gen: p.generationOf(id)})
	return nil
}

// HasComponentType reports whether name has ever been registered.
func (p *Pool) HasComponentType(name component.TypeName) bool {
	return p.register.Registered(name)
}

// HasComponent reports whether id currently carries a component named
// name. A non-existent entity or an unregistered name both report false.
func (p *Pool) HasComponent(id EntityID, name component.TypeName) bool {
	c := p.clusterOf(id)
	if c == nil {
		return false
	}
	cid, ok := p.register.ID(name)
	if !ok {
		return false
	}
	return c.Signature().Check(cid)
}

// Signature returns the component signature id currently carries.
func (p *Pool) Signature(id EntityID) signature.Signature {
	c := p.clusterOf(id)
	if c == nil {
		return signature.Signature{}
	}
	return c.Signature()
}

// ClusterID returns the cluster id currently belongs to, or NullCluster
// if it carries no components.
func (p *Pool) ClusterID(id EntityID) ClusterID {
	c := p.clusterOf(id)
	if c == nil {
		return NullCluster
	}
	return c.ID()
}

// ComponentNames returns, in sorted order, every component name id
// currently carries.
func (p *Pool) ComponentNames(id EntityID) []component.TypeName {
	c := p.clusterOf(id)
	if c == nil {
		return nil
	}
	cids := c.Signature().Components()
	names := make([]component.TypeName, len(cids))
	for i, cid := range cids {
		names[i] = p.register.Name(cid)
	}
	sort.Strings(names)
	return names
}

// AddComponents adds every value to id in a single archetype
// transition, which is what makes it cheaper than calling AddComponent
// once per value: the entity moves cluster at most once no matter how
// many components are being attached. Values for components id already
// carries are silently ignored, matching AddComponent's idempotence.
func (p *Pool) AddComponents(id EntityID, values ...componentValue) error {
	if p.Locked() {
		return ErrPoolLocked
	}
	if len(values) == 0 {
		return nil
	}

	old := p.clusterOf(id)
	var sig signature.Signature
	if old != nil {
		sig = old.Signature().Clone()
	}

	fresh := make([]componentValue, 0, len(values))
	for _, v := range values {
		cid := p.register.Register(v.name, v.recipe)
		if old != nil && old.Signature().Check(cid) {
			continue
		}
		sig.Set(cid, true)
		fresh = append(fresh, v)
	}
	if len(fresh) == 0 {
		return nil
	}

	dest := p.clusters.getOrCreate(sig, p.register)
	if old != nil {
		cluster.CarryEntity(id, id, old, dest)
		if old.Empty() {
			p.clusters.remove(old)
		}
		p.fireTransfer(id, old.ID(), dest.ID())
	} else {
		dest.AddEntity(id)
	}

	for _, v := range fresh {
		col, ok := dest.Column(v.name)
		if !ok {
			return bark.AddTrace(UnknownComponentError{Name: v.name})
		}
		v.apply(col)
	}
	p.entities.set(id, dest)
	return nil
}

// EnqueueAddComponent behaves like AddComponent but, when the pool is
// locked, defers the addition until the last Unlock instead of failing.
func EnqueueAddComponent[T any](p *Pool, id EntityID, name component.TypeName, value T) error {
	if !p.Locked() {
		return AddComponent(p, id, name, value)
	}
	p.queue.enqueue(addComponentOp{id: id, gen: p.generationOf(id), value: NewComponentValue(name, value)})
	return nil
}

// RemoveComponent removes the component named name from id, moving it
// to the cluster for its remaining signature. If that signature is
// empty, id is destroyed entirely rather than left as a bare identity.
func (p *Pool) RemoveComponent(id EntityID, name component.TypeName) error {
	if p.Locked() {
		return ErrPoolLocked
	}
	cid, ok := p.register.ID(name)
	if !ok {
		return bark.AddTrace(UnknownComponentError{Name: name})
	}
	old := p.clusterOf(id)
	if old == nil {
		return bark.AddTrace(ComponentNotFoundError{Name: name})
	}
	if !old.Signature().Check(cid) {
		return bark.AddTrace(ComponentNotFoundError{Name: name})
	}

	sig := old.Signature().Clone()
	sig.Set(cid, false)
	if !sig.Any() {
		return p.DestroyEntity(id)
	}

	dest := p.clusters.getOrCreate(sig, p.register)
	cluster.CarryEntity(id, id, old, dest)
	if old.Empty() {
		p.clusters.remove(old)
	}
	p.entities.set(id, dest)
	p.fireTransfer(id, old.ID(), dest.ID())
	return nil
}

// EnqueueRemoveComponent behaves like RemoveComponent but, when the
// pool is locked, defers the removal until the last Unlock.
func (p *Pool) EnqueueRemoveComponent(id EntityID, name component.TypeName) error {
	if !p.Locked() {
		return p.RemoveComponent(id, name)
	}
	p.queue.enqueue(removeComponentOp{id: id, gen: p.generationOf(id), name: name})
	return nil
}

// CarryEntity relocates id into the cluster identified by target,
// useful when a caller keeps several clusters sharing one signature
// (for example to batch otherwise-identical entities separately) and
// wants explicit control over which one an entity lands in. Carrying
// into the cluster an entity is already in is a no-op.
func (p *Pool) CarryEntity(id EntityID, target ClusterID) error {
	if p.Locked() {
		return ErrPoolLocked
	}
	old := p.clusterOf(id)
	if old == nil {
		return bark.AddTrace(ClusterNotFoundError{ID: target})
	}
	dest, ok := p.clusters.byID(cluster.ID(target))
	if !ok {
		return bark.AddTrace(ClusterNotFoundError{ID: target})
	}
	if old == dest {
		return nil
	}
	cluster.CarryEntity(id, id, old, dest)
	if old.Empty() {
		p.clusters.remove(old)
	}
	p.entities.set(id, dest)
	p.fireTransfer(id, old.ID(), dest.ID())
	return nil
}

// EnqueueCarryEntity behaves like CarryEntity but, when the pool is
// locked, defers the relocation until the last Unlock.
func (p *Pool) EnqueueCarryEntity(id EntityID, target ClusterID) error {
	if !p.Locked() {
		return p.CarryEntity(id, target)
	}
	p.queue.enqueue(carryEntityOp{id: id, gen: p.generationOf(id), target: target})
	return nil
}

// CopyEntity duplicates oldID's full component set onto newID, which
// must already exist (typically freshly created via CreateEntity). Any
// components newID already had are discarded first so the copy is
// exact. The source entity is left untouched.
func (p *Pool) CopyEntity(newID, oldID EntityID) error {
	if p.Locked() {
		return ErrPoolLocked
	}
	if newID == oldID {
		return bark.AddTrace(EntityRelationError{Entity: newID})
	}
	source := p.clusterOf(oldID)
	if source == nil {
		return bark.AddTrace(ClusterNotFoundError{ID: NullCluster})
	}
	if existing := p.clusterOf(newID); existing != nil {
		existing.RemoveEntity(newID)
		if existing.Empty() {
			p.clusters.remove(existing)
		}
	}
	cluster.CopyEntity(newID, oldID, source, source)
	p.entities.set(newID, source)
	return nil
}

// Query returns every cluster matching a required/excluded signature
// pair, resolving TypeNames through the pool's register.
func (p *Pool) Query(required, excluded []component.TypeName) []*cluster.Cluster {
	var reqSig, excSig signature.Signature
	for _, name := range required {
		if cid, ok := p.register.ID(name); ok {
			reqSig.Set(cid, true)
		}
	}
	for _, name := range excluded {
		if cid, ok := p.register.ID(name); ok {
			excSig.Set(cid, true)
		}
	}
	return p.clusters.query(reqSig, excSig)
}

func (p *Pool) fireTransfer(id EntityID, from, to ClusterID) {
	if hook := Config.clusterEvents.OnEntityTransferred; hook != nil {
		hook(id, from, to)
	}
}

// GetComponent returns a pointer to id's component named name. Callers
// must supply the same T the component was registered with; a mismatch
// panics, same as a bad type assertion.
func GetComponent[T any](p *Pool, id EntityID, name component.TypeName) *T {
	c := p.clusterOf(id)
	if c == nil {
		panic(bark.AddTrace(ComponentNotFoundError{Name: name}))
	}
	row, ok := c.RowOf(id)
	if !ok {
		panic(bark.AddTrace(ComponentNotFoundError{Name: name}))
	}
	col, ok := c.Column(name)
	if !ok {
		panic(bark.AddTrace(ComponentNotFoundError{Name: name}))
	}
	return component.RowOf[T](col, row)
}

// SetComponent overwrites id's component named name with value.
func SetComponent[T any](p *Pool, id EntityID, name component.TypeName, value T) error {
	if p.Locked() {
		return ErrPoolLocked
	}
	c := p.clusterOf(id)
	if c == nil {
		return bark.AddTrace(ComponentNotFoundError{Name: name})
	}
	row, ok := c.RowOf(id)
	if !ok {
		return bark.AddTrace(ComponentNotFoundError{Name: name})
	}
	col, ok := c.Column(name)
	if !ok {
		return bark.AddTrace(ComponentNotFoundError{Name: name})
	}
	component.SetRow[T](col, row, value)
	return nil
}

// AddComponent attaches value to id under name, registering name on
// first sight. A no-op if id already carries that component.
func AddComponent[T any](p *Pool, id EntityID, name component.TypeName, value T) error {
	return p.AddComponents(id, NewComponentValue(name, value))
}
