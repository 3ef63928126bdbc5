package cecs

import (
	"github.com/zafericen/cecs/chunked"
	"github.com/zafericen/cecs/cluster"
)

// entityContainer maps an EntityID to the cluster that currently owns
// it (nil for an entity with no components yet). Row 0 is reserved for
// NullEntity and is never written to.
type entityContainer struct {
	owner *chunked.Array[*cluster.Cluster]
}

func newEntityContainer() *entityContainer {
	ec := &entityContainer{owner: chunked.New[*cluster.Cluster]()}
	ec.owner.PushBack(nil)
	return ec
}

// add records a freshly created entity. Recycled IDs reuse an existing
// row; brand-new ones grow the backing array by exactly one.
func (ec *entityContainer) add(id EntityID, c *cluster.Cluster) {
	if int(id) < ec.owner.Len() {
		ec.owner.Set(int(id), c)
		return
	}
	ec.owner.PushBack(c)
}

func (ec *entityContainer) set(id EntityID, c *cluster.Cluster) {
	ec.owner.Set(int(id), c)
}

func (ec *entityContainer) remove(id EntityID) {
	ec.owner.Set(int(id), nil)
}

func (ec *entityContainer) get(id EntityID) *cluster.Cluster {
	if int(id) >= ec.owner.Len() {
		return nil
	}
	return *ec.owner.Get(int(id))
}
