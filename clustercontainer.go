package cecs

import (
	"github.com/zafericen/cecs/cluster"
	"github.com/zafericen/cecs/component"
	"github.com/zafericen/cecs/signature"
)

// clusterGroup collects every live cluster sharing one signature. Most
// signatures ever have exactly one cluster; CarryEntity lets a caller
// keep a signature split across several, for example to partition
// identical entities into distinct storage batches.
type clusterGroup struct {
	ids []cluster.ID
	set map[cluster.ID]bool
}

func newClusterGroup() *clusterGroup {
	return &clusterGroup{set: make(map[cluster.ID]bool)}
}

func (g *clusterGroup) add(id cluster.ID) {
	if g.set[id] {
		return
	}
	g.set[id] = true
	g.ids = append(g.ids, id)
}

func (g *clusterGroup) remove(id cluster.ID) {
	if !g.set[id] {
		return
	}
	delete(g.set, id)
	for i, v := range g.ids {
		if v == id {
			g.ids = append(g.ids[:i], g.ids[i+1:]...)
			break
		}
	}
}

func (g *clusterGroup) empty() bool { return len(g.ids) == 0 }

// defaultID returns the cluster new entities land in when a caller asks
// for "the" cluster matching a signature rather than a specific one.
func (g *clusterGroup) defaultID() cluster.ID { return g.ids[0] }

// clusterContainer groups every live cluster by its signature's
// canonical key, and hands out a recyclable ClusterID to each new one.
type clusterContainer struct {
	ids      *indexer[cluster.ID]
	clusters map[cluster.ID]*cluster.Cluster
	groups   map[string]*clusterGroup
	sigs     map[string]signature.Signature
}

func newClusterContainer() *clusterContainer {
	return &clusterContainer{
		ids:      newIndexer[cluster.ID](1),
		clusters: make(map[cluster.ID]*cluster.Cluster),
		groups:   make(map[string]*clusterGroup),
		sigs:     make(map[string]signature.Signature),
	}
}

// byID returns the cluster with the given id, if it is still live.
func (cc *clusterContainer) byID(id cluster.ID) (*cluster.Cluster, bool) {
	c, ok := cc.clusters[id]
	return c, ok
}

func (cc *clusterContainer) has(id cluster.ID) bool {
	_, ok := cc.clusters[id]
	return ok
}

// all returns every live cluster, in no particular order.
func (cc *clusterContainer) all() []*cluster.Cluster {
	out := make([]*cluster.Cluster, 0, len(cc.clusters))
	for _, c := range cc.clusters {
		out = append(out, c)
	}
	return out
}

// create materializes a brand-new cluster for sig, wiring one column
// per component the signature carries.
func (cc *clusterContainer) create(sig signature.Signature, reg *component.Register) *cluster.Cluster {
	id := cc.ids.create()
	c := cluster.New(id, sig)
	for _, cid := range sig.Components() {
		c.AddColumn(reg.Name(cid), reg.NewColumn(cid))
	}
	cc.clusters[id] = c

	key := sig.Key()
	g, ok := cc.groups[key]
	if !ok {
		g = newClusterGroup()
		cc.groups[key] = g
		cc.sigs[key] = sig
	}
	g.add(id)

	if hook := Config.clusterEvents.OnClusterCreated; hook != nil {
		hook(id)
	}
	return c
}

// getOrCreate returns the default cluster for sig, creating it (and its
// group) on first sight.
func (cc *clusterContainer) getOrCreate(sig signature.Signature, reg *component.Register) *cluster.Cluster {
	key := sig.Key()
	if g, ok := cc.groups[key]; ok {
		return cc.clusters[g.defaultID()]
	}
	return cc.create(sig, reg)
}

// remove drops c from the container once it has gone empty.
func (cc *clusterContainer) remove(c *cluster.Cluster) {
	key := c.Signature().Key()
	if g, ok := cc.groups[key]; ok {
		g.remove(c.ID())
		if g.empty() {
			delete(cc.groups, key)
			delete(cc.sigs, key)
		}
	}
	delete(cc.clusters, c.ID())
	cc.ids.release(c.ID())

	if hook := Config.clusterEvents.OnClusterDestroyed; hook != nil {
		hook(c.ID())
	}
}

// query returns every cluster whose signature is a superset of required
// and shares nothing with excluded.
func (cc *clusterContainer) query(required, excluded signature.Signature) []*cluster.Cluster {
	var out []*cluster.Cluster
	for key, g := range cc.groups {
		sig := cc.sigs[key]
		if !required.Subset(sig) {
			continue
		}
		if excluded.AnyMatch(sig) {
			continue
		}
		for _, id := range g.ids {
			out = append(out, cc.clusters[id])
		}
	}
	return out
}
