package cecs

import "github.com/zafericen/cecs/cluster"

// Cursor lazily iterates every entity in every cluster matching a
// Query. Initializing a Cursor locks the pool (preventing archetype
// transitions that would invalidate the cluster list mid-iteration);
// the lock releases automatically once iteration runs out.
type Cursor struct {
	query QueryNode
	pool  *Pool

	clusterIdx  int
	entityIdx   int
	remaining   int
	initialized bool
	matched     []*cluster.Cluster
}

// NewCursor returns a cursor walking every entity matching query.
func NewCursor(query QueryNode, pool *Pool) *Cursor {
	return &Cursor{query: query, pool: pool}
}

// Next advances the cursor and reports whether another entity is
// available. Call Entity/row-bound accessors only after Next returns
// true.
func (c *Cursor) Next() bool {
	if c.entityIdx < c.remaining {
		c.entityIdx++
		return true
	}
	return c.advance()
}

func (c *Cursor) advance() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.clusterIdx < len(c.matched) {
		c.remaining = c.matched[c.clusterIdx].Len()
		if c.entityIdx < c.remaining {
			c.entityIdx++
			return true
		}
		c.clusterIdx++
		c.entityIdx = 0
	}
	c.reset()
	return false
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.pool.Lock()
	for _, cl := range c.pool.clusters.all() {
		if c.query.Evaluate(cl, c.pool) {
			c.matched = append(c.matched, cl)
		}
	}
	c.initialized = true
}

func (c *Cursor) reset() {
	c.clusterIdx = 0
	c.entityIdx = 0
	c.remaining = 0
	c.matched = nil
	c.initialized = false
	c.pool.Unlock()
}

// row returns the current row within the current cluster.
func (c *Cursor) row() int { return c.entityIdx - 1 }

// cluster returns the cluster the cursor is currently positioned in.
func (c *Cursor) cluster() *cluster.Cluster { return c.matched[c.clusterIdx] }

// Entity returns the EntityID at the cursor's current position.
func (c *Cursor) Entity() EntityID {
	return c.matched[c.clusterIdx].EntityAt(c.row())
}

// TotalMatched returns how many entities match the cursor's query,
// across every matching cluster. This forces initialization and then
// resets the cursor, so it is meant to be called before iterating, not
// interleaved with Next.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	total := 0
	for _, cl := range c.matched {
		total += cl.Len()
	}
	c.reset()
	return total
}
