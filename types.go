package cecs

import (
	"github.com/zafericen/cecs/cluster"
	"github.com/zafericen/cecs/component"
)

// EntityID identifies a stored entity.
type EntityID = cluster.EntityID

// ComponentID identifies a registered component type.
type ComponentID = component.ID

// ClusterID identifies an archetype.
type ClusterID = cluster.ID

// NullEntity is never a valid, live entity.
const NullEntity EntityID = 0

// NullCluster is never a valid, live cluster.
const NullCluster ClusterID = cluster.Null
