package cecs

// ClusterEvents are optional hooks a caller can install to observe
// archetype lifecycle without the core importing any particular
// observability backend.
type ClusterEvents struct {
	OnClusterCreated    func(id ClusterID)
	OnClusterDestroyed  func(id ClusterID)
	OnEntityTransferred func(id EntityID, from, to ClusterID)
}

// Config holds process-wide configuration for the cecs package.
var Config config = config{}

type config struct {
	clusterEvents ClusterEvents
}

// SetClusterEvents installs the hooks fired on cluster creation,
// destruction, and entity transfer between clusters.
func (c *config) SetClusterEvents(ce ClusterEvents) {
	c.clusterEvents = ce
}
