package gaitplan

import "sync/atomic"

// Registry issues identifiers to gait paths. It is owned by the caller and
// passed explicitly at construction; there is no package-level instance
// state. ID issuance is atomic so distinct goroutines may construct paths
// against the same registry, even though computation on a single path is
// not synchronized.
type Registry struct {
	next atomic.Int64
}

// NewRegistry returns an empty registry whose first issued ID is 1.
func NewRegistry() *Registry {
	return &Registry{}
}

// NextID issues the next gait path identifier.
func (r *Registry) NextID() int {
	return int(r.next.Add(1))
}

// Count returns how many identifiers have been issued.
func (r *Registry) Count() int {
	return int(r.next.Load())
}
