package factory

import (
	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/core"
)

// Factory accumulates the capability triple and backend hint used to
// construct graphs and builders. The zero value is a ready-to-use
// undirected factory disallowing self-edges and parallel edges, with no
// backend hint (array backend).
type Factory struct {
	directed      bool
	allowSelf     bool
	allowParallel bool
	hint          core.Hint
}

// New returns a ready-to-use Factory with default configuration.
func New() *Factory {
	return &Factory{}
}

// Directed configures the factory to produce directed graphs.
func (f *Factory) Directed() *Factory {
	f.directed = true

	return f
}

// Undirected configures the factory to produce undirected graphs.
func (f *Factory) Undirected() *Factory {
	f.directed = false

	return f
}

// DirectedMode sets directedness explicitly from a bool, for callers
// branching on a runtime flag instead of chaining Directed/Undirected.
func (f *Factory) DirectedMode(directed bool) *Factory {
	f.directed = directed

	return f
}

// AllowSelfEdges configures whether produced graphs accept self-edges.
func (f *Factory) AllowSelfEdges(allow bool) *Factory {
	f.allowSelf = allow

	return f
}

// AllowParallelEdges configures whether produced graphs accept parallel
// edges.
func (f *Factory) AllowParallelEdges(allow bool) *Factory {
	f.allowParallel = allow

	return f
}

// AddHint ORs hint into the factory's accumulated backend hint.
func (f *Factory) AddHint(hint core.Hint) *Factory {
	f.hint |= hint

	return f
}

// Capabilities returns the capability triple the factory is currently
// configured to produce.
func (f *Factory) Capabilities() core.Capabilities {
	return core.Capabilities{
		Directed:           f.directed,
		AllowSelfEdges:     f.allowSelf,
		AllowParallelEdges: f.allowParallel,
	}
}

// NewGraph returns an empty mutable backend for the factory's current
// configuration.
func (f *Factory) NewGraph() core.TopologyStore {
	return core.NewTopologyStore(f.Capabilities(), f.hint)
}

// NewBuilder returns an empty Builder for the factory's current
// configuration.
func (f *Factory) NewBuilder() *builder.Builder {
	return builder.New(f.Capabilities(), builder.WithHint(f.hint))
}
