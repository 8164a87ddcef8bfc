package csr

import "github.com/katalvlaran/graphcore/core"

// Source is the minimal read surface csr.Build needs from whatever it
// freezes. core.TopologyStore satisfies it structurally, as does a staged
// builder, so either can be frozen into a Graph without csr importing the
// builder package.
type Source interface {
	// Capabilities returns the capability triple the frozen graph inherits.
	Capabilities() core.Capabilities

	// NumVertices returns the vertex count the frozen graph will have.
	NumVertices() int

	// NumEdges returns the edge count the frozen graph will have.
	NumEdges() int

	// Source returns edge e's source endpoint.
	Source(e int) (int, error)

	// Target returns edge e's target endpoint.
	Target(e int) (int, error)
}

var _ Source = (core.TopologyStore)(nil)
