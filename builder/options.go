package builder

import "github.com/katalvlaran/graphcore/core"

// Option customizes a Builder at construction time.
type Option func(b *Builder)

// WithHint records a performance hint that BuildMutable and
// ReIndexAndBuildMutable pass on to core.NewTopologyStore when selecting a
// backend. It has no effect on Build/ReIndexAndBuild, which always produce
// a csr.Graph.
func WithHint(hint core.Hint) Option {
	return func(b *Builder) {
		b.hint = hint
	}
}

// WithExpectedVertices is a capacity hint for the number of vertices that
// will be staged. The vertex index set carries no backing array of its
// own, so there is nothing to preallocate; the hint is accepted purely so
// callers can set it uniformly alongside WithExpectedEdges. Never
// contractually observable.
func WithExpectedVertices(int) Option {
	return func(b *Builder) {}
}

// WithExpectedEdges reserves capacity for m staged edges in the endpoint
// slices. Purely a performance hint; never contractually observable.
func WithExpectedEdges(m int) Option {
	return func(b *Builder) {
		if m > 0 {
			b.srcStage = make([]int, 0, m)
			b.tgtStage = make([]int, 0, m)
		}
	}
}
