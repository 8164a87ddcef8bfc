// Package factory provides the fluent entry point for constructing
// graphs and builders with a chosen capability triple and backend hint.
// A Factory is configured once via its chaining methods (Directed,
// AllowSelfEdges, AllowParallelEdges, AddHint) and then used to produce
// one or more graphs or builders sharing that configuration.
//
// NewGraph and NewBuilder delegate backend selection to
// core.NewTopologyStore, the same hint-driven choice a Builder makes
// internally. NewCopyOf and NewBuilderCopyOf additionally replay an
// existing graph's vertices, edges and (optionally) weights into the
// freshly constructed target, which may use different capabilities or a
// different backend than the source.
package factory
