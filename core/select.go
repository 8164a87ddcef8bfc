package core

// NewTopologyStore constructs an empty mutable backend for caps, choosing
// among the array, linked and hashmap variants according to hint. Hints
// are advisory: combining more than one resolves to the first match in
// the priority order below, and the zero hint falls back to the array
// backend, the safest all-around default.
//
// Priority: HintFastEdgeRemoval (linked) > HintFastEdgeLookup (hashmap) >
// HintDenseGraph or no hint (array).
func NewTopologyStore(caps Capabilities, hint Hint) TopologyStore {
	switch {
	case hint&HintFastEdgeRemoval != 0:
		return NewLinkedGraph(caps)
	case hint&HintFastEdgeLookup != 0:
		return NewHashGraph(caps)
	default:
		return NewArrayGraph(caps)
	}
}
