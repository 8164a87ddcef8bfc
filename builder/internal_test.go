package builder

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphcore/core"
)

// TestPairKeyCanonicalizesUndirected exercises the undirected collapse of
// (u, v) and (v, u) into the same key.
func TestPairKeyCanonicalizesUndirected(t *testing.T) {
	a := pairKey(false, 2, 5)
	b := pairKey(false, 5, 2)
	if a != b {
		t.Fatalf("pairKey(false, 2, 5) = %v, pairKey(false, 5, 2) = %v, want equal", a, b)
	}

	directedA := pairKey(true, 2, 5)
	directedB := pairKey(true, 5, 2)
	if directedA == directedB {
		t.Fatalf("pairKey(true, ...) collapsed (2,5) and (5,2), want distinct")
	}
}

// TestValidateOrdersViolations exercises that out-of-range is reported
// even when the same edge would also violate the self-edge rule, and that
// self-edge and parallel-edge violations are each reported with their own
// sentinel.
func TestValidateOrdersViolations(t *testing.T) {
	b := New(core.Capabilities{})
	b.AddVertex()
	b.AddVertex()
	b.AddEdge(5, 5) // out of range, and also a self-edge

	if err := b.validate(); !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("validate() = %v, want ErrOutOfRange", err)
	}

	b2 := New(core.Capabilities{})
	b2.AddVertex()
	b2.AddVertex()
	b2.AddEdge(0, 0) // self-edge, not allowed by default

	if err := b2.validate(); !errors.Is(err, core.ErrSelfEdgeViolation) {
		t.Fatalf("validate() = %v, want ErrSelfEdgeViolation", err)
	}

	b3 := New(core.Capabilities{})
	b3.AddVertex()
	b3.AddVertex()
	b3.AddEdge(0, 1)
	b3.AddEdge(0, 1) // parallel, not allowed by default

	if err := b3.validate(); !errors.Is(err, core.ErrParallelEdgeViolation) {
		t.Fatalf("validate() = %v, want ErrParallelEdgeViolation", err)
	}
}
