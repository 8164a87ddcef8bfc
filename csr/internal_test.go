package csr

import "testing"

// TestBuildEdgeReindexScenarioC reproduces the spec's worked example:
// three vertices, edges e0=(1,2), e1=(0,2), e2=(0,1), grouped by source
// and ordered by target within a source. Expected layout:
// outBegin=[0,2,3,3], with e2 -> 0, e1 -> 1, e0 -> 2.
func TestBuildEdgeReindexScenarioC(t *testing.T) {
	src := []int{1, 0, 0}
	tgt := []int{2, 2, 1}

	forward, outBegin := buildEdgeReindex(3, src, tgt)

	wantBegin := []int{0, 2, 3, 3}
	if len(outBegin) != len(wantBegin) {
		t.Fatalf("outBegin = %v, want %v", outBegin, wantBegin)
	}
	for i := range wantBegin {
		if outBegin[i] != wantBegin[i] {
			t.Fatalf("outBegin = %v, want %v", outBegin, wantBegin)
		}
	}

	if forward[2] != 0 {
		t.Errorf("forward[e2] = %d, want 0", forward[2])
	}
	if forward[1] != 1 {
		t.Errorf("forward[e1] = %d, want 1", forward[1])
	}
	if forward[0] != 2 {
		t.Errorf("forward[e0] = %d, want 2", forward[0])
	}
}

// TestPrefixSumCountsDoesNotMutateInput exercises that prefixSumCounts
// leaves its argument untouched and produces an exclusive prefix sum with
// a trailing total.
func TestPrefixSumCountsDoesNotMutateInput(t *testing.T) {
	counts := []int{2, 0, 3}
	original := append([]int(nil), counts...)

	begin := prefixSumCounts(counts)

	for i := range counts {
		if counts[i] != original[i] {
			t.Fatalf("prefixSumCounts mutated its input: got %v, want %v", counts, original)
		}
	}

	want := []int{0, 2, 2, 5}
	if len(begin) != len(want) {
		t.Fatalf("begin = %v, want %v", begin, want)
	}
	for i := range want {
		if begin[i] != want[i] {
			t.Fatalf("begin = %v, want %v", begin, want)
		}
	}
}

// TestPermutationInverseRoundTrips exercises that Inverse() undoes Map().
func TestPermutationInverseRoundTrips(t *testing.T) {
	p := newPermutation([]int{2, 0, 1})
	inv := p.Inverse()
	for orig := 0; orig < 3; orig++ {
		if inv[p.Map(orig)] != orig {
			t.Fatalf("Inverse()[Map(%d)] = %d, want %d", orig, inv[p.Map(orig)], orig)
		}
	}
}
