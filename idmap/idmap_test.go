package idmap_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/idmap"
	"github.com/stretchr/testify/require"
)

// TestIdentityMapRoundTrip exercises IdentityMap's trivial bijection.
func TestIdentityMapRoundTrip(t *testing.T) {
	var m idmap.IdentityMap
	id, err := m.IndexToID(7)
	require.NoError(t, err)
	require.Equal(t, 7, id)

	idx, err := m.IDToIndex(7)
	require.NoError(t, err)
	require.Equal(t, 7, idx)
}

// TestMapTracksSwapRemove exercises that a Map attached to a core.IndexSet
// follows the owner's swap-remove semantics: removing index 1 of 3 moves
// the last index's id down into slot 1.
func TestMapTracksSwapRemove(t *testing.T) {
	idx := core.NewIndexSet()
	m := idmap.New[string](func(i int) string {
		return []string{"a", "b", "c"}[i]
	})
	m.AttachTo(idx)

	idx.Append()
	idx.Append()
	idx.Append()

	id1, err := m.IndexToID(1)
	require.NoError(t, err)
	require.Equal(t, "b", id1)

	idx.SwapRemove(1) // removes "b", swaps "c" down into slot 1

	_, err = m.IDToIndex("b")
	require.ErrorIs(t, err, idmap.ErrUnknownID)

	newIdx, err := m.IDToIndex("c")
	require.NoError(t, err)
	require.Equal(t, 1, newIdx)

	gotID, err := m.IndexToID(1)
	require.NoError(t, err)
	require.Equal(t, "c", gotID)
}

// TestMapReassignOverridesMintedID exercises the explicit Reassign path
// used when a caller wants to bind a specific id to a freshly appended
// index instead of the minted default.
func TestMapReassignOverridesMintedID(t *testing.T) {
	idx := core.NewIndexSet()
	m := idmap.New[int](idmap.IntMintFn)
	m.AttachTo(idx)

	idx.Append() // minted id 0

	require.NoError(t, m.Reassign(0, 42))

	got, err := m.IndexToID(0)
	require.NoError(t, err)
	require.Equal(t, 42, got)

	mapped, err := m.IDToIndex(42)
	require.NoError(t, err)
	require.Equal(t, 0, mapped)

	_, err = m.IDToIndex(0)
	require.ErrorIs(t, err, idmap.ErrUnknownID)
}

// TestMapReassignRejectsDuplicate exercises that binding an id already
// live on a different index fails.
func TestMapReassignRejectsDuplicate(t *testing.T) {
	idx := core.NewIndexSet()
	m := idmap.New[int](idmap.IntMintFn)
	m.AttachTo(idx)

	idx.Append()
	idx.Append()

	require.NoError(t, m.Reassign(0, 100))
	err := m.Reassign(1, 100)
	require.ErrorIs(t, err, idmap.ErrDuplicateID)
}
