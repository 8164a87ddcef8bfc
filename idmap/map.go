package idmap

import "github.com/katalvlaran/graphcore/core"

// Map is the mapped-bijection case of the id/index bridge: a dense
// index→id array plus a hash map for id→index, kept in sync with an
// owning core.IndexSet via the core.IndexListener callbacks.
type Map[ID comparable] struct {
	idxToID []ID
	idToIdx map[ID]int
	mint    MintFn[ID]
}

// New returns an empty Map using mint to assign ids to indices appended
// without an explicit Reassign call.
func New[ID comparable](mint MintFn[ID]) *Map[ID] {
	return &Map[ID]{idToIdx: make(map[ID]int), mint: mint}
}

// AttachTo backfills m for every index already live in idx and
// subscribes it to future structural changes. Call this once, before the
// owning store has live state that predates m, or immediately on an empty
// store.
func (m *Map[ID]) AttachTo(idx *core.IndexSet) {
	for i := 0; i < idx.Size(); i++ {
		m.onAppend()
	}
	idx.Listen(m)
}

func (m *Map[ID]) onAppend() {
	idx := len(m.idxToID)
	id := m.mint(idx)
	m.idxToID = append(m.idxToID, id)
	m.idToIdx[id] = idx
}

func (m *Map[ID]) onSwapRemove(removed, swapped int) {
	removedID := m.idxToID[removed]
	delete(m.idToIdx, removedID)
	if removed != swapped {
		swappedID := m.idxToID[swapped]
		m.idxToID[removed] = swappedID
		m.idToIdx[swappedID] = removed
	}
	m.idxToID = m.idxToID[:swapped]
}

var _ core.IndexListener = (*Map[int])(nil)

// IndexToID returns the id bound to idx.
func (m *Map[ID]) IndexToID(idx int) (ID, error) {
	id, ok := m.IndexToIDIfExist(idx)
	if !ok {
		var zero ID

		return zero, core.ErrNoSuchVertex
	}

	return id, nil
}

// IndexToIDIfExist returns the id bound to idx, and whether idx is live.
func (m *Map[ID]) IndexToIDIfExist(idx int) (ID, bool) {
	if idx < 0 || idx >= len(m.idxToID) {
		var zero ID

		return zero, false
	}

	return m.idxToID[idx], true
}

// IDToIndex returns the live index bound to id, or ErrUnknownID.
func (m *Map[ID]) IDToIndex(id ID) (int, error) {
	idx, ok := m.idToIdx[id]
	if !ok {
		return 0, ErrUnknownID
	}

	return idx, nil
}

// IDToIndexIfExist returns the live index bound to id, and whether id is
// known.
func (m *Map[ID]) IDToIndexIfExist(id ID) (int, bool) {
	idx, ok := m.idToIdx[id]

	return idx, ok
}

// Reassign rebinds idx's id to id, replacing whatever id onAppend minted
// for it. Returns ErrDuplicateID if id is already bound to a different
// live index.
func (m *Map[ID]) Reassign(idx int, id ID) error {
	if idx < 0 || idx >= len(m.idxToID) {
		return core.ErrNoSuchVertex
	}
	if existing, ok := m.idToIdx[id]; ok && existing != idx {
		return ErrDuplicateID
	}
	delete(m.idToIdx, m.idxToID[idx])
	m.idxToID[idx] = id
	m.idToIdx[id] = idx

	return nil
}
