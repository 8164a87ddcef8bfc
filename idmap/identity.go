package idmap

// IdentityMap is the integer fast path: an index's public identifier is
// the index itself. It holds no state and needs no IndexSet subscription,
// since nothing ever falls out of sync with itself.
type IdentityMap struct{}

// IndexToID returns idx unchanged.
func (IdentityMap) IndexToID(idx int) (int, error) {
	return idx, nil
}

// IDToIndex returns id unchanged.
func (IdentityMap) IDToIndex(id int) (int, error) {
	return id, nil
}

// IndexToIDIfExist returns (idx, true) unconditionally; callers still
// bound idx against the owning store's NumVertices/NumEdges themselves.
func (IdentityMap) IndexToIDIfExist(idx int) (int, bool) {
	return idx, true
}

// IDToIndexIfExist returns (id, true) unconditionally.
func (IdentityMap) IDToIndexIfExist(id int) (int, bool) {
	return id, true
}
