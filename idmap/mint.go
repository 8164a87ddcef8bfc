package idmap

// MintFn produces a fresh identifier for a newly appended index when the
// caller supplies none. It must be pure with respect to idx: minting is
// driven solely by the new index's position, never by ambient state, so
// that replaying the same sequence of appends always yields the same ids.
type MintFn[ID any] func(idx int) ID

// IntMintFn mints the dense index itself as the id, the default minting
// strategy for integer-keyed maps. It does not consult the ids already
// bound, so the minted value is an unused integer only while no index has
// been swap-removed or Reassigned; after either, the new index can equal
// an id that another live index still holds.
func IntMintFn(idx int) int {
	return idx
}
