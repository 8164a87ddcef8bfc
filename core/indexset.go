package core

// IndexListener is notified of structural changes to the IndexSet it is
// registered on: an append (new element at the current size) or a
// swap-remove (the element at index removed is replaced by the element
// that used to live at index swapped, then the set shrinks by one).
//
// Implementations must be non-reentrant: they must not mutate the graph
// that owns the IndexSet from within a callback.
type IndexListener interface {
	onAppend()
	onSwapRemove(removed, swapped int)
}

// IndexSet maintains the dense half-open range [0, n) of live element
// indices for one axis (vertices or edges) of a topology store. It is the
// single source of truth for "how many" and drives every dependent
// structure — weight containers and the id/index bridge — through the
// IndexListener callback, fired synchronously within the mutating call.
//
// A backend's own bookkeeping (endpoints, adjacency) is not wired through
// listeners: the backend already performs the swap itself as part of
// AddEdge/RemoveEdge and friends, in the order required to keep those
// invariants consistent with the IndexSet's own bookkeeping.
type IndexSet struct {
	n         int
	listeners []IndexListener
}

// NewIndexSet returns an empty IndexSet.
func NewIndexSet() *IndexSet {
	return &IndexSet{}
}

// Size returns the current number of live indices.
func (s *IndexSet) Size() int {
	return s.n
}

// Contains reports whether i is a live index.
func (s *IndexSet) Contains(i int) bool {
	return i >= 0 && i < s.n
}

// Listen registers l to be notified of future appends and swap-removes.
// It does not retroactively notify l of the set's current contents;
// callers that need to backfill existing slots (e.g. a weights container
// attached to a non-empty graph) must do so before calling Listen.
func (s *IndexSet) Listen(l IndexListener) {
	s.listeners = append(s.listeners, l)
}

// Unlisten removes a previously registered listener. It is a no-op if l is
// not currently registered.
func (s *IndexSet) Unlisten(l IndexListener) {
	for i, cur := range s.listeners {
		if cur == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Append grows the set by one and returns the index of the new element.
// Every registered listener observes the growth via onAppend.
func (s *IndexSet) Append() int {
	idx := s.n
	s.n++
	for _, l := range s.listeners {
		l.onAppend()
	}

	return idx
}

// SwapRemove removes index i, moving the element currently at the last
// index into i's place (a no-op move when i is already the last index),
// then shrinks the set by one. Every registered listener observes the
// change via onSwapRemove(i, lastIndex) before the set shrinks. The caller
// must ensure 0 <= i < Size(); SwapRemove does not itself validate i,
// since every public caller already checked liveness against the more
// specific ErrNoSuchVertex/ErrNoSuchEdge sentinels.
func (s *IndexSet) SwapRemove(i int) (swapped int) {
	swapped = s.n - 1
	for _, l := range s.listeners {
		l.onSwapRemove(i, swapped)
	}
	s.n--

	return swapped
}
