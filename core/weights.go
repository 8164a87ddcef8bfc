package core

import "fmt"

// Weights is a dense, index-keyed container of per-vertex or per-edge
// values. It is generic over the stored type so that one implementation
// serves every primitive width (int8 through int64, float32/64, bool,
// rune) as well as reference types, per the spec's "generic over element
// type with specialized storage for primitive widths" re-architecture —
// the Go compiler monomorphizes Weights[T] per instantiation, so a
// Weights[int32] and a Weights[float64] each get their own compact backing
// array with no boxing.
//
// A Weights[T] tracks its owning IndexSet by subscribing as an
// IndexListener: Append backfills the default value, SwapRemove mirrors
// the last value into the removed slot. Callers never call onAppend or
// onSwapRemove directly.
type Weights[T any] struct {
	values []T
	def    T
}

// NewWeights returns an empty Weights container with the given default
// value. Use AddWeights on a store's vertex or edge WeightsRegistry to
// attach one to a store rather than constructing and subscribing it by
// hand.
func NewWeights[T any](def T) *Weights[T] {
	return &Weights[T]{def: def}
}

// Len returns the number of entries currently stored (tracks the owning
// index set's size).
func (w *Weights[T]) Len() int {
	return len(w.values)
}

// Default returns the value implicitly held by any index never explicitly
// Set.
func (w *Weights[T]) Default() T {
	return w.def
}

// Get returns the value at index i.
func (w *Weights[T]) Get(i int) T {
	return w.values[i]
}

// Set stores value at index i.
func (w *Weights[T]) Set(i int, value T) {
	w.values[i] = value
}

func (w *Weights[T]) onAppend() {
	w.values = append(w.values, w.def)
}

func (w *Weights[T]) onSwapRemove(removed, swapped int) {
	w.values[removed] = w.values[swapped]
	w.values = w.values[:swapped]
}

// copyInto attaches a new Weights[T] under key in dst and copies every
// current value across, remapped through perm when non-nil (perm[i] is
// the destination index for source index i; a nil perm is the identity).
// Because the method is defined on the concrete Weights[T] receiver, T is
// bound here even though callers reach it through the type-erased
// weightsCopier interface.
func (w *Weights[T]) copyInto(dst *WeightsRegistry, key string, perm func(int) int) error {
	nw, err := AddWeights[T](dst, key, w.def)
	if err != nil {
		return err
	}
	for i, v := range w.values {
		j := i
		if perm != nil {
			j = perm(i)
		}
		nw.Set(j, v)
	}

	return nil
}

// weightsCopier is the type-erased half of Weights[T].copyInto, letting
// WeightsRegistry.CopyInto migrate every entry into a fresh registry
// without the registry itself needing to know each entry's element type.
type weightsCopier interface {
	copyInto(dst *WeightsRegistry, key string, perm func(int) int) error
}

// weightsEntry boxes a *Weights[T] so it can live in a registry keyed by
// string alongside Weights of other element types, while still exposing
// the IndexListener and weightsCopier hooks the registry needs for
// backfilling, unsubscription and migration.
type weightsEntry struct {
	container IndexListener
	copier    weightsCopier
	value     any // underlying *Weights[T]
}

// WeightsRegistry is the keyed collection of weight containers attached to
// one axis (vertices or edges) of a topology store. Each backend owns two
// — one for vertices, one for edges — and exposes them so the free
// generic functions AddWeights/GetWeights below can operate
// on them without the backend itself needing to be generic.
type WeightsRegistry struct {
	idx     *IndexSet
	entries map[string]weightsEntry
}

// NewWeightsRegistry returns a registry whose containers are backfilled
// against and kept in sync with idx.
func NewWeightsRegistry(idx *IndexSet) *WeightsRegistry {
	return &WeightsRegistry{idx: idx, entries: make(map[string]weightsEntry)}
}

// Has reports whether a container is registered under key.
func (r *WeightsRegistry) Has(key string) bool {
	_, ok := r.entries[key]

	return ok
}

// Keys returns the registered weight keys in no particular order.
func (r *WeightsRegistry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}

	return keys
}

// CopyInto attaches a fresh copy of every entry in r onto dst, under the
// same keys and with the same per-index values. dst must not already have
// containers registered under any of r's keys. Used when a builder or
// backend hands its staged/live weights to a newly constructed store that
// doesn't know the concrete element type of any individual key.
func (r *WeightsRegistry) CopyInto(dst *WeightsRegistry) error {
	return r.CopyIntoPermuted(dst, nil)
}

// CopyIntoPermuted behaves like CopyInto but remaps each source index i to
// perm(i) in dst, e.g. when dst's index space was produced by a CSR edge
// re-indexing permutation. perm == nil behaves exactly like CopyInto.
func (r *WeightsRegistry) CopyIntoPermuted(dst *WeightsRegistry, perm func(int) int) error {
	for key, entry := range r.entries {
		if err := entry.copier.copyInto(dst, key, perm); err != nil {
			return err
		}
	}

	return nil
}

// Remove detaches the container registered under key, if any, and
// unsubscribes it from the index set.
func (r *WeightsRegistry) Remove(key string) {
	entry, ok := r.entries[key]
	if !ok {
		return
	}
	r.idx.Unlisten(entry.container)
	delete(r.entries, key)
}

// AddWeights creates a new Weights[T] with the given default, backfills it
// to the registry's current size, subscribes it to future structural
// changes, and stores it under key. It returns ErrDuplicateWeightsKey if
// key is already in use.
func AddWeights[T any](r *WeightsRegistry, key string, def T) (*Weights[T], error) {
	if r.Has(key) {
		return nil, ErrDuplicateWeightsKey
	}
	w := NewWeights[T](def)
	for i := 0; i < r.idx.Size(); i++ {
		w.onAppend()
	}
	r.idx.Listen(w)
	r.entries[key] = weightsEntry{container: w, copier: w, value: w}

	return w, nil
}

// GetWeights retrieves the Weights[T] registered under key. It returns
// ErrUnknownWeightsKey if no container is registered, or a type error if
// one is registered under a different element type.
func GetWeights[T any](r *WeightsRegistry, key string) (*Weights[T], error) {
	entry, ok := r.entries[key]
	if !ok {
		return nil, ErrUnknownWeightsKey
	}
	w, ok := entry.value.(*Weights[T])
	if !ok {
		return nil, fmt.Errorf("core: weights key %q is not of the requested type", key)
	}

	return w, nil
}
