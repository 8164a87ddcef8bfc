package csr

import "errors"

// ErrReindexUndirected indicates Build was asked to re-index edges on an
// undirected source. Edge re-indexing only has meaning for directed
// adjacency, where it groups outEdges by source; an undirected incident
// list already has no canonical per-source grouping to normalize.
var ErrReindexUndirected = errors.New("csr: edge re-indexing requires a directed source")
