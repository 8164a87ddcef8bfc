package idmap

import "errors"

// ErrUnknownID indicates IDToIndex was called with an id that has no
// associated live index.
var ErrUnknownID = errors.New("idmap: unknown id")

// ErrDuplicateID indicates Reassign was asked to bind an id already bound
// to a different live index.
var ErrDuplicateID = errors.New("idmap: id already bound to another index")
