package service

import "errors"

// ErrInvalidInput rejects a request before any remote call is made:
// missing, oversized, or non-image files, or an out-of-bounds batch.
var ErrInvalidInput = errors.New("invalid input")

// ErrUpstream indicates the media store or the metadata repository
// failed. It is never retried here; the caller decides what to do.
var ErrUpstream = errors.New("upstream failure")
