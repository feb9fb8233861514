package metadata

import "errors"

// ErrNotFound indicates that no image record exists for the given id.
var ErrNotFound = errors.New("image not found")
