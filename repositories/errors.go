package repositories

import "errors"

// ErrNotFound is returned when a requested document does not exist.
// Services decide per operation whether that is a failure or a no-op.
var ErrNotFound = errors.New("document not found")
