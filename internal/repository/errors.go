// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// application service and handlers to distinguish between different
// failure scenarios: a registration that collides with an existing
// username, an intake referencing an unknown donor, an item lookup
// that finds nothing. Anything that is not one of these sentinels is
// an underlying store failure and propagates as-is.
package repository

import "errors"

// ErrNotFound is returned when a referenced record (user, donor, item,
// order, donation) does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateUser is returned when registration is attempted with a
// username that already exists.
var ErrDuplicateUser = errors.New("username already exists")

// ErrDuplicateDonor is returned when a donor is registered with an
// identifier that already exists.
var ErrDuplicateDonor = errors.New("donor already exists")
