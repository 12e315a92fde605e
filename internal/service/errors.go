// Package service implements the application service: authentication,
// session tracking, donation intake, the order lifecycle and lookups.
// Every mutating operation runs in a single store transaction so it
// either fully applies or fully reports failure. Failures are typed
// sentinel errors; the service never prints and never panics on a
// recoverable condition.
package service

import "errors"

// ErrAuthenticationFailed is returned on bad credentials. A wrong
// username and a wrong password are indistinguishable to the caller.
var ErrAuthenticationFailed = errors.New("invalid username or password")

// ErrAuthenticationRequired is returned when an operation needs an
// authenticated session and none was supplied.
var ErrAuthenticationRequired = errors.New("authentication required")

// ErrNotAuthorized is returned when the session's role is insufficient
// for a privileged action.
var ErrNotAuthorized = errors.New("not authorized")

// ErrNoActiveOrder is returned by AddToOrder when the session has no
// order in progress.
var ErrNoActiveOrder = errors.New("no active order")

// ErrItemUnavailable is returned when an item added to an order is
// missing or not in the available status.
var ErrItemUnavailable = errors.New("item not available")
