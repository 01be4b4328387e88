package client

import "errors"

// ErrUnavailable marks transport-level failures: the server could not be
// reached at all, as opposed to the API rejecting the request.
var ErrUnavailable = errors.New("server unavailable")
