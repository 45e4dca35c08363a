package source

import "errors"

// ErrTransport is returned when the index page cannot be fetched, either
// because the request failed or because the server answered with an error
// status.
var ErrTransport = errors.New("failed to fetch index page")
