package extract

import "errors"

// ErrMalformedEntry is returned when an index item lacks the header
// anchor that carries its title.
var ErrMalformedEntry = errors.New("malformed index entry")
