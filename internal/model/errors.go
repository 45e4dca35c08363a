package model

import "errors"

var (
	// ErrEmptyList is returned when a NonEmpty is built from no items.
	ErrEmptyList = errors.New("list must contain at least one item")

	// ErrNoDeliverers is returned when an Entry is built without any
	// working group credited for it.
	ErrNoDeliverers = errors.New("entry has no deliverers")

	// ErrUnknownStatus is returned when a maturity label is not part of
	// the known vocabulary. The vocabulary is closed, so an unknown value
	// means the index page format changed.
	ErrUnknownStatus = errors.New("unknown maturity status")
)
