package domain

import "errors"

var (
	ErrNoMatchingOD          = errors.New("no matching OD")
	ErrStationNotInItinerary = errors.New("station not in itinerary")
	ErrMalformedItinerary    = errors.New("legs do not form a single chain")
	ErrReversedOD            = errors.New("od destination precedes origin")
)
