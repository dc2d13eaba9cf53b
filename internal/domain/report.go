package domain

import "time"

// Passenger load carried on a single leg.
type LegReport struct {
	Origin      string
	Destination string
	Passengers  int
	Revenue     float64
}

// Sales on a single OD, with its cumulative daily history.
type ODReport struct {
	Origin      string
	Destination string
	Bookings    int
	Revenue     float64
	History     []HistoryPoint
}

// Represents the sales report of one service.
// It is immutable reporting data derived from the service at a point in time.
type SalesReport struct {
	ServiceName   string
	DepartureDate time.Time
	DayX          int
	Itinerary     []string
	Legs          []LegReport
	ODs           []ODReport
}
