package domain

import (
	"fmt"
	"slices"
)

// An Origin-Destination (OD) is the trip between two stops bought by a passenger.
// A service whose itinerary is A-B-C-D sells up to six ODs: A-B, A-C, A-D,
// B-C, B-D and C-D.
type OD struct {
	service     *Service
	Origin      *Station
	Destination *Station
	Passengers  []*Passenger
}

// One row of the OD sales history. Bookings and Revenue are cumulative up to
// and including DayX.
type HistoryPoint struct {
	DayX     int
	Bookings int
	Revenue  float64
}

func (od *OD) Service() *Service { return od.service }

// Legs returns the legs crossed by this OD, in itinerary order.
func (od *OD) Legs() ([]*Leg, error) {
	itinerary, err := od.service.Itinerary()
	if err != nil {
		return nil, fmt.Errorf("od %s -> %s legs: %w", od.Origin, od.Destination, err)
	}

	originIndex := slices.Index(itinerary, od.Origin)
	if originIndex < 0 {
		return nil, fmt.Errorf("od legs: origin %s: %w", od.Origin, ErrStationNotInItinerary)
	}
	destinationIndex := slices.Index(itinerary, od.Destination)
	if destinationIndex < 0 {
		return nil, fmt.Errorf("od legs: destination %s: %w", od.Destination, ErrStationNotInItinerary)
	}

	if destinationIndex < originIndex {
		return nil, fmt.Errorf("od legs: %s precedes %s: %w", od.Destination, od.Origin, ErrReversedOD)
	}

	chain, err := od.service.ChainedLegs()
	if err != nil {
		return nil, fmt.Errorf("od %s -> %s legs: %w", od.Origin, od.Destination, err)
	}
	return chain[originIndex:destinationIndex], nil
}

// History reports sales made each day: one point per sale day with at least
// one booking, sorted by day, with cumulative bookings and revenue.
func (od *OD) History() []HistoryPoint {
	byDay := make(map[int]*HistoryPoint)
	for _, p := range od.Passengers {
		point, ok := byDay[p.SaleDayX]
		if !ok {
			point = &HistoryPoint{DayX: p.SaleDayX}
			byDay[p.SaleDayX] = point
		}
		point.Bookings++
		point.Revenue += p.Price
	}

	history := make([]HistoryPoint, 0, len(byDay))
	for _, point := range byDay {
		history = append(history, *point)
	}
	slices.SortFunc(history, func(a, b HistoryPoint) int { return a.DayX - b.DayX })

	for i := 1; i < len(history); i++ {
		history[i].Bookings += history[i-1].Bookings
		history[i].Revenue += history[i-1].Revenue
	}

	return history
}
