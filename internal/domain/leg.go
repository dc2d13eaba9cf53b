package domain

import (
	"fmt"
	"slices"
)

// A leg is a set of two consecutive stops.
// A service whose itinerary is A-B-C-D has three legs: A-B, B-C and C-D.
type Leg struct {
	service     *Service
	Origin      *Station
	Destination *Station
}

func (l *Leg) Service() *Service { return l.service }

// Passengers returns every passenger occupying a seat on this leg, that is
// the passengers of all ODs crossing it. Each passenger appears once.
func (l *Leg) Passengers() ([]*Passenger, error) {
	seen := make(map[*Passenger]struct{})
	passengers := make([]*Passenger, 0)

	for _, od := range l.service.ods {
		legs, err := od.Legs()
		if err != nil {
			return nil, fmt.Errorf("leg %s -> %s passengers: %w", l.Origin, l.Destination, err)
		}
		if !slices.Contains(legs, l) {
			continue
		}

		for _, p := range od.Passengers {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			passengers = append(passengers, p)
		}
	}

	return passengers, nil
}
