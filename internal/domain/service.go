package domain

import (
	"fmt"
	"slices"
	"time"
)

// Service is a single scheduled run (one train, flight or bus on one date)
// transporting passengers between two or more stops.
//
// A Service is identified by its name and departure date. Its legs describe
// the stops it makes; every pair of stops in itinerary order is an OD that a
// passenger can buy. Legs and ODs are owned by the Service and are only ever
// created through its methods.
//
// A Service is not safe for concurrent mutation.
type Service struct {
	Name          string
	DepartureDate time.Time

	legs []*Leg
	ods  []*OD

	// chain memoises the legs in stop order; cleared whenever legs change.
	chain     []*Leg
	itinerary []*Station
}

func NewService(name string, departureDate time.Time) *Service {
	return &Service{
		Name:          name,
		DepartureDate: departureDate,
	}
}

// Legs returns the service legs in the order they were added.
func (s *Service) Legs() []*Leg { return slices.Clone(s.legs) }

// ODs returns the service ODs in the order they were created.
func (s *Service) ODs() []*OD { return slices.Clone(s.ods) }

// DayX returns the number of whole days between the departure date and now.
// The value is negative before departure and zero on the departure day.
func (s *Service) DayX(now time.Time) int {
	return int(civilDate(now).Sub(civilDate(s.DepartureDate)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddLeg appends a single leg between two stations.
// Legs may be added in any order; Itinerary recovers the stop order.
func (s *Service) AddLeg(origin, destination *Station) *Leg {
	leg := &Leg{service: s, Origin: origin, Destination: destination}
	s.legs = append(s.legs, leg)
	s.chain, s.itinerary = nil, nil
	return leg
}

// LoadItinerary creates the legs and ODs of an ordered list of stations.
func (s *Service) LoadItinerary(stations []*Station) {
	s.LoadLegs(stations)
	s.LoadODs(stations)
}

// Create one leg per pair of consecutive stations.
func (s *Service) LoadLegs(stations []*Station) {
	for i := 0; i+1 < len(stations); i++ {
		s.AddLeg(stations[i], stations[i+1])
	}
}

// Create one OD per pair of stations, origin always before destination.
// ODs are ordered by origin position, then destination position.
func (s *Service) LoadODs(stations []*Station) {
	for i := 0; i < len(stations); i++ {
		for j := i + 1; j < len(stations); j++ {
			s.ods = append(s.ods, &OD{
				service:     s,
				Origin:      stations[i],
				Destination: stations[j],
			})
		}
	}
}

// Itinerary returns the ordered list of stations where the service stops.
//
// The chain is rebuilt from the legs: the first station is the only origin
// that never appears as a destination, the last station the only destination
// that never appears as an origin. Leg sets that are not a single simple chain
// yield ErrMalformedItinerary.
func (s *Service) Itinerary() ([]*Station, error) {
	if err := s.buildChain(); err != nil {
		return nil, err
	}
	return slices.Clone(s.itinerary), nil
}

// ChainedLegs returns the legs in itinerary order, whatever order they were added in.
func (s *Service) ChainedLegs() ([]*Leg, error) {
	if err := s.buildChain(); err != nil {
		return nil, err
	}
	return slices.Clone(s.chain), nil
}

func (s *Service) buildChain() error {
	if s.itinerary != nil {
		return nil
	}
	if len(s.legs) == 0 {
		s.chain, s.itinerary = []*Leg{}, []*Station{}
		return nil
	}

	occurrences := make(map[*Station]int, len(s.legs)+1)
	connections := make(map[*Station]*Leg, len(s.legs))
	for _, leg := range s.legs {
		occurrences[leg.Origin]++
		occurrences[leg.Destination]++
		connections[leg.Origin] = leg
	}

	var departure, arrival *Station
	for _, leg := range s.legs {
		if departure == nil && occurrences[leg.Origin] == 1 {
			departure = leg.Origin
		}
		if arrival == nil && occurrences[leg.Destination] == 1 {
			arrival = leg.Destination
		}
	}
	if departure == nil || arrival == nil {
		return fmt.Errorf("itinerary: service %s: no terminal station: %w", s.Name, ErrMalformedItinerary)
	}

	itinerary := make([]*Station, 0, len(s.legs)+1)
	chain := make([]*Leg, 0, len(s.legs))
	current := departure
	for {
		itinerary = append(itinerary, current)
		if current == arrival {
			break
		}
		// A simple chain visits len(legs)+1 stations at most.
		if len(itinerary) > len(s.legs) {
			return fmt.Errorf("itinerary: service %s: cycle after %s: %w", s.Name, current, ErrMalformedItinerary)
		}
		leg, ok := connections[current]
		if !ok {
			return fmt.Errorf("itinerary: service %s: dead end at %s: %w", s.Name, current, ErrMalformedItinerary)
		}
		chain = append(chain, leg)
		current = leg.Destination
	}

	if len(chain) != len(s.legs) {
		return fmt.Errorf(
			"itinerary: service %s: chain covers %d of %d legs: %w",
			s.Name, len(chain), len(s.legs), ErrMalformedItinerary,
		)
	}

	s.chain, s.itinerary = chain, itinerary
	return nil
}

// Station returns the itinerary station with the given name, or nil.
func (s *Service) Station(name string) *Station {
	for _, leg := range s.legs {
		if leg.Origin.Name == name {
			return leg.Origin
		}
		if leg.Destination.Name == name {
			return leg.Destination
		}
	}
	return nil
}

// OD returns the OD between two stations, or nil when the service does not sell it.
func (s *Service) OD(origin, destination *Station) *OD {
	for _, od := range s.ods {
		if od.Origin == origin && od.Destination == destination {
			return od
		}
	}
	return nil
}

// Leg returns the leg between two consecutive stations, or nil.
func (s *Service) Leg(origin, destination *Station) *Leg {
	for _, leg := range s.legs {
		if leg.Origin == origin && leg.Destination == destination {
			return leg
		}
	}
	return nil
}

type odKey struct {
	origin      *Station
	destination *Station
}

// LoadPassengerManifest allocates bookings across ODs.
//
// Every passenger is appended to the OD with the same origin and destination,
// keeping manifest order within each OD. A passenger without a matching OD
// fails the whole call with ErrNoMatchingOD and leaves the ODs untouched.
func (s *Service) LoadPassengerManifest(passengers []*Passenger) error {
	byPair := make(map[odKey]*OD, len(s.ods))
	for _, od := range s.ods {
		byPair[odKey{od.Origin, od.Destination}] = od
	}

	targets := make([]*OD, len(passengers))
	for i, p := range passengers {
		od, ok := byPair[odKey{p.Origin, p.Destination}]
		if !ok {
			return fmt.Errorf(
				"load passenger manifest: service %s: passenger #%d %s -> %s: %w",
				s.Name, i+1, p.Origin, p.Destination, ErrNoMatchingOD,
			)
		}
		targets[i] = od
	}

	for i, p := range passengers {
		targets[i].Passengers = append(targets[i].Passengers, p)
	}

	return nil
}
