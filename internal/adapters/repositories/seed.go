package repositories

import (
	"bookings-report-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type PassengerSeed struct {
	BookingID   string  `json:"booking_id" db:"booking_id"`
	Origin      string  `json:"origin" db:"origin"`
	Destination string  `json:"destination" db:"destination"`
	SaleDayX    int     `json:"sale_day_x" db:"sale_day_x"`
	Price       float64 `json:"price" db:"price"`
}

// A service as stored in seed files: stations in itinerary order and the
// passenger manifest referencing them by name.
type ServiceSeed struct {
	Name          string          `json:"name"`
	DepartureDate string          `json:"departure_date"`
	Stations      []string        `json:"stations"`
	Passengers    []PassengerSeed `json:"passengers"`
	DemandMatrix  [][]int         `json:"demand_matrix,omitempty"`
}

// Read and validate service seeds from a JSON file.
func ReadSeeds(jsonPath string) ([]ServiceSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read seeds: read %q: %w", jsonPath, err)
	}

	var seeds []ServiceSeed
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, fmt.Errorf("read seeds: parse json: %w", err)
	}

	for i := range seeds {
		if err := seeds[i].normalize(); err != nil {
			return nil, fmt.Errorf("read seeds: service at index %d: %w", i+1, err)
		}
	}

	return seeds, nil
}

func (s *ServiceSeed) normalize() error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if _, err := time.Parse(dateLayout, s.DepartureDate); err != nil {
		return fmt.Errorf("service %s: departure_date %q: %w", s.Name, s.DepartureDate, err)
	}

	if len(s.Stations) < 2 {
		return fmt.Errorf("service %s: need at least 2 stations, got %d", s.Name, len(s.Stations))
	}
	seen := make(map[string]struct{}, len(s.Stations))
	for i, st := range s.Stations {
		st = strings.TrimSpace(st)
		if st == "" {
			return fmt.Errorf("service %s: station at index %d cannot be empty", s.Name, i+1)
		}
		if _, ok := seen[st]; ok {
			return fmt.Errorf("service %s: station %q listed twice", s.Name, st)
		}
		seen[st] = struct{}{}
		s.Stations[i] = st
	}

	for i := range s.Passengers {
		p := &s.Passengers[i]
		p.BookingID = strings.TrimSpace(p.BookingID)
		p.Origin = strings.TrimSpace(p.Origin)
		p.Destination = strings.TrimSpace(p.Destination)
		if p.Price < 0 {
			return fmt.Errorf("service %s: passenger at index %d: negative price %v", s.Name, i+1, p.Price)
		}
	}

	return nil
}

// BuildService turns a seed into a loaded domain service: itinerary first,
// then the manifest resolved against the itinerary's stations.
func BuildService(seed ServiceSeed) (*domain.Service, error) {
	departure, err := time.Parse(dateLayout, seed.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("build service %s: departure date: %w", seed.Name, err)
	}

	svc := domain.NewService(seed.Name, departure)
	svc.LoadItinerary(domain.NewStations(seed.Stations...))

	passengers := make([]*domain.Passenger, 0, len(seed.Passengers))
	for i, p := range seed.Passengers {
		origin := svc.Station(p.Origin)
		if origin == nil {
			return nil, fmt.Errorf("build service %s: passenger #%d origin %q: %w", seed.Name, i+1, p.Origin, domain.ErrStationNotInItinerary)
		}
		destination := svc.Station(p.Destination)
		if destination == nil {
			return nil, fmt.Errorf("build service %s: passenger #%d destination %q: %w", seed.Name, i+1, p.Destination, domain.ErrStationNotInItinerary)
		}

		passenger := domain.NewPassenger(origin, destination, p.SaleDayX, p.Price)
		passenger.ID = p.BookingID
		passengers = append(passengers, passenger)
	}

	if err := svc.LoadPassengerManifest(passengers); err != nil {
		return nil, fmt.Errorf("build service %s: %w", seed.Name, err)
	}

	return svc, nil
}
