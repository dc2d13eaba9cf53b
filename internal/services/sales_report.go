package services

import (
	"bookings-report-service/internal/domain"
	"errors"
	"fmt"
	"time"
)

// BuildSalesReport summarises the bookings of a loaded service.
//
// Legs are reported in itinerary order with the passengers occupying them;
// ODs are reported in creation order with their cumulative sales history.
func BuildSalesReport(svc *domain.Service, now time.Time) (*domain.SalesReport, error) {
	if svc == nil {
		return nil, errors.New("build sales report: service must be non-nil")
	}

	itinerary, err := svc.Itinerary()
	if err != nil {
		return nil, fmt.Errorf("build sales report: %w", err)
	}
	legs, err := svc.ChainedLegs()
	if err != nil {
		return nil, fmt.Errorf("build sales report: %w", err)
	}

	report := &domain.SalesReport{
		ServiceName:   svc.Name,
		DepartureDate: svc.DepartureDate,
		DayX:          svc.DayX(now),
		Itinerary:     make([]string, 0, len(itinerary)),
		Legs:          make([]domain.LegReport, 0, len(legs)),
		ODs:           make([]domain.ODReport, 0, len(svc.ODs())),
	}

	for _, s := range itinerary {
		report.Itinerary = append(report.Itinerary, s.Name)
	}

	for _, leg := range legs {
		passengers, err := leg.Passengers()
		if err != nil {
			return nil, fmt.Errorf("build sales report: %w", err)
		}

		report.Legs = append(report.Legs, domain.LegReport{
			Origin:      leg.Origin.Name,
			Destination: leg.Destination.Name,
			Passengers:  len(passengers),
			Revenue:     revenue(passengers),
		})
	}

	for _, od := range svc.ODs() {
		report.ODs = append(report.ODs, domain.ODReport{
			Origin:      od.Origin.Name,
			Destination: od.Destination.Name,
			Bookings:    len(od.Passengers),
			Revenue:     revenue(od.Passengers),
			History:     od.History(),
		})
	}

	return report, nil
}

func revenue(passengers []*domain.Passenger) float64 {
	total := 0.0
	for _, p := range passengers {
		total += p.Price
	}
	return total
}
