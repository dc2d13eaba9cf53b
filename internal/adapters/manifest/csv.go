// Package manifest reads passenger manifests exported by inventory systems.
package manifest

import (
	"bookings-report-service/internal/adapters/repositories"
	"bookings-report-service/internal/domain"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// One booking line of a CSV manifest.
type Row struct {
	BookingID   string  `csv:"booking_id"`
	Origin      string  `csv:"origin"`
	Destination string  `csv:"destination"`
	SaleDayX    int     `csv:"sale_day_x"`
	Price       float64 `csv:"price"`
}

// ReadCSV parses a manifest with the header
// booking_id,origin,destination,sale_day_x,price.
// The booking_id column may be blank.
func ReadCSV(r io.Reader) ([]Row, error) {
	var rows []Row

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	for i := range rows {
		rows[i].BookingID = strings.TrimSpace(rows[i].BookingID)
		rows[i].Origin = strings.TrimSpace(rows[i].Origin)
		rows[i].Destination = strings.TrimSpace(rows[i].Destination)
		if rows[i].Price < 0 {
			return nil, fmt.Errorf("read manifest: line %d: negative price %v", i+2, rows[i].Price)
		}
	}

	return rows, nil
}

// Resolve maps manifest rows onto the stations of svc. Rows without a
// booking reference get a generated one.
func Resolve(rows []Row, svc *domain.Service) ([]*domain.Passenger, error) {
	passengers := make([]*domain.Passenger, 0, len(rows))
	for i, r := range rows {
		origin := svc.Station(r.Origin)
		if origin == nil {
			return nil, fmt.Errorf("resolve manifest: line %d origin %q: %w", i+2, r.Origin, domain.ErrStationNotInItinerary)
		}
		destination := svc.Station(r.Destination)
		if destination == nil {
			return nil, fmt.Errorf("resolve manifest: line %d destination %q: %w", i+2, r.Destination, domain.ErrStationNotInItinerary)
		}

		p := domain.NewPassenger(origin, destination, r.SaleDayX, r.Price)
		p.ID = r.BookingID
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		passengers = append(passengers, p)
	}

	return passengers, nil
}

// Seeds converts rows into repository passenger seeds for persistence.
func Seeds(rows []Row) []repositories.PassengerSeed {
	seeds := make([]repositories.PassengerSeed, 0, len(rows))
	for _, r := range rows {
		seeds = append(seeds, repositories.PassengerSeed{
			BookingID:   r.BookingID,
			Origin:      r.Origin,
			Destination: r.Destination,
			SaleDayX:    r.SaleDayX,
			Price:       r.Price,
		})
	}
	return seeds
}
