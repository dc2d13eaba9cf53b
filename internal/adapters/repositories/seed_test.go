package repositories

import (
	"bookings-report-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parisMarseilleSeed() ServiceSeed {
	return ServiceSeed{
		Name:          "7601",
		DepartureDate: "2026-01-08",
		Stations:      []string{"ply", "lpd", "msc"},
		Passengers: []PassengerSeed{
			{BookingID: "B1", Origin: "ply", Destination: "lpd", SaleDayX: -30, Price: 20},
			{BookingID: "B2", Origin: "ply", Destination: "lpd", SaleDayX: -25, Price: 30},
			{BookingID: "B3", Origin: "ply", Destination: "lpd", SaleDayX: -20, Price: 40},
			{BookingID: "B4", Origin: "ply", Destination: "lpd", SaleDayX: -20, Price: 40},
			{BookingID: "B5", Origin: "ply", Destination: "msc", SaleDayX: -10, Price: 50},
		},
		DemandMatrix: [][]int{{1, 1, 8}, {3, 2, 1}},
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSeeds(t *testing.T) {
	path := writeFile(t, `[
		{
			"name": " 7601 ",
			"departure_date": "2026-01-08",
			"stations": ["ply", " lpd", "msc"],
			"passengers": [{"origin": "ply", "destination": "lpd", "sale_day_x": -30, "price": 20}],
			"demand_matrix": [[1, 2], [3, 4]]
		}
	]`)

	seeds, err := ReadSeeds(path)
	require.NoError(t, err)
	require.Len(t, seeds, 1)

	assert.Equal(t, "7601", seeds[0].Name)
	assert.Equal(t, []string{"ply", "lpd", "msc"}, seeds[0].Stations)
	assert.Equal(t, -30, seeds[0].Passengers[0].SaleDayX)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, seeds[0].DemandMatrix)
}

func TestReadSeedsInvalid(t *testing.T) {
	tests := map[string]string{
		"not json":         `{`,
		"empty name":       `[{"name": " ", "departure_date": "2026-01-08", "stations": ["a", "b"]}]`,
		"bad date":         `[{"name": "x", "departure_date": "08/01/2026", "stations": ["a", "b"]}]`,
		"one station":      `[{"name": "x", "departure_date": "2026-01-08", "stations": ["a"]}]`,
		"repeated station": `[{"name": "x", "departure_date": "2026-01-08", "stations": ["a", "b", "a"]}]`,
		"negative price":   `[{"name": "x", "departure_date": "2026-01-08", "stations": ["a", "b"], "passengers": [{"origin": "a", "destination": "b", "sale_day_x": -1, "price": -5}]}]`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadSeeds(writeFile(t, content))
			assert.Error(t, err)
		})
	}

	_, err := ReadSeeds(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestBuildService(t *testing.T) {
	svc, err := BuildService(parisMarseilleSeed())
	require.NoError(t, err)

	assert.Equal(t, "7601", svc.Name)
	assert.Equal(t, 2026, svc.DepartureDate.Year())
	require.Len(t, svc.Legs(), 2)
	require.Len(t, svc.ODs(), 3)

	ply, lpd := svc.Station("ply"), svc.Station("lpd")
	od := svc.OD(ply, lpd)
	require.NotNil(t, od)
	require.Len(t, od.Passengers, 4)
	assert.Equal(t, "B1", od.Passengers[0].ID)
	assert.Same(t, ply, od.Passengers[0].Origin)
}

func TestBuildServiceUnknownStation(t *testing.T) {
	seed := parisMarseilleSeed()
	seed.Passengers = append(seed.Passengers, PassengerSeed{Origin: "ply", Destination: "nce", SaleDayX: -1, Price: 10})

	_, err := BuildService(seed)
	assert.ErrorIs(t, err, domain.ErrStationNotInItinerary)
}

func TestBuildServiceReversedPassenger(t *testing.T) {
	seed := parisMarseilleSeed()
	seed.Passengers = append(seed.Passengers, PassengerSeed{Origin: "msc", Destination: "ply", SaleDayX: -1, Price: 10})

	_, err := BuildService(seed)
	assert.ErrorIs(t, err, domain.ErrNoMatchingOD)
}
