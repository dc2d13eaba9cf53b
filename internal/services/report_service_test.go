package services

import (
	"bookings-report-service/internal/adapters/repositories"
	"bookings-report-service/internal/domain"
	"bookings-report-service/internal/ports"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository() *repositories.MemoryServiceRepository {
	return repositories.NewMemoryServiceRepository([]repositories.ServiceSeed{
		{
			Name:          "7601",
			DepartureDate: "2026-01-08",
			Stations:      []string{"ply", "lpd", "msc"},
			Passengers: []repositories.PassengerSeed{
				{Origin: "ply", Destination: "lpd", SaleDayX: -30, Price: 20},
				{Origin: "ply", Destination: "msc", SaleDayX: -10, Price: 50},
			},
			DemandMatrix: [][]int{{1, 2, 3}, {3, 4, 5}},
		},
		{
			Name:          "6100",
			DepartureDate: "2026-02-01",
			Stations:      []string{"a", "b"},
			DemandMatrix:  [][]int{{1, 2}, {3}},
		},
	})
}

func TestGenerateSalesReport(t *testing.T) {
	log, _ := test.NewNullLogger()

	report, err := GenerateSalesReport(context.Background(), log, newRepository(), " 7601 ", time.Date(2026, 1, 8, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0, report.DayX)
	assert.Equal(t, 2, report.Legs[0].Passengers)
	assert.Equal(t, 1, report.Legs[1].Passengers)
}

func TestGenerateSalesReportErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	repo := newRepository()

	_, err := GenerateSalesReport(context.Background(), log, repo, "", time.Now())
	assert.Error(t, err)

	_, err = GenerateSalesReport(context.Background(), log, repo, "9999", time.Now())
	assert.ErrorIs(t, err, ports.ErrServiceNotFound)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "report.Generate", hook.LastEntry().Data["op"])
}

func TestPlanDemandPath(t *testing.T) {
	log, _ := test.NewNullLogger()

	path, err := PlanDemandPath(context.Background(), log, newRepository(), "7601")
	require.NoError(t, err)

	assert.Equal(t, &domain.DemandPath{
		ServiceName: "7601",
		TotalValue:  13,
		Path:        []domain.GridCell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	}, path)
}

func TestPlanDemandPathErrors(t *testing.T) {
	log, _ := test.NewNullLogger()
	repo := newRepository()

	_, err := PlanDemandPath(context.Background(), log, repo, "6100")
	assert.ErrorIs(t, err, ErrInvalidMatrix)

	_, err = PlanDemandPath(context.Background(), log, repo, "9999")
	assert.ErrorIs(t, err, ports.ErrServiceNotFound)

	_, err = PlanDemandPath(context.Background(), log, repo, " ")
	assert.Error(t, err)
}
