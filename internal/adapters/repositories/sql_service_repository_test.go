package repositories

import (
	"bookings-report-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepositoryTest(t *testing.T) (*SQLServiceRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, _ := test.NewNullLogger()
	repo := NewSQLServiceRepository(sqlx.NewDb(db, "sqlmock"), log)

	return repo, mock
}

func TestSQLServiceRepositoryListServiceNames(t *testing.T) {
	repo, mock := setupRepositoryTest(t)

	mock.ExpectQuery("SELECT name FROM services ORDER BY name").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("6100").AddRow("7601"))

	names, err := repo.ListServiceNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"6100", "7601"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLServiceRepositoryGetService(t *testing.T) {
	repo, mock := setupRepositoryTest(t)

	mock.ExpectQuery("SELECT departure_date FROM services").
		WithArgs("7601").
		WillReturnRows(sqlmock.NewRows([]string{"departure_date"}).AddRow("2026-01-08"))

	mock.ExpectQuery("SELECT station_name\\s+FROM service_stops").
		WithArgs("7601").
		WillReturnRows(sqlmock.NewRows([]string{"station_name"}).
			AddRow("ply").
			AddRow("lpd").
			AddRow("msc"))

	mock.ExpectQuery("FROM passengers").
		WithArgs("7601").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "origin", "destination", "sale_day_x", "price"}).
			AddRow("B1", "ply", "lpd", -30, 20.0).
			AddRow("B2", "ply", "lpd", -25, 30.0).
			AddRow("B3", "ply", "lpd", -20, 40.0).
			AddRow("B4", "ply", "lpd", -20, 40.0).
			AddRow("B5", "ply", "msc", -10, 50.0))

	svc, err := repo.GetService(context.Background(), "7601")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	itinerary, err := svc.Itinerary()
	require.NoError(t, err)
	require.Len(t, itinerary, 3)
	assert.Equal(t, "ply", itinerary[0].Name)
	assert.Equal(t, "msc", itinerary[2].Name)

	od := svc.OD(svc.Station("ply"), svc.Station("lpd"))
	require.Len(t, od.Passengers, 4)
	assert.Equal(t, "B4", od.Passengers[3].ID)

	passengers, err := svc.Leg(svc.Station("ply"), svc.Station("lpd")).Passengers()
	require.NoError(t, err)
	assert.Len(t, passengers, 5)
}

func TestSQLServiceRepositoryGetServiceNotFound(t *testing.T) {
	repo, mock := setupRepositoryTest(t)

	mock.ExpectQuery("SELECT departure_date FROM services").
		WithArgs("9999").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetService(context.Background(), "9999")
	assert.ErrorIs(t, err, ports.ErrServiceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLServiceRepositoryGetServiceDatabaseError(t *testing.T) {
	repo, mock := setupRepositoryTest(t)

	mock.ExpectQuery("SELECT departure_date FROM services").
		WithArgs("7601").
		WillReturnRows(sqlmock.NewRows([]string{"departure_date"}).AddRow("2026-01-08"))
	mock.ExpectQuery("FROM service_stops").
		WithArgs("7601").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetService(context.Background(), "7601")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrServiceNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestSQLServiceRepositoryGetDemandMatrix(t *testing.T) {
	repo, mock := setupRepositoryTest(t)

	mock.ExpectQuery("SELECT matrix_json FROM demand_matrices").
		WithArgs("7601").
		WillReturnRows(sqlmock.NewRows([]string{"matrix_json"}).AddRow("[[1,1,8],[3,2,1]]"))
	mock.ExpectQuery("SELECT matrix_json FROM demand_matrices").
		WithArgs("6100").
		WillReturnError(sql.ErrNoRows)

	matrix, err := repo.GetDemandMatrix(context.Background(), "7601")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1, 8}, {3, 2, 1}}, matrix)

	_, err = repo.GetDemandMatrix(context.Background(), "6100")
	assert.ErrorIs(t, err, ports.ErrDemandMatrixNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
