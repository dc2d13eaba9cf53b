package repositories

import (
	"bookings-report-service/internal/domain"
	"bookings-report-service/internal/platform/obs"
	"bookings-report-service/internal/ports"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// SQL-backed implementation of the ServiceRepository and DemandMatrixProvider
// ports. Queries are written with '?' and rebound for the connected driver.
type SQLServiceRepository struct {
	DB  *sqlx.DB
	Log logrus.FieldLogger
}

func NewSQLServiceRepository(db *sqlx.DB, log logrus.FieldLogger) *SQLServiceRepository {
	return &SQLServiceRepository{DB: db, Log: log}
}

func (s *SQLServiceRepository) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

// Return the names of all stored services.
func (s *SQLServiceRepository) ListServiceNames(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sql service repository: DB is nil")
	}

	names := make([]string, 0, 16)
	if err := s.DB.SelectContext(ctx, &names, `SELECT name FROM services ORDER BY name;`); err != nil {
		return nil, fmt.Errorf("list services: query services table: %w", err)
	}

	return names, nil
}

// Load a service, its stops and its manifest, and rebuild the domain model.
func (s *SQLServiceRepository) GetService(ctx context.Context, name string) (_ *domain.Service, err error) {
	defer obs.Time(ctx, s.logger(), "repository.GetService")(&err)

	if s.DB == nil {
		return nil, errors.New("sql service repository: DB is nil")
	}

	seed := ServiceSeed{Name: name}

	query := s.DB.Rebind(`SELECT departure_date FROM services WHERE name = ?;`)
	if err := s.DB.GetContext(ctx, &seed.DepartureDate, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get service %q: %w", name, ports.ErrServiceNotFound)
		}
		return nil, fmt.Errorf("get service %q: query services table: %w", name, err)
	}

	query = s.DB.Rebind(`
	SELECT station_name
	FROM service_stops
	WHERE service_name = ?
	ORDER BY position;
	`)
	if err := s.DB.SelectContext(ctx, &seed.Stations, query, name); err != nil {
		return nil, fmt.Errorf("get service %q: query service_stops table: %w", name, err)
	}

	query = s.DB.Rebind(`
	SELECT
		booking_id,
		origin,
		destination,
		sale_day_x,
		price
	FROM passengers
	WHERE service_name = ?
	ORDER BY position;
	`)
	if err := s.DB.SelectContext(ctx, &seed.Passengers, query, name); err != nil {
		return nil, fmt.Errorf("get service %q: query passengers table: %w", name, err)
	}

	svc, err := BuildService(seed)
	if err != nil {
		return nil, fmt.Errorf("get service %q: %w", name, err)
	}

	return svc, nil
}

// Return the stored demand matrix of a service.
func (s *SQLServiceRepository) GetDemandMatrix(ctx context.Context, serviceName string) ([][]int, error) {
	if s.DB == nil {
		return nil, errors.New("sql service repository: DB is nil")
	}

	var raw string
	query := s.DB.Rebind(`SELECT matrix_json FROM demand_matrices WHERE service_name = ?;`)
	if err := s.DB.GetContext(ctx, &raw, query, serviceName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get demand matrix %q: %w", serviceName, ports.ErrDemandMatrixNotFound)
		}
		return nil, fmt.Errorf("get demand matrix %q: query demand_matrices table: %w", serviceName, err)
	}

	var matrix [][]int
	if err := json.Unmarshal([]byte(raw), &matrix); err != nil {
		return nil, fmt.Errorf("get demand matrix %q: decode: %w", serviceName, err)
	}

	return matrix, nil
}
