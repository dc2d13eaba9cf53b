package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Initialize the database schema. Statements are portable between SQLite and
// Postgres.
func InitSchema(db *sqlx.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createServicesQuery := `
	CREATE TABLE IF NOT EXISTS services (
		name TEXT PRIMARY KEY,
		departure_date TEXT NOT NULL
	);
	`

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS service_stops (
		service_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		station_name TEXT NOT NULL,
		PRIMARY KEY (service_name, position)
	);
	`

	createPassengersQuery := `
	CREATE TABLE IF NOT EXISTS passengers (
		booking_id TEXT PRIMARY KEY,
		service_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		sale_day_x INTEGER NOT NULL,
		price DOUBLE PRECISION NOT NULL
	);
	`

	createDemandQuery := `
	CREATE TABLE IF NOT EXISTS demand_matrices (
		service_name TEXT PRIMARY KEY,
		matrix_json TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_passengers_service_position
	ON passengers(service_name, position);
	`

	statements := []string{
		createServicesQuery,
		createStopsQuery,
		createPassengersQuery,
		createDemandQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with services read from a JSON seed file.
// Seeding a service replaces its stops, manifest and demand matrix.
func SeedFromJSON(db *sqlx.DB, jsonPath string) error {
	seeds, err := ReadSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	return SeedServices(context.Background(), db, seeds)
}

func SeedServices(ctx context.Context, db *sqlx.DB, seeds []ServiceSeed) error {
	if db == nil {
		return errors.New("seed services: DB is nil")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed services: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range seeds {
		if err := seedService(ctx, tx, s); err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed services: commit tx: %w", err)
	}

	return nil
}

func seedService(ctx context.Context, tx *sqlx.Tx, s ServiceSeed) error {
	upsertService := tx.Rebind(`
	INSERT INTO services (name, departure_date)
	VALUES (?, ?)
	ON CONFLICT (name) DO UPDATE
	SET departure_date = EXCLUDED.departure_date;
	`)
	if _, err := tx.ExecContext(ctx, upsertService, s.Name, s.DepartureDate); err != nil {
		return fmt.Errorf("upsert service %s: %w", s.Name, err)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM service_stops WHERE service_name = ?;`), s.Name); err != nil {
		return fmt.Errorf("clear stops of %s: %w", s.Name, err)
	}

	insertStop := tx.Rebind(`
	INSERT INTO service_stops (service_name, position, station_name)
	VALUES (?, ?, ?);
	`)
	for i, station := range s.Stations {
		if _, err := tx.ExecContext(ctx, insertStop, s.Name, i, station); err != nil {
			return fmt.Errorf("insert stop %s #%d: %w", s.Name, i, err)
		}
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM passengers WHERE service_name = ?;`), s.Name); err != nil {
		return fmt.Errorf("clear manifest of %s: %w", s.Name, err)
	}
	if err := insertPassengers(ctx, tx, s.Name, 0, s.Passengers); err != nil {
		return err
	}

	if s.DemandMatrix != nil {
		raw, err := json.Marshal(s.DemandMatrix)
		if err != nil {
			return fmt.Errorf("encode demand matrix of %s: %w", s.Name, err)
		}

		upsertDemand := tx.Rebind(`
		INSERT INTO demand_matrices (service_name, matrix_json)
		VALUES (?, ?)
		ON CONFLICT (service_name) DO UPDATE
		SET matrix_json = EXCLUDED.matrix_json;
		`)
		if _, err := tx.ExecContext(ctx, upsertDemand, s.Name, string(raw)); err != nil {
			return fmt.Errorf("upsert demand matrix of %s: %w", s.Name, err)
		}
	}

	return nil
}

func insertPassengers(ctx context.Context, tx *sqlx.Tx, serviceName string, offset int, passengers []PassengerSeed) error {
	insert := tx.Rebind(`
	INSERT INTO passengers (booking_id, service_name, position, origin, destination, sale_day_x, price)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	for i, p := range passengers {
		id := p.BookingID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, insert, id, serviceName, offset+i, p.Origin, p.Destination, p.SaleDayX, p.Price); err != nil {
			return fmt.Errorf("insert passenger %s of %s: %w", id, serviceName, err)
		}
	}
	return nil
}

// ImportManifest appends passengers to the manifest of an existing service,
// after the bookings already stored.
func ImportManifest(ctx context.Context, db *sqlx.DB, serviceName string, passengers []PassengerSeed) error {
	if db == nil {
		return errors.New("import manifest: DB is nil")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import manifest: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	query := tx.Rebind(`SELECT COALESCE(MAX(position) + 1, 0) FROM passengers WHERE service_name = ?;`)
	if err := tx.GetContext(ctx, &next, query, serviceName); err != nil {
		return fmt.Errorf("import manifest: next position for %s: %w", serviceName, err)
	}

	if err := insertPassengers(ctx, tx, serviceName, next, passengers); err != nil {
		return fmt.Errorf("import manifest: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import manifest: commit tx: %w", err)
	}

	return nil
}
