package main

import (
	"bookings-report-service/internal/adapters/manifest"
	"bookings-report-service/internal/adapters/repositories"
	"bookings-report-service/internal/config"
	"bookings-report-service/internal/platform/db"
	"bookings-report-service/internal/platform/logging"
	"context"
	"flag"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Info("No .env file found (using environment variables)")
	}

	seedPath := flag.String("seed", cfg.SeedPath, "JSON seed file with services")
	manifestPath := flag.String("manifest", "", "CSV manifest to append to -service")
	serviceName := flag.String("service", "", "service receiving the -manifest bookings")
	flag.Parse()

	conn, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer conn.Close()

	log.Info("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.WithError(err).Fatal("schema initialization failed")
	}
	log.Info("Schema ready.")

	if *seedPath != "" {
		log.WithField("seed", *seedPath).Info("Seeding database...")
		if err := repositories.SeedFromJSON(conn, *seedPath); err != nil {
			log.WithError(err).Fatal("seeding failed")
		}
		log.Info("Seeding complete.")
	}

	if *manifestPath != "" {
		if *serviceName == "" {
			log.Fatal("-service is required with -manifest")
		}
		if err := importManifest(context.Background(), log, conn, *serviceName, *manifestPath); err != nil {
			log.WithError(err).Fatal("manifest import failed")
		}
	}
}

func importManifest(ctx context.Context, log logrus.FieldLogger, conn *sqlx.DB, serviceName, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := manifest.ReadCSV(f)
	if err != nil {
		return err
	}

	// Check the bookings against the stored itinerary before writing them.
	repo := repositories.NewSQLServiceRepository(conn, log)
	svc, err := repo.GetService(ctx, serviceName)
	if err != nil {
		return err
	}
	passengers, err := manifest.Resolve(rows, svc)
	if err != nil {
		return err
	}
	if err := svc.LoadPassengerManifest(passengers); err != nil {
		return err
	}

	if err := repositories.ImportManifest(ctx, conn, serviceName, manifest.Seeds(rows)); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"service": serviceName, "bookings": len(rows)}).Info("Manifest imported.")
	return nil
}
