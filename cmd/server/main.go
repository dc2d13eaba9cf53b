package main

import (
	"bookings-report-service/internal/adapters/repositories"
	"bookings-report-service/internal/api"
	"bookings-report-service/internal/config"
	"bookings-report-service/internal/platform/db"
	"bookings-report-service/internal/platform/logging"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQL repository behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Info("No .env file found (using environment variables)")
	}

	conn, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if cfg.DBDriver == "sqlite" {
		if err := repositories.InitSchema(conn); err != nil {
			log.WithError(err).Fatal("init schema")
		}
		if err := repositories.SeedFromJSON(conn, cfg.SeedPath); err != nil {
			log.WithError(err).Fatal("seed services")
		}
	}

	repo := repositories.NewSQLServiceRepository(conn, log)
	router := api.NewRouter(repo, repo, log, time.Now)

	log.WithField("addr", ":"+cfg.Port).Info("Server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
