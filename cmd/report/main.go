package main

import (
	"bookings-report-service/internal/adapters/demand"
	"bookings-report-service/internal/adapters/manifest"
	"bookings-report-service/internal/adapters/repositories"
	"bookings-report-service/internal/api/dto"
	"bookings-report-service/internal/config"
	"bookings-report-service/internal/platform/logging"
	"bookings-report-service/internal/services"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logging.New(config.Get("LOG_LEVEL", "warn"), config.Get("LOG_FORMAT", "text"))
	log.SetOutput(os.Stderr)

	if err := newApp(os.Stdout, os.Stdin, log).Run(os.Args); err != nil {
		log.WithError(err).Fatal("report failed")
	}
}

func newApp(out io.Writer, in io.Reader, log logrus.FieldLogger) *cli.App {
	return &cli.App{
		Name:   "report",
		Usage:  "Offline bookings reports and demand path planning",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "print the sales report of a service from a seed file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "seed", Usage: "JSON seed file with services", Required: true},
					&cli.StringFlag{Name: "service", Usage: "service name", Required: true},
					&cli.StringFlag{Name: "manifest", Usage: "extra CSV manifest to load into the service"},
					&cli.TimestampFlag{Name: "today", Usage: "reference date for day-x", Layout: "2006-01-02"},
				},
				Action: func(c *cli.Context) error {
					now := time.Now()
					if ts := c.Timestamp("today"); ts != nil {
						now = *ts
					}
					return runReport(c.Context, out, c.String("seed"), c.String("service"), c.String("manifest"), now)
				},
			},
			{
				Name:  "max-path",
				Usage: "find the max path through a JSON matrix (file or '-' for stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "matrix", Value: "-", Usage: "JSON matrix file"},
				},
				Action: func(c *cli.Context) error {
					return runMaxPath(out, in, c.String("matrix"))
				},
			},
			{
				Name:  "demand-path",
				Usage: "find the max path through the demand matrix exported for a service",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Value: "data/demand", Usage: "directory of <service>.json matrices"},
					&cli.StringFlag{Name: "service", Usage: "service name", Required: true},
				},
				Action: func(c *cli.Context) error {
					provider := demand.NewFileDemandProvider(c.String("dir"))
					path, err := services.PlanDemandPath(c.Context, log, provider, c.String("service"))
					if err != nil {
						return err
					}
					return writeJSON(out, dto.NewMaxPathResponse(path.ServiceName, path.TotalValue, path.Path))
				},
			},
		},
	}
}

func runReport(ctx context.Context, out io.Writer, seedPath, serviceName, manifestPath string, now time.Time) error {
	seeds, err := repositories.ReadSeeds(seedPath)
	if err != nil {
		return err
	}

	repo := repositories.NewMemoryServiceRepository(seeds)
	svc, err := repo.GetService(ctx, serviceName)
	if err != nil {
		return err
	}

	if manifestPath != "" {
		f, err := os.Open(manifestPath)
		if err != nil {
			return fmt.Errorf("open manifest: %w", err)
		}
		defer f.Close()

		rows, err := manifest.ReadCSV(f)
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
	}

	report, err := services.BuildSalesReport(svc, now)
	if err != nil {
		return err
	}

	return writeJSON(out, dto.NewSalesReportResponse(report))
}

func runMaxPath(out io.Writer, in io.Reader, matrixPath string) error {
	if matrixPath != "-" {
		f, err := os.Open(matrixPath)
		if err != nil {
			return fmt.Errorf("open matrix: %w", err)
		}
		defer f.Close()
		in = f
	}

	matrix, err := demand.ReadMatrix(in)
	if err != nil {
		return err
	}

	value, path, err := services.MaxPath(matrix)
	if err != nil {
		return err
	}

	return writeJSON(out, dto.NewMaxPathResponse("", value, path))
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
