package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/vivaclinic/agenda/internal/config"
	"github.com/vivaclinic/agenda/internal/handler/cli"
	"github.com/vivaclinic/agenda/internal/repository/memory"
	"github.com/vivaclinic/agenda/internal/service/notification"
	patientsvc "github.com/vivaclinic/agenda/internal/service/patient"
	schedulesvc "github.com/vivaclinic/agenda/internal/service/schedule"
	"github.com/vivaclinic/agenda/pkg/clock"
	"github.com/vivaclinic/agenda/pkg/logger"
	"github.com/vivaclinic/agenda/pkg/metrics"
)

// processOptions are the handful of knobs read straight from the
// environment before the config file is touched.
type processOptions struct {
	ConfigFile string `envconfig:"CONFIG_FILE"`
	Debug      bool   `envconfig:"DEBUG"`
}

func main() {
	var opts processOptions
	if err := envconfig.Process("agenda", &opts); err != nil {
		fmt.Fprintln(os.Stderr, "invalid environment:", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(opts.ConfigFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	if opts.Debug {
		level = logger.DebugLevel
	}
	log := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})

	opening, err := clock.ParseTimeOfDay(cfg.Clinic.OpeningTime)
	if err != nil {
		log.Fatal(err, "invalid clinic opening time")
	}
	closing, err := clock.ParseTimeOfDay(cfg.Clinic.ClosingTime)
	if err != nil {
		log.Fatal(err, "invalid clinic closing time")
	}

	m := metrics.NewMetrics("agenda")
	if cfg.Monitoring.Enabled {
		go func() {
			log.Info("metrics listener starting", "addr", cfg.Monitoring.ListenAddr)
			if err := http.ListenAndServe(cfg.Monitoring.ListenAddr, m.Handler()); err != nil {
				log.Error(err, "metrics listener stopped")
			}
		}()
	}

	patientRepo := memory.NewPatientRepository()
	appointmentRepo := memory.NewAppointmentRepository()
	notifier := notification.NewConsoleService(os.Stdout)

	patients := patientsvc.NewService(patientRepo, appointmentRepo, patientsvc.Config{
		MinNameLength: cfg.Clinic.MinNameLength,
		MinAge:        cfg.Clinic.MinPatientAge,
	}, log, m)

	schedule := schedulesvc.NewService(appointmentRepo, patientRepo, notifier, schedulesvc.Config{
		OpeningTime: opening,
		ClosingTime: closing,
		SlotMinutes: cfg.Clinic.SlotMinutes,
	}, log, m)

	handler := cli.NewHandler(patients, schedule, os.Stdin, os.Stdout, log)
	if err := handler.Run(context.Background()); err != nil {
		log.Fatal(err, "menu loop failed")
	}
}
