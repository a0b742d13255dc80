package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Clinic     ClinicConfig     `mapstructure:"clinic"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

type ClinicConfig struct {
	OpeningTime   string `mapstructure:"opening_time"`
	ClosingTime   string `mapstructure:"closing_time"`
	SlotMinutes   int    `mapstructure:"slot_minutes"`
	MinPatientAge int    `mapstructure:"min_patient_age"`
	MinNameLength int    `mapstructure:"min_name_length"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type MonitoringConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// LoadConfig reads an optional YAML config file, layered under environment
// variables (AGENDA_CLINIC_SLOT_MINUTES and so on) and built-in defaults.
// A missing file is fine unless a path was given explicitly.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("agenda")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("clinic.opening_time", "0800")
	v.SetDefault("clinic.closing_time", "1900")
	v.SetDefault("clinic.slot_minutes", 15)
	v.SetDefault("clinic.min_patient_age", 13)
	v.SetDefault("clinic.min_name_length", 5)
	v.SetDefault("logging.level", "info")
	v.SetDefault("monitoring.enabled", false)
	v.SetDefault("monitoring.listen_addr", "localhost:9090")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
