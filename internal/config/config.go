package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port string

	Database Database
	Log      Log

	// StrictTransitions gates status changes through the forward-only
	// DRAFT -> SENT -> APPROVED -> PAID graph.
	StrictTransitions bool
	ScheduleLocation  *time.Location
	CORSOrigins       []string
	NotifyFromName    string
}

type Database struct {
	Driver      string
	DSN         string
	AutoMigrate bool
	LogLevel    string
}

type Log struct {
	Level  string
	Format string
}

// Load reads .env (when present) and then the process environment.
// Variables already set in the environment are not overridden by .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Database: Database{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		NotifyFromName: getEnv("NOTIFY_FROM_NAME", "Exclusive Resorts"),
	}

	switch cfg.Database.Driver {
	case DriverPostgres:
		cfg.Database.DSN = os.Getenv("POSTGRES_URL")
		if cfg.Database.DSN == "" {
			return nil, fmt.Errorf("POSTGRES_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
		cfg.Database.DSN = getEnv("SQLITE_PATH", "file:dev.db?_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	var err error
	if cfg.Database.AutoMigrate, err = getBool("DB_AUTO_MIGRATE", true); err != nil {
		return nil, err
	}
	if cfg.StrictTransitions, err = getBool("PROPOSAL_STRICT_TRANSITIONS", false); err != nil {
		return nil, err
	}

	tz := getEnv("SCHEDULE_TIMEZONE", "UTC")
	if cfg.ScheduleLocation, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", tz, err)
	}

	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
