package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration of the API, read from the environment
// (and from a .env file autoloaded by cmd/api).
//
// Optional integrations are off while their settings are empty:
//   - SNAPSHOTS_TABLE enables DynamoDB snapshots;
//   - REDIS_URL enables change-event publishing.
type Config struct {
	Port                  int           `env:"PORT"                    envDefault:"8080"`
	HistoryLimit          int           `env:"HISTORY_LIMIT"           envDefault:"200"`
	SeedEnabled           bool          `env:"SEED_ENABLED"            envDefault:"true"`
	CORSAllowedOrigins    []string      `env:"CORS_ALLOWED_ORIGINS"    envDefault:"*"`
	MaintenanceWindowDays int           `env:"MAINTENANCE_WINDOW_DAYS" envDefault:"7"`
	AWSRegion             string        `env:"AWS_REGION"              envDefault:"us-east-1"`
	AWSAccessKeyID        string        `env:"AWS_ACCESS_KEY_ID"       envDefault:"local"`
	AWSSecretAccessKey    string        `env:"AWS_SECRET_ACCESS_KEY"   envDefault:"local"`
	DynamoDBEndpoint      string        `env:"DYNAMODB_ENDPOINT"`
	SnapshotsTable        string        `env:"SNAPSHOTS_TABLE"`
	SnapshotInterval      time.Duration `env:"SNAPSHOT_INTERVAL"       envDefault:"5m"`
	RedisURL              string        `env:"REDIS_URL"`
	EventsChannel         string        `env:"EVENTS_CHANNEL"          envDefault:"marcenaria:changes"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaintenanceWindowDays < 0 {
		return Config{}, fmt.Errorf("parse env: MAINTENANCE_WINDOW_DAYS must not be negative")
	}
	return cfg, nil
}

func (c Config) SnapshotsEnabled() bool { return c.SnapshotsTable != "" }

func (c Config) EventsEnabled() bool { return c.RedisURL != "" }
