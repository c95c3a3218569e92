package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zeenath1324/Mini-project/activitylog"
	"github.com/zeenath1324/Mini-project/librarystore"
)

const (
	envPrefix          = "LIBRARY"
	defaultConfigName  = "library"
	defaultConfigType  = "yaml"
	defaultLogFile     = "library.log"
	defaultLogLevel    = "INFO"
	defaultBoltPath    = "library_log.db"
	defaultTableName   = "activity_log"
	defaultDriver      = DriverPGX
	defaultDuplicateOf = "reject"
)

// Activity log sink names accepted in activity_log.sinks.
const (
	SinkFile     = "file"
	SinkBolt     = "bolt"
	SinkPostgres = "postgres"
)

// Postgres drivers accepted in activity_log.postgres.driver.
const (
	DriverPGX  = "pgx"
	DriverSQL  = "sql"
	DriverSQLX = "sqlx"
)

var (
	// ErrUnknownSink is returned for an activity log sink name that is not supported.
	ErrUnknownSink = errors.New("unknown activity log sink")

	// ErrUnknownDriver is returned for a Postgres driver name that is not supported.
	ErrUnknownDriver = errors.New("unknown postgres driver")

	// ErrMissingDSN is returned when the postgres sink is enabled without a DSN.
	ErrMissingDSN = errors.New("postgres sink requires a dsn")

	// ErrNoSinks is returned when no activity log sink is configured.
	ErrNoSinks = errors.New("at least one activity log sink is required")
)

// Config holds all application configuration
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	ActivityLog ActivityLogConfig `mapstructure:"activity_log"`
	Store       StoreConfig       `mapstructure:"store"`
}

// LoggingConfig holds diagnostic logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ActivityLogConfig selects and configures the activity log sinks
type ActivityLogConfig struct {
	Sinks    []string       `mapstructure:"sinks"` // any of "file", "bolt", "postgres"
	File     string         `mapstructure:"file"`
	BoltPath string         `mapstructure:"bolt_path"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig holds the connection settings of the postgres sink
type PostgresConfig struct {
	DSN    string `mapstructure:"dsn"`
	Driver string `mapstructure:"driver"` // "pgx", "sql" or "sqlx"
	Table  string `mapstructure:"table"`
}

// StoreConfig holds the library store settings
type StoreConfig struct {
	DuplicatePolicy string `mapstructure:"duplicate_policy"` // "reject" or "overwrite"
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			File:  defaultLogFile,
			Level: defaultLogLevel,
		},
		ActivityLog: ActivityLogConfig{
			Sinks:    []string{SinkFile, SinkBolt},
			File:     activitylog.DefaultLogFile,
			BoltPath: defaultBoltPath,
			Postgres: PostgresConfig{
				Driver: defaultDriver,
				Table:  defaultTableName,
			},
		},
		Store: StoreConfig{
			DuplicatePolicy: defaultDuplicateOf,
		},
	}
}

// Load reads the configuration from path, or from ./library.yaml if path is empty, and from the environment.
//
// A missing library.yaml is fine and leaves the defaults in place; a missing explicit path is an error.
// Environment variables use the LIBRARY prefix with underscores for nesting, e.g. LIBRARY_ACTIVITY_LOG_FILE.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType(defaultConfigType)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the sink selection, the postgres settings and the duplicate policy.
func (c *Config) Validate() error {
	if len(c.ActivityLog.Sinks) == 0 {
		return ErrNoSinks
	}

	for _, sink := range c.ActivityLog.Sinks {
		switch sink {
		case SinkFile, SinkBolt:
		case SinkPostgres:
			if c.ActivityLog.Postgres.DSN == "" {
				return ErrMissingDSN
			}

			switch c.ActivityLog.Postgres.Driver {
			case DriverPGX, DriverSQL, DriverSQLX:
			default:
				return fmt.Errorf("%w: %q", ErrUnknownDriver, c.ActivityLog.Postgres.Driver)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownSink, sink)
		}
	}

	if _, err := librarystore.ParseDuplicatePolicy(c.Store.DuplicatePolicy); err != nil {
		return fmt.Errorf("%w: %q", err, c.Store.DuplicatePolicy)
	}

	return nil
}

// setDefaults registers every key with viper, so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("activity_log.sinks", cfg.ActivityLog.Sinks)
	v.SetDefault("activity_log.file", cfg.ActivityLog.File)
	v.SetDefault("activity_log.bolt_path", cfg.ActivityLog.BoltPath)
	v.SetDefault("activity_log.postgres.dsn", cfg.ActivityLog.Postgres.DSN)
	v.SetDefault("activity_log.postgres.driver", cfg.ActivityLog.Postgres.Driver)
	v.SetDefault("activity_log.postgres.table", cfg.ActivityLog.Postgres.Table)
	v.SetDefault("store.duplicate_policy", cfg.Store.DuplicatePolicy)
}
