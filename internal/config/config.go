// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Scrape        ScrapeConfig        `yaml:"scrape"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Retention     RetentionConfig     `yaml:"retention"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// ScrapeConfig defines store scraping settings shared by all scrapers.
type ScrapeConfig struct {
	UserAgent      string        `yaml:"user_agent"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	PerSecond      float64       `yaml:"per_second"`
	Burst          int           `yaml:"burst"`
	MaxAttempts    int           `yaml:"max_attempts"`
}

// ScheduleConfig defines sweep and maintenance cadence plus the worker
// pool shape.
type ScheduleConfig struct {
	SweepInterval       time.Duration `yaml:"sweep_interval"`
	MaintenanceInterval time.Duration `yaml:"maintenance_interval"`
	SoftTimeout         time.Duration `yaml:"soft_timeout"`
	HardTimeout         time.Duration `yaml:"hard_timeout"`
	Workers             int           `yaml:"workers"`
	QueueSize           int           `yaml:"queue_size"`
}

// NotificationsConfig defines push notification targets.
type NotificationsConfig struct {
	FCM FCMConfig `yaml:"fcm"`
}

// FCMConfig defines Firebase Cloud Messaging settings.
type FCMConfig struct {
	Enabled  bool   `yaml:"enabled"`
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	Topic    string `yaml:"topic"`
}

// RetentionConfig defines how long notification records are kept.
type RetentionConfig struct {
	MaxAge time.Duration `yaml:"max_age"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyScrapeDefaults(&cfg.Scrape)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationDefaults(&cfg.Notifications)
	applyRetentionDefaults(&cfg.Retention)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyScrapeDefaults(s *ScrapeConfig) {
	if s.UserAgent == "" {
		s.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = 45 * time.Second
	}
	if s.PerSecond == 0 {
		s.PerSecond = 1.0
	}
	if s.Burst == 0 {
		s.Burst = 2
	}
	if s.MaxAttempts == 0 {
		s.MaxAttempts = 3
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.SweepInterval == 0 {
		s.SweepInterval = 30 * time.Minute
	}
	if s.MaintenanceInterval == 0 {
		s.MaintenanceInterval = 24 * time.Hour
	}
	if s.SoftTimeout == 0 {
		s.SoftTimeout = 25 * time.Minute
	}
	if s.HardTimeout == 0 {
		s.HardTimeout = 30 * time.Minute
	}
	if s.Workers == 0 {
		s.Workers = 4
	}
	if s.QueueSize == 0 {
		s.QueueSize = 64
	}
}

func applyNotificationDefaults(n *NotificationsConfig) {
	if n.FCM.Endpoint == "" {
		n.FCM.Endpoint = "https://fcm.googleapis.com/fcm/send"
	}
	if n.FCM.Topic == "" {
		n.FCM.Topic = "stokwatch"
	}
}

func applyRetentionDefaults(r *RetentionConfig) {
	if r.MaxAge == 0 {
		r.MaxAge = 30 * 24 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Notifications.FCM.Enabled && cfg.Notifications.FCM.APIKey == "" {
		errs = append(errs, fmt.Errorf("notifications.fcm.api_key is required when fcm is enabled"))
	}

	if cfg.Schedule.SoftTimeout > cfg.Schedule.HardTimeout {
		errs = append(errs, fmt.Errorf(
			"schedule.soft_timeout (%s) must not exceed schedule.hard_timeout (%s)",
			cfg.Schedule.SoftTimeout, cfg.Schedule.HardTimeout,
		))
	}

	return errors.Join(errs...)
}
