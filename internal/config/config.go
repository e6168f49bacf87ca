package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// auth
	SessionTTLHours             int `toml:"session_ttl_hours"`
	SessionsCleanupHours        int `toml:"sessions_cleanup_hours"`
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	// cors
	AllowedOrigins []string `toml:"allowed_origins"`
	// time zone used when neither the profile nor the geo ip lookup give one
	DefaultTimezone string `toml:"default_timezone"`
	// geo ip
	GeoIPCacheSizeMB int `toml:"geoip_cache_size_mb"`
	// kafka, events are stored in the db only when no brokers are set
	KafkaBrokers     []string `toml:"kafka_brokers"`
	KafkaEventsTopic string   `toml:"kafka_events_topic"`
	// google drive backup
	BackupDriveFolder string `toml:"backup_drive_folder"`
	BackupChunkSize   int    `toml:"backup_chunk_size"`
	// the backup cmd reports finished runs to the service through this socket
	BackupUnixSocketDir      string `toml:"backup_unix_socket_dir"`
	BackupUnixSocketFileName string `toml:"backup_unix_socket_file_name"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the config of the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 24 * 7
	}
	if c.SessionsCleanupHours <= 0 {
		c.SessionsCleanupHours = 8
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.DefaultTimezone == "" {
		c.DefaultTimezone = "UTC"
	}
	if c.GeoIPCacheSizeMB <= 0 {
		c.GeoIPCacheSizeMB = 10
	}
	if c.KafkaEventsTopic == "" {
		c.KafkaEventsTopic = "fittrack-events"
	}
	if c.BackupDriveFolder == "" {
		c.BackupDriveFolder = "fittrack-activities-backup"
	}
	if c.BackupChunkSize <= 0 {
		c.BackupChunkSize = 500
	}
	if c.BackupUnixSocketDir == "" {
		c.BackupUnixSocketDir = "/tmp/fittrack"
	}
	if c.BackupUnixSocketFileName == "" {
		c.BackupUnixSocketFileName = "activities-backup.sock"
	}
}
