package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all worker configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Connector ConnectorConfig `mapstructure:"connector"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig configures the operational HTTP surface.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SchedulerConfig configures task dispatch and the durable queue consumer.
type SchedulerConfig struct {
	ResultCacheTTL time.Duration `mapstructure:"result_cache_ttl"`
	QueuePollEvery time.Duration `mapstructure:"queue_poll_every"`
	QueueBatchSize int           `mapstructure:"queue_batch_size"`
}

// RetryConfig configures the retry store and worker loop.
type RetryConfig struct {
	BaseBackoff    time.Duration `mapstructure:"base_backoff"`
	GrowthFactor   int           `mapstructure:"growth_factor"`
	MaxRetries     int           `mapstructure:"max_retries"`
	BatchLimit     int           `mapstructure:"batch_limit"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	StuckClaimAge  time.Duration `mapstructure:"stuck_claim_age"`
}

// WebhookConfig configures outbound delivery.
type WebhookConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	SourceID string        `mapstructure:"source_id"`
}

// ConnectorConfig configures the provider API client used for replays.
// CredentialsKey is the 64-char hex AES-256 key used to decrypt stored
// connector credentials before replay calls.
type ConnectorConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	CredentialsKey string        `mapstructure:"credentials_key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: EDP_ (Enrollment Dispatch).
// Nested keys use underscore: EDP_DATABASE_HOST, EDP_RETRY_MAX_RETRIES, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8085)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "enrollment_dispatch")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("scheduler.result_cache_ttl", "1h")
	v.SetDefault("scheduler.queue_poll_every", "1s")
	v.SetDefault("scheduler.queue_batch_size", 50)
	v.SetDefault("retry.base_backoff", "30s")
	v.SetDefault("retry.growth_factor", 4)
	v.SetDefault("retry.max_retries", 3)
	v.SetDefault("retry.batch_limit", 10)
	v.SetDefault("retry.worker_interval", "5m")
	v.SetDefault("retry.stuck_claim_age", "15m")
	v.SetDefault("webhook.timeout", "15s")
	v.SetDefault("webhook.source_id", "enrollment-dispatch")
	v.SetDefault("connector.base_url", "")
	v.SetDefault("connector.timeout", "30s")
	v.SetDefault("connector.credentials_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: EDP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("EDP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
