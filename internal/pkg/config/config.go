package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Reaper  ReaperConfig
	Webhook WebhookConfig
	Payment PaymentConfig
	MQ      MQConfig
	Outbox  OutboxConfig
	Migrate MigrateConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	HoldTTL time.Duration `envconfig:"HOLD_TTL" default:"15m"`
}

type ReaperConfig struct {
	Enabled   bool          `envconfig:"REAPER_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"REAPER_INTERVAL" default:"1m"`
	BatchSize int32         `envconfig:"REAPER_BATCH_SIZE" default:"500"`
}

// Secrets is keyed by provider name, e.g. WEBHOOK_SECRETS=stripe:whsec_x,omise:skey_y
type WebhookConfig struct {
	Secrets         map[string]string `envconfig:"WEBHOOK_SECRETS"`
	Tolerance       time.Duration     `envconfig:"WEBHOOK_TOLERANCE" default:"5m"`
	SignatureHeader string            `envconfig:"WEBHOOK_SIGNATURE_HEADER" default:"Stripe-Signature"`
	ProviderHeader  string            `envconfig:"WEBHOOK_PROVIDER_HEADER" default:"X-Payment-Provider"`
}

type PaymentConfig struct {
	Provider        string `envconfig:"PAYMENT_PROVIDER" default:"stripe"`
	DefaultCurrency string `envconfig:"PAYMENT_DEFAULT_CURRENCY" default:"USD"`
}

type MQConfig struct {
	URL      string `envconfig:"MQ_URL"`
	Exchange string `envconfig:"MQ_EXCHANGE" default:"courtside.events"`
}

type OutboxConfig struct {
	Enabled     bool          `envconfig:"OUTBOX_ENABLED" default:"true"`
	Interval    time.Duration `envconfig:"OUTBOX_INTERVAL" default:"5s"`
	BatchSize   int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
	MaxAttempts int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
	Lease       time.Duration `envconfig:"OUTBOX_LEASE" default:"1m"`
}

type MigrateConfig struct {
	OnStart bool `envconfig:"MIGRATE_ON_START" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values envconfig parses fine but the service cannot run with.
func (c Config) Validate() error {
	if c.Booking.HoldTTL <= 0 {
		return fmt.Errorf("HOLD_TTL must be positive, got %s", c.Booking.HoldTTL)
	}
	if c.Reaper.Enabled && c.Reaper.Interval <= 0 {
		return fmt.Errorf("REAPER_INTERVAL must be positive, got %s", c.Reaper.Interval)
	}
	if c.Outbox.Enabled && c.Outbox.Interval <= 0 {
		return fmt.Errorf("OUTBOX_INTERVAL must be positive, got %s", c.Outbox.Interval)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key",
			Duration: "1h",
		},
		Booking: BookingConfig{HoldTTL: 15 * time.Minute},
		// background jobs are driven explicitly by tests
		Reaper: ReaperConfig{Enabled: false, Interval: time.Minute, BatchSize: 500},
		Webhook: WebhookConfig{
			Secrets:         map[string]string{"stripe": "whsec_test"},
			Tolerance:       5 * time.Minute,
			SignatureHeader: "Stripe-Signature",
			ProviderHeader:  "X-Payment-Provider",
		},
		Payment: PaymentConfig{Provider: "stripe", DefaultCurrency: "USD"},
		MQ:      MQConfig{Exchange: "courtside.events"},
		Outbox:  OutboxConfig{Enabled: false, Interval: 5 * time.Second, BatchSize: 100, MaxAttempts: 10, Lease: time.Minute},
	}
}
