package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable read by the service.
	EnvPrefix = "BENCOM"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Cart     CartConfig
	WhatsApp WhatsAppConfig
	SMTP     SMTPConfig
	Contact  ContactConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BENCOM_APP_ENV" default:"dev"`
	Port         string `envconfig:"BENCOM_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BENCOM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BENCOM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"BENCOM_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"BENCOM_DB_DSN" default:"storefront.db"`

	MaxOpenConns    int           `envconfig:"BENCOM_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"BENCOM_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"BENCOM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BENCOM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.NormalizedDriver() {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("database DSN is required")
	}
	return nil
}

// NormalizedDriver returns the lowercased driver name.
func (db DBConfig) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(db.Driver))
}

type RedisConfig struct {
	URL          string        `envconfig:"BENCOM_REDIS_URL"`
	Address      string        `envconfig:"BENCOM_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"BENCOM_REDIS_PASSWORD"`
	DB           int           `envconfig:"BENCOM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BENCOM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BENCOM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BENCOM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BENCOM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BENCOM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	// TTL bounds how long an untouched cart survives in its slot. Zero keeps
	// the slot forever.
	TTL time.Duration `envconfig:"BENCOM_CART_TTL" default:"720h"`
}

type WhatsAppConfig struct {
	// Number is the destination the order hand-off is sent to. Empty means
	// the hand-off endpoint refuses with a user-visible guard.
	Number  string `envconfig:"BENCOM_WHATSAPP_NUMBER"`
	Website string `envconfig:"BENCOM_WEBSITE_URL"`
}

type SMTPConfig struct {
	Host     string `envconfig:"BENCOM_SMTP_HOST"`
	Port     int    `envconfig:"BENCOM_SMTP_PORT" default:"587"`
	User     string `envconfig:"BENCOM_SMTP_USER"`
	Password string `envconfig:"BENCOM_SMTP_PASS"`
	From     string `envconfig:"BENCOM_EMAIL_FROM"`
	To       string `envconfig:"BENCOM_EMAIL_TO" default:"mantenimiento@bencom.com.ar"`
}

// Configured reports whether the relay has enough settings to send mail.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.User != "" && s.Password != ""
}

type ContactConfig struct {
	RateLimitWindow  time.Duration `envconfig:"BENCOM_CONTACT_RATE_LIMIT_WINDOW" default:"1m"`
	RateLimitIPLimit int           `envconfig:"BENCOM_CONTACT_RATE_LIMIT_IP_LIMIT" default:"5"`
}
