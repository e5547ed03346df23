package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")
	// ErrEnvOverride ошибка разбора переменных окружения
	ErrEnvOverride = errors.New("config: failed to apply env overrides")
	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Tracing       TracingConfig       `toml:"tracing"`
	Auth          AuthConfig          `toml:"auth"`
	Omise         OmiseConfig         `toml:"omise"`
	RabbitMQ      RabbitMQConfig      `toml:"rabbitmq"`
	Twilio        TwilioConfig        `toml:"twilio"`
	Notifications NotificationsConfig `toml:"notifications"`
	Checkout      CheckoutConfig      `toml:"checkout"`
	Webhook       WebhookConfig       `toml:"webhook"`
	Tax           TaxConfig           `toml:"tax"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type TracingConfig struct {
	Enabled     bool   `toml:"enabled"`
	Endpoint    string `toml:"endpoint"`
	Environment string `toml:"environment"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

type OmiseConfig struct {
	PublicKey string `toml:"public_key"`
	SecretKey string `toml:"secret_key"`
}

type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type TwilioConfig struct {
	Enabled    bool   `toml:"enabled"`
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
}

type NotificationsConfig struct {
	AdminEmail  string `toml:"admin_email"`
	ShopName    string `toml:"shop_name"`
	SendTimeout int    `toml:"send_timeout"`
}

type CheckoutConfig struct {
	StagedOrderTTL  int    `toml:"staged_order_ttl"` // секунды
	CleanupSchedule string `toml:"cleanup_schedule"`
}

// TTL срок жизни черновика заказа
func (c CheckoutConfig) TTL() time.Duration {
	return time.Duration(c.StagedOrderTTL) * time.Second
}

type WebhookConfig struct {
	ProcessingTimeout int `toml:"processing_timeout"` // секунды
	MaxRetries        int `toml:"max_retries"`
	RetryBackoffMs    int `toml:"retry_backoff_ms"`
}

type TaxConfig struct {
	DefaultName       string `toml:"default_name"`
	DefaultPercentage string `toml:"default_percentage"`
}

// Percentage ставка налога по умолчанию
func (t TaxConfig) Percentage() decimal.Decimal {
	return decimal.RequireFromString(t.DefaultPercentage)
}

// secrets переменные окружения, перекрывающие значения из файла
type secrets struct {
	DBPassword       string `envconfig:"DB_PASSWORD"`
	JWTSecret        string `envconfig:"JWT_SECRET"`
	OmisePublicKey   string `envconfig:"OMISE_PUBLIC_KEY"`
	OmiseSecretKey   string `envconfig:"OMISE_SECRET_KEY"`
	RabbitURL        string `envconfig:"RABBIT_URL"`
	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	AdminEmail       string `envconfig:"ADMIN_EMAIL"`
	OTLPEndpoint     string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Environment      string `envconfig:"ENV"`
}

// Load читает config.toml, затем необязательный .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrEnvOverride, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var s secrets
	if err := envconfig.Process("", &s); err != nil {
		return fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	override(&cfg.Database.Password, s.DBPassword)
	override(&cfg.Auth.JWTSecret, s.JWTSecret)
	override(&cfg.Omise.PublicKey, s.OmisePublicKey)
	override(&cfg.Omise.SecretKey, s.OmiseSecretKey)
	override(&cfg.RabbitMQ.URL, s.RabbitURL)
	override(&cfg.Twilio.AccountSID, s.TwilioAccountSID)
	override(&cfg.Twilio.AuthToken, s.TwilioAuthToken)
	override(&cfg.Notifications.AdminEmail, s.AdminEmail)
	override(&cfg.Tracing.Endpoint, s.OTLPEndpoint)
	override(&cfg.Tracing.Environment, s.Environment)

	return nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "tyre-service",
		},
		Tracing: TracingConfig{
			Endpoint:    "otel-collector:4317",
			Environment: "dev",
		},
		RabbitMQ: RabbitMQConfig{Exchange: "notifications"},
		Notifications: NotificationsConfig{
			ShopName:    "Tyre Shop",
			SendTimeout: 5,
		},
		Checkout: CheckoutConfig{
			StagedOrderTTL:  3600,
			CleanupSchedule: "@every 5m",
		},
		Webhook: WebhookConfig{
			ProcessingTimeout: 20,
			MaxRetries:        3,
			RetryBackoffMs:    50,
		},
		Tax: TaxConfig{
			DefaultName:       "GST",
			DefaultPercentage: "10",
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (JWT_SECRET) is required", ErrInvalidConfig)
	}
	if c.Omise.SecretKey == "" {
		return fmt.Errorf("%w: omise.secret_key (OMISE_SECRET_KEY) is required", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq.url is required when rabbitmq is enabled", ErrInvalidConfig)
	}
	if c.Twilio.Enabled && (c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" || c.Twilio.FromNumber == "") {
		return fmt.Errorf("%w: twilio account_sid, auth_token and from_number are required when twilio is enabled", ErrInvalidConfig)
	}
	if c.Checkout.StagedOrderTTL <= 0 {
		return fmt.Errorf("%w: checkout.staged_order_ttl must be positive", ErrInvalidConfig)
	}
	if c.Webhook.ProcessingTimeout <= 0 {
		return fmt.Errorf("%w: webhook.processing_timeout must be positive", ErrInvalidConfig)
	}
	if c.Webhook.MaxRetries < 0 {
		return fmt.Errorf("%w: webhook.max_retries must not be negative", ErrInvalidConfig)
	}
	pct, err := decimal.NewFromString(c.Tax.DefaultPercentage)
	if err != nil || pct.IsNegative() {
		return fmt.Errorf("%w: tax.default_percentage must be a non-negative number", ErrInvalidConfig)
	}
	if c.Tax.DefaultName == "" {
		return fmt.Errorf("%w: tax.default_name is required", ErrInvalidConfig)
	}
	return nil
}
