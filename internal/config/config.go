package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Order     OrderConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Events    EventsConfig
	SMTP      SMTPConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Tracing   TracingConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
	// BaseURL is written into the iss claim of every issued token.
	BaseURL        string
	MaxBodyBytes   int64
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	ShutdownPeriod time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type AuthConfig struct {
	PrivateKeyPath string
	PublicKeyPath  string
	TokenTTL       time.Duration
	ResetTokenTTL  time.Duration
}

type OrderConfig struct {
	// StrictCatalog rejects orders that reference unknown products instead of skipping them.
	StrictCatalog bool
}

type StorageConfig struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
	MaxUploadBytes int64
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	ProductTTL time.Duration
}

type EventsConfig struct {
	Driver       string // none, nats or mqtt
	NATSURL      string
	MQTTBroker   string
	MQTTClientID string
	MQTTUsername string
	MQTTPassword string
	Topic        string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

type RateLimitConfig struct {
	GeneralRPS   float64
	GeneralBurst int
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads path (dotenv format) and overlays environment variables.
// A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Host:           v.GetString("SERVER_HOST"),
			Environment:    v.GetString("ENVIRONMENT"),
			BaseURL:        v.GetString("APP_URL"),
			MaxBodyBytes:   v.GetInt64("SERVER_MAX_BODY_BYTES"),
			ReadTimeout:    v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:   v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:    v.GetDuration("SERVER_IDLE_TIMEOUT"),
			ShutdownPeriod: v.GetDuration("SERVER_SHUTDOWN_PERIOD"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			DBName:       v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Auth: AuthConfig{
			PrivateKeyPath: v.GetString("AUTH_PRIVATE_KEY_PATH"),
			PublicKeyPath:  v.GetString("AUTH_PUBLIC_KEY_PATH"),
			TokenTTL:       v.GetDuration("AUTH_TOKEN_TTL"),
			ResetTokenTTL:  v.GetDuration("AUTH_RESET_TOKEN_TTL"),
		},
		Order: OrderConfig{
			StrictCatalog: v.GetBool("ORDER_STRICT_CATALOG"),
		},
		Storage: StorageConfig{
			Endpoint:       v.GetString("STORAGE_ENDPOINT"),
			AccessKey:      v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:      v.GetString("STORAGE_SECRET_KEY"),
			Bucket:         v.GetString("STORAGE_BUCKET"),
			UseSSL:         v.GetBool("STORAGE_USE_SSL"),
			MaxUploadBytes: v.GetInt64("STORAGE_MAX_UPLOAD_BYTES"),
		},
		Redis: RedisConfig{
			Addr:       v.GetString("REDIS_ADDR"),
			Password:   v.GetString("REDIS_PASSWORD"),
			DB:         v.GetInt("REDIS_DB"),
			ProductTTL: v.GetDuration("REDIS_PRODUCT_TTL"),
		},
		Events: EventsConfig{
			Driver:       strings.ToLower(v.GetString("EVENTS_DRIVER")),
			NATSURL:      v.GetString("NATS_URL"),
			MQTTBroker:   v.GetString("MQTT_BROKER"),
			MQTTClientID: v.GetString("MQTT_CLIENT_ID"),
			MQTTUsername: v.GetString("MQTT_USERNAME"),
			MQTTPassword: v.GetString("MQTT_PASSWORD"),
			Topic:        v.GetString("EVENTS_TOPIC"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   v.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: v.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   v.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   v.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           v.GetInt("CORS_MAX_AGE"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("OTEL_ENABLED"),
			Endpoint:    v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: v.GetString("OTEL_SERVICE_NAME"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("APP_URL", "http://localhost:8080")
	v.SetDefault("SERVER_MAX_BODY_BYTES", 1<<20)
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "60s")
	v.SetDefault("SERVER_SHUTDOWN_PERIOD", "30s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("AUTH_PRIVATE_KEY_PATH", "privateKey.pem")
	v.SetDefault("AUTH_PUBLIC_KEY_PATH", "publicKey.pem")
	v.SetDefault("AUTH_TOKEN_TTL", "24h")
	v.SetDefault("AUTH_RESET_TOKEN_TTL", "1h")

	v.SetDefault("STORAGE_BUCKET", "pet-shop")
	v.SetDefault("STORAGE_MAX_UPLOAD_BYTES", 10<<20)

	v.SetDefault("REDIS_PRODUCT_TTL", "10m")

	v.SetDefault("EVENTS_DRIVER", "none")
	v.SetDefault("EVENTS_TOPIC", "petshop.orders")
	v.SetDefault("MQTT_CLIENT_ID", "pet-shop-api")

	v.SetDefault("SMTP_PORT", 587)

	v.SetDefault("RATE_LIMIT_GENERAL_RPS", 20)
	v.SetDefault("RATE_LIMIT_GENERAL_BURST", 40)

	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"})
	v.SetDefault("CORS_EXPOSED_HEADERS", []string{"X-Request-ID"})
	v.SetDefault("CORS_MAX_AGE", 43200)

	v.SetDefault("OTEL_SERVICE_NAME", "pet-shop-api")
}

func (c *Config) validate() error {
	if c.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	switch c.Events.Driver {
	case "none", "nats", "mqtt":
	default:
		return fmt.Errorf("unknown EVENTS_DRIVER %q", c.Events.Driver)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
