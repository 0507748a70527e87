package cmd

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env   string `envconfig:"APP_ENV" default:"development" validate:"oneof=development stage production"`
	HTTP  HTTPConfig
	DB    DBConfig
	Kafka KafkaConfig
	Cache CacheConfig
	Jobs  JobsConfig
}

type HTTPConfig struct {
	Port            string        `envconfig:"HTTP_PORT" default:"8080" validate:"required,numeric"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost" validate:"required"`
	Port     string `envconfig:"DB_PORT" default:"5432" validate:"required,numeric"`
	User     string `envconfig:"DB_USER" required:"true" validate:"required"`
	Password string `envconfig:"DB_PASSWORD" required:"true" validate:"required"`
	Name     string `envconfig:"DB_NAME" required:"true" validate:"required"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

type KafkaConfig struct {
	Brokers           []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092" validate:"dive,hostname_port"`
	OrderCreatedTopic string        `envconfig:"KAFKA_ORDER_CREATED_TOPIC" default:"orders.created" validate:"required"`
	BatchTimeout      time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms" validate:"gte=0"`
}

type CacheConfig struct {
	ProductSize int           `envconfig:"PRODUCT_CACHE_SIZE" default:"1024" validate:"gte=0"`
	ProductTTL  time.Duration `envconfig:"PRODUCT_CACHE_TTL" default:"1m" validate:"gte=0"`
}

type JobsConfig struct {
	DiscountPurgeSchedule string `envconfig:"DISCOUNT_PURGE_SCHEDULE" default:"0 0 * * * *" validate:"required"`
}

// DSN returns the postgres connection string shared by gorm and sqlx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Enabled reports whether order events should be published.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// LoadConfig reads .env when present, then the process environment, and
// validates the result.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
