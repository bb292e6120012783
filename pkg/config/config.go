package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix scopes every environment variable the service reads.
const EnvPrefix = "THREADLINE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Env var names referenced from tests and docs.
const (
	EnvAppEnv       = "THREADLINE_APP_ENV"
	EnvPort         = "THREADLINE_APP_PORT"
	EnvDBDSN        = "THREADLINE_DB_DSN"
	EnvAdminKey     = "THREADLINE_ADMIN_API_KEY"
	EnvNthOrder     = "THREADLINE_NTH_ORDER_FOR_DISCOUNT"
	EnvDiscountPct  = "THREADLINE_DISCOUNT_PERCENTAGE"
	EnvCORSOrigins  = "THREADLINE_CORS_ORIGINS"
	EnvLogLevel     = "THREADLINE_LOG_LEVEL"
	EnvLogWarnStack = "THREADLINE_LOG_WARN_STACK"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Store StoreConfig
	Admin AdminConfig
	CORS  CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"THREADLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"THREADLINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"THREADLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"THREADLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig points GORM at the backing sqlite database. The default keeps all
// store state in process memory, which matches the store's lifetime contract.
type DBConfig struct {
	DSN string `envconfig:"THREADLINE_DB_DSN" default:"file::memory:?cache=shared"`
}

// StoreConfig carries the process-wide discount policy. Both values are fixed
// at boot and read-only afterward.
type StoreConfig struct {
	NthOrderForDiscount int `envconfig:"THREADLINE_NTH_ORDER_FOR_DISCOUNT" default:"3"`
	DiscountPercentage  int `envconfig:"THREADLINE_DISCOUNT_PERCENTAGE" default:"10"`
}

// Validate checks the discount policy bounds.
func (s StoreConfig) Validate() error {
	if s.NthOrderForDiscount <= 0 {
		return fmt.Errorf("%s must be a positive integer", EnvNthOrder)
	}
	if s.DiscountPercentage <= 0 || s.DiscountPercentage > 100 {
		return fmt.Errorf("%s must be between 1 and 100", EnvDiscountPct)
	}
	return nil
}

// AdminConfig guards the admin dashboard routes with a static shared key.
type AdminConfig struct {
	APIKey string `envconfig:"THREADLINE_ADMIN_API_KEY" required:"true"`
}

type CORSConfig struct {
	Origins []string `envconfig:"THREADLINE_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
