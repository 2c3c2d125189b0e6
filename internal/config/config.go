package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvTableName      = "DYNAMODB_TABLE_NAME"
	EnvCustomerIndex  = "DYNAMODB_CUSTOMER_INDEX"
	EnvEventsQueueURL = "ORDERS_EVENTS_QUEUE_URL"
	EnvMetricsNS      = "METRICS_NAMESPACE"
	EnvLogLevel       = "LOG_LEVEL"
	EnvRunLocal       = "RUN_LOCAL"
	EnvLocalAddr      = "LOCAL_ADDR"
	EnvUseGinProxy    = "USE_GIN_PROXY"
)

const (
	DefaultCustomerIndex = "CustomerIndex"
	DefaultMetricsNS     = "ServiceOrders"
	DefaultLogLevel      = "info"
	DefaultLocalAddr     = ":8080"
)

// Config is the process configuration read from the environment.
type Config struct {
	TableName      string `env:"DYNAMODB_TABLE_NAME" validate:"required"`
	CustomerIndex  string `env:"DYNAMODB_CUSTOMER_INDEX" validate:"required"`
	EventsQueueURL string `env:"ORDERS_EVENTS_QUEUE_URL" validate:"omitempty,url"`
	MetricsNS      string `env:"METRICS_NAMESPACE" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LocalAddr      string `env:"LOCAL_ADDR" validate:"required"`
	RunLocal       bool
	UseGinProxy    bool
}

// Load reads the configuration. When RUN_LOCAL is true a .env file in the working
// directory is loaded first; variables already set in the environment win.
func Load() (*Config, error) {
	if isTrue(os.Getenv(EnvRunLocal)) {
		// a missing .env is fine
		_ = godotenv.Load()
	}

	cfg := &Config{
		TableName:      os.Getenv(EnvTableName),
		CustomerIndex:  getenv(EnvCustomerIndex, DefaultCustomerIndex),
		EventsQueueURL: os.Getenv(EnvEventsQueueURL),
		MetricsNS:      getenv(EnvMetricsNS, DefaultMetricsNS),
		LogLevel:       strings.ToLower(getenv(EnvLogLevel, DefaultLogLevel)),
		LocalAddr:      getenv(EnvLocalAddr, DefaultLocalAddr),
		RunLocal:       isTrue(os.Getenv(EnvRunLocal)),
		UseGinProxy:    isTrue(os.Getenv(EnvUseGinProxy)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	validate   = validatorv10.New()
	configType = reflect.TypeOf(Config{})
)

// Validate reports the first invalid setting by its environment variable name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("invalid config: %w", err)
	}

	fe := verrs[0]
	name := envName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s environment variable not set", name)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s is not a valid %s: %q", name, fe.Tag(), fe.Value())
	}
}

func envName(field string) string {
	f, ok := configType.FieldByName(field)
	if !ok {
		return field
	}
	if tag := f.Tag.Get("env"); tag != "" {
		return tag
	}
	return field
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isTrue(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
