package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// HTTPTimeout bounds every outbound request to the rate provider.
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT" default:"10s"`

	// Redis holds the connection settings for the persisted store.
	Redis RedisConfig `mapstructure:",squash"`

	// RajaOngkir holds the remote rate provider endpoints.
	RajaOngkir RajaOngkirConfig `mapstructure:",squash"`

	// Session holds the mock session settings.
	Session SessionConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is the Redis connection string, e.g. redis://localhost:6379/0.
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// RajaOngkirConfig holds the upstream RajaOngkir-style endpoints.
// Defaults point at the public proxy the calculator was built against.
type RajaOngkirConfig struct {
	// ProvinceURL is the provinces resource.
	ProvinceURL string `mapstructure:"ONGKIR_PROVINCE_URL" default:"https://node-api-appsvrs-projects.vercel.app/province"`
	// CityURL is the cities resource. The upstream does not scope it by province.
	CityURL string `mapstructure:"ONGKIR_CITY_URL" default:"https://node-api-appsvrs-projects.vercel.app/city"`
	// CostURL is the shipping cost resource.
	CostURL string `mapstructure:"ONGKIR_COST_URL" default:"https://node-api-appsvrs-projects.vercel.app/cost"`
}

// SessionConfig holds the mock session store settings.
type SessionConfig struct {
	// LoginDelay emulates upstream auth latency on login.
	LoginDelay time.Duration `mapstructure:"LOGIN_DELAY" default:"1s"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
