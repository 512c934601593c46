package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads the config file, parses it, and initializes the global cfg variable.
// It ensures that the configuration is set only once.
func LoadConfig(configFile string) (*Config, error) {
	var err error
	once.Do(func() {
		cfg, err = loadFromFile(configFile)
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

func loadFromFile(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	v.SetDefault("api_root", "https://cloud.anylogic.com/api/open/8.5.0")
	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("poll_interval", 2*time.Second)
	v.SetDefault("defaults.model_name", "Service System Demo")
	v.SetDefault("defaults.experiment_name", "Baseline")
	v.SetDefault("outputs.mean_queue_size", "Mean queue size|Mean queue size")
	v.SetDefault("outputs.server_utilization", "Utilization|Server utilization")

	// The API key may come from the environment instead of the file.
	if err := v.BindEnv("api_key", "ANYLOGIC_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding api_key env var: %w", err)
	}

	// Read in the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal the config into the Config struct
	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.APIRoot == "" {
		return nil, errors.New("api_root is required")
	}
	if configuration.APIKey == "" {
		return nil, errors.New("api_key is required (config file or ANYLOGIC_API_KEY)")
	}

	return &configuration, nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}
