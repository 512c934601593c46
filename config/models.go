package config

import "time"

// DefaultsConfig holds the model and experiment used when a run request
// leaves them out.
type DefaultsConfig struct {
	ModelName      string `mapstructure:"model_name"`
	ExperimentName string `mapstructure:"experiment_name"`
}

// OutputsConfig names the vendor outputs the service reads the two
// response metrics from.
type OutputsConfig struct {
	MeanQueueSize     string `mapstructure:"mean_queue_size"`
	ServerUtilization string `mapstructure:"server_utilization"`
}

// Config holds the application configuration.
type Config struct {
	APIRoot        string         `mapstructure:"api_root"`
	APIKey         string         `mapstructure:"api_key"`
	ListenAddress  string         `mapstructure:"listen_address"`
	RequestTimeout time.Duration  `mapstructure:"request_timeout"`
	PollInterval   time.Duration  `mapstructure:"poll_interval"`
	Defaults       DefaultsConfig `mapstructure:"defaults"`
	Outputs        OutputsConfig  `mapstructure:"outputs"`
}
