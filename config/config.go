package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"deribitrpc/models/channel"
)

// DefaultPath is used when no -config flag is given.
const DefaultPath = "config/config.yml"

// Deribit refuses heartbeat intervals below this many seconds.
const MinHeartbeatInterval = 10

var envPaths = map[string]string{
	environmentProduction: "config/config.production.yml",
	environmentStaging:    "config/config.staging.yml",
}

type Config struct {
	App       AppConfig       `yaml:"app"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Channels  ChannelsConfig  `yaml:"channels"`
	Processor ProcessorConfig `yaml:"processor"`
	Session   SessionConfig   `yaml:"session"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

type MetricsConfig struct {
	CloudWatch CloudWatchConfig `yaml:"cloudwatch"`
}

type CloudWatchConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Region    string `yaml:"region"`
	Namespace string `yaml:"namespace"`
	Dashboard string `yaml:"dashboard"`
}

// ChannelsConfig sizes the frame buffers. With DropOnFull the reader
// discards raw frames when the raw buffer is full instead of blocking.
type ChannelsConfig struct {
	RawBuffer     int  `yaml:"raw_buffer"`
	DecodedBuffer int  `yaml:"decoded_buffer"`
	DropOnFull    bool `yaml:"drop_on_full"`
}

type ProcessorConfig struct {
	MaxWorkers int `yaml:"max_workers"`
}

// SessionConfig describes the handshake a client sends after connecting:
// the heartbeat interval in seconds and the channels to subscribe to.
type SessionConfig struct {
	HeartbeatInterval uint64   `yaml:"heartbeat_interval"`
	PublicChannels    []string `yaml:"public_channels"`
	PrivateChannels   []string `yaml:"private_channels"`
}

// PrivateChannelIDs parses the configured private channels. LoadConfig has
// already rejected malformed entries.
func (s SessionConfig) PrivateChannelIDs() ([]channel.ID, error) {
	ids := make([]channel.ID, 0, len(s.PrivateChannels))
	for _, name := range s.PrivateChannels {
		id, err := channel.ParseAny(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func defaults() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Metrics: MetricsConfig{
			CloudWatch: CloudWatchConfig{Namespace: "DeribitRPC", Dashboard: "DeribitRPC"},
		},
		Channels: ChannelsConfig{
			RawBuffer:     1024,
			DecodedBuffer: 1024,
		},
		Processor: ProcessorConfig{MaxWorkers: 1},
		Session:   SessionConfig{HeartbeatInterval: 30},
	}
}

// LoadConfig reads the YAML file at path, or the APP_ENV specific file when
// path is the default, and validates it.
func LoadConfig(path string) (*Config, error) {
	path = resolveEnvSpecificPath(path, DefaultPath, envPaths)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaults()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if v := os.Getenv("AWS_REGION"); v != "" && config.Metrics.CloudWatch.Region == "" {
		config.Metrics.CloudWatch.Region = strings.TrimSpace(v)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if cfg.App.Version == "" {
		return fmt.Errorf("app.version is required")
	}

	if cfg.Channels.RawBuffer <= 0 {
		return fmt.Errorf("channels.raw_buffer must be greater than 0")
	}
	if cfg.Channels.DecodedBuffer <= 0 {
		return fmt.Errorf("channels.decoded_buffer must be greater than 0")
	}

	if cfg.Processor.MaxWorkers <= 0 {
		return fmt.Errorf("processor.max_workers must be greater than 0")
	}

	if cfg.Session.HeartbeatInterval < MinHeartbeatInterval {
		return fmt.Errorf("session.heartbeat_interval must be at least %d seconds", MinHeartbeatInterval)
	}
	for i, name := range cfg.Session.PrivateChannels {
		if _, err := channel.ParseAny(name); err != nil {
			return fmt.Errorf("session.private_channels[%d]: %w", i, err)
		}
	}

	if cfg.Metrics.CloudWatch.Enabled && cfg.Metrics.CloudWatch.Namespace == "" {
		return fmt.Errorf("metrics.cloudwatch.namespace is required when CloudWatch is enabled")
	}

	return nil
}
