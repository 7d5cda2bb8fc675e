// Package config loads runtime settings from an optional YAML file, a .env
// file and BUDGET_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BUDGET"

	PresenterTerminal = "terminal"
	PresenterEvents   = "events"
	PresenterBoth     = "both"

	DefaultTopic = "budget_updated"
)

// Configuration holds all configuration for the budget tracker.
type Configuration struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Presenter PresenterConfig `mapstructure:"presenter"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// PresenterConfig selects where budget updates are shown.
type PresenterConfig struct {
	Kind string `mapstructure:"kind"` // terminal, events, both
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// Load reads envFile (if it exists) into the process environment, then the
// YAML file at configPath (if non-empty), then BUDGET_* variables such as
// BUDGET_LOGGING_LEVEL or BUDGET_KAFKA_BROKERS=a:9092,b:9092.
func Load(configPath, envFile string) (*Configuration, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("presenter.kind", PresenterTerminal)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", DefaultTopic)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var conf Configuration
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &conf, nil
}

// UsesTerminal reports whether the terminal presenter is enabled.
func (c *Configuration) UsesTerminal() bool {
	return c.Presenter.Kind == PresenterTerminal || c.Presenter.Kind == PresenterBoth
}

// UsesEvents reports whether budget updates are published to Kafka.
func (c *Configuration) UsesEvents() bool {
	return c.Presenter.Kind == PresenterEvents || c.Presenter.Kind == PresenterBoth
}

// Validate checks the configuration and returns every problem found.
func (c *Configuration) Validate() error {
	var problems []string

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be json or console", c.Logging.Format))
	}

	switch c.Presenter.Kind {
	case PresenterTerminal, PresenterEvents, PresenterBoth:
	default:
		problems = append(problems, fmt.Sprintf("invalid presenter '%s': must be one of %s, %s, %s",
			c.Presenter.Kind, PresenterTerminal, PresenterEvents, PresenterBoth))
	}

	if c.UsesEvents() {
		if len(c.Kafka.Brokers) == 0 {
			problems = append(problems, "kafka brokers are required when publishing events")
		}
		for _, b := range c.Kafka.Brokers {
			if strings.TrimSpace(b) == "" {
				problems = append(problems, "kafka broker address cannot be empty")
				break
			}
		}
		if c.Kafka.Topic == "" {
			problems = append(problems, "kafka topic cannot be empty when publishing events")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
