// Package config loads the tinydbc configuration file.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/joeandaverde/tinydbc/engine"
)

// Config is the configuration of the command line tool.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig describes the database to bootstrap.
type DatabaseConfig struct {
	Path     string `yaml:"path"`
	Name     string `yaml:"name"`
	Token    string `yaml:"token"`
	Protocol string `yaml:"protocol"`
}

// LogConfig describes the log sink.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives the log; stderr when empty.
	File string `yaml:"file"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Path:     ".",
			Name:     "tinydb",
			Protocol: "sqlite",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies a .env
// file from the working directory (if any) and TINYDBC_* environment
// variables. An empty path skips the file.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &config); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{"TINYDBC_PATH", &c.Database.Path},
		{"TINYDBC_NAME", &c.Database.Name},
		{"TINYDBC_TOKEN", &c.Database.Token},
		{"TINYDBC_PROTOCOL", &c.Database.Protocol},
		{"TINYDBC_LOG_LEVEL", &c.Log.Level},
		{"TINYDBC_LOG_FORMAT", &c.Log.Format},
		{"TINYDBC_LOG_FILE", &c.Log.File},
	}

	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.key); ok {
			*o.target = value
		}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Database.Name == "" {
		return errors.New("config: database.name is required")
	}
	if c.Database.Protocol == "" {
		return errors.New("config: database.protocol is required")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Engine returns the bootstrap configuration of the engine.
func (c Config) Engine() engine.Config {
	return engine.Config{
		Path:     c.Database.Path,
		Name:     c.Database.Name,
		Token:    c.Database.Token,
		Protocol: c.Database.Protocol,
	}
}
