package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from the configuration file.
type Config struct {
	// Device is the i2c-dev device file the clock is attached to.
	Device string `yaml:"device"`
	// Address is the chip's 7-bit I2C address.
	Address uint8 `yaml:"address"`
	// PollInterval is how often "watch" reads the clock.
	PollInterval Duration `yaml:"poll_interval"`
	// LogLevel is a loggo specification, e.g. "<root>=DEBUG".
	LogLevel string `yaml:"log_level"`
}

// Duration is a time.Duration written as a string such as "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %v", s, err)
	}
	*d = Duration(v)
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Device:       "/dev/i2c-1",
		Address:      0x32,
		PollInterval: Duration(100 * time.Millisecond),
		LogLevel:     "<root>=INFO",
	}
}

// LoadConfig reads the file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %v", path, err)
	}
	return cfg, nil
}

// Validate checks cfg for values the tool cannot use.
func (cfg *Config) Validate() error {
	if cfg.Device == "" {
		return fmt.Errorf("device must be set")
	}
	if cfg.Address == 0 || cfg.Address > 0x7F {
		return fmt.Errorf("address %#x is not a 7-bit I2C address", cfg.Address)
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	return nil
}
