package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/luckyring/ring"
)

const envVarPrefix = "LUCKYRING"

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("luckyring: invalid configuration")

// Config holds the tunables shared by all subcommands.
// Environment keys are derived from field names (LUCKYRING_N, LUCKYRING_MAX, ...);
// no envconfig tag is set, so unprefixed variables are never consulted.
type Config struct {
	// N is the upper bound for lucky/unlucky numbers.
	N int `yaml:"n"`

	// Count, Min, Max and Seed drive randomized list construction.
	Count int   `yaml:"count"`
	Min   int   `yaml:"min"`
	Max   int   `yaml:"max"`
	Seed  int64 `yaml:"seed"`
}

// DefaultConfig mirrors the classic demo: lucky numbers up to 30 and five
// random values in [10, 50] drawn with the fixed seed.
func DefaultConfig() Config {
	return Config{
		N:     30,
		Count: 5,
		Min:   10,
		Max:   50,
		Seed:  ring.DefaultSeed,
	}
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path (or at
// $LUCKYRING_CONFIG_FILE when path is empty) and then LUCKYRING_* variables.
// A missing file is not an error; unknown YAML keys are.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()

	if path == "" {
		path = os.Getenv(envVarPrefix + "_CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err == nil {
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err = dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unmarshaling config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.N < 0:
		return fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidConfig, c.N)
	case c.Count < 0:
		return fmt.Errorf("%w: count must be >= 0, got %d", ErrInvalidConfig, c.Count)
	case c.Min > c.Max:
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidConfig, c.Min, c.Max)
	}

	return nil
}
