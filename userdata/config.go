package userdata

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the tunable policy knobs for the utilities.
type Config struct {
	// ActiveWindow bounds how far back a record's last activity may lie for
	// the record to count as active.
	ActiveWindow time.Duration `envconfig:"USERDATA_ACTIVE_WINDOW" default:"720h"`
	// MaxAccountAgeDays caps the random createdAt offset of generated records.
	MaxAccountAgeDays int `envconfig:"USERDATA_MAX_ACCOUNT_AGE_DAYS" default:"100"`
	// MaxJoinAgeDays caps the random profile.joinDate offset of generated records.
	MaxJoinAgeDays int `envconfig:"USERDATA_MAX_JOIN_AGE_DAYS" default:"365"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the built-in defaults without reading the environment.
func DefaultConfig() Config {
	return Config{
		ActiveWindow:      30 * 24 * time.Hour,
		MaxAccountAgeDays: 100,
		MaxJoinAgeDays:    365,
	}
}

func (c Config) validate() error {
	if c.ActiveWindow <= 0 {
		return errors.New("active window must be positive")
	}
	if c.MaxAccountAgeDays < 1 || c.MaxJoinAgeDays < 1 {
		return errors.New("generator age bounds must be at least one day")
	}
	return nil
}
