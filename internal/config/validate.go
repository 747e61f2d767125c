package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSDK(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSDK() error {
	// The message channel listens on port+1.
	if c.SDK.Port <= 0 || c.SDK.Port >= math.MaxUint16 {
		return fmt.Errorf("sdk.port must be between 1 and %d, got %d", math.MaxUint16-1, c.SDK.Port)
	}
	if c.SDK.TimeoutSeconds < 0 {
		return errors.New("sdk.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
