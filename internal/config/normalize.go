package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.SDK.Host = strings.TrimSpace(c.SDK.Host)
	if c.SDK.Host == "" {
		c.SDK.Host = defaultHost
	}
	if c.SDK.TimeoutSeconds == 0 {
		c.SDK.TimeoutSeconds = defaultTimeoutSeconds
	}

	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = defaultLockDir
	}
	var err error
	if c.Paths.LockDir, err = ExpandPath(c.Paths.LockDir); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}

	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "text", "json":
	case "console":
		c.Logging.Format = "text"
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
