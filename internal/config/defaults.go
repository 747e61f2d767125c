package config

const (
	defaultConfigPath     = "~/.config/wcferry/config.toml"
	defaultPort           = 10086
	defaultAutoClean      = true
	defaultHost           = "127.0.0.1"
	defaultTimeoutSeconds = 5
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
	defaultLockDir        = "~/.cache/wcferry"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		SDK: SDK{
			Port:           defaultPort,
			AutoClean:      defaultAutoClean,
			Host:           defaultHost,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Paths: Paths{
			LockDir: defaultLockDir,
		},
	}
}
