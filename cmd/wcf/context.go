package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"github.com/hsiuhsiu/wcferry-go/internal/config"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/logging"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/transport"
)

var errPortBusy = errors.New("sdk port is in use by another wcf process")

type commandContext struct {
	configFlag string
	portFlag   int
	debugFlag  bool

	// Overridden in tests.
	sdk    wcf.NativeSDK
	dialer transport.Dialer
	stderr io.Writer

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{stderr: os.Stderr}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if c.portFlag != 0 {
			cfg.SDK.Port = c.portFlag
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		if c.debugFlag {
			cfg.SDK.Debug = true
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withClient holds the port lock, initializes the SDK and connects the
// command channel for the duration of fn.
func (c *commandContext) withClient(fn func(*wcf.Client) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w (lock %s)", errPortBusy, cfg.LockPath())
	}
	defer lock.Unlock()

	client := wcf.NewClient(wcf.Config{
		SDK:         c.sdk,
		Dialer:      c.dialer,
		Logger:      logging.New(newLogger(cfg.Logging, c.stderr)),
		Host:        cfg.SDK.Host,
		SendTimeout: cfg.Timeout(),
		RecvTimeout: cfg.Timeout(),
	})

	cleanup, err := client.Init(uint16(cfg.SDK.Port), cfg.SDK.Debug, cfg.SDK.AutoClean)
	if err != nil {
		return err
	}
	defer cleanup.Close()

	if err := client.Connect(); err != nil {
		return err
	}
	defer client.Disconnect()

	return fn(client)
}
