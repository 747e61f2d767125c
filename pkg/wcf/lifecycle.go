package wcf

import (
	"fmt"
	"math"
	"sync"

	"github.com/hsiuhsiu/wcferry-go/internal/sdk"
)

// Cleanup is returned by Init. With auto-clean, Close runs Uninit exactly
// once; without it Close does nothing and the caller owns Uninit.
type Cleanup struct {
	client    *Client
	autoClean bool
	once      sync.Once
}

// AutoClean reports whether Close tears the SDK down.
func (h *Cleanup) AutoClean() bool { return h != nil && h.autoClean }

// Close implements io.Closer. It never fails.
func (h *Cleanup) Close() error {
	if h == nil || !h.autoClean {
		return nil
	}
	h.once.Do(h.client.Uninit)
	return nil
}

// Init loads the native SDK if needed and starts it serving on port (command
// channel) and port+1 (message channel). A failed Init leaves the Client
// unchanged.
func (c *Client) Init(port uint16, debug, autoClean bool) (*Cleanup, error) {
	ctx := background()

	loaded, err := c.cfg.SDK.Load()
	if err != nil {
		return nil, fmt.Errorf("wcf: load %s: %w", sdk.LibraryName, err)
	}
	if loaded {
		c.log.Info(ctx, "sdk library loaded", "library", sdk.LibraryName)
		c.emit(SDKLoaded{})
	}

	if err := c.initLocked(port, debug); err != nil {
		return nil, err
	}
	c.log.Info(ctx, "sdk initialized", "port", port, "debug", debug)
	c.emit(SDKInitialized{Port: port, Debug: debug})
	return &Cleanup{client: c, autoClean: autoClean}, nil
}

func (c *Client) initLocked(port uint16, debug bool) error {
	c.portMu.Lock()
	defer c.portMu.Unlock()

	if c.cmdPort != 0 {
		return ErrAlreadyInitialized
	}
	if port == 0 || port == math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	rc, err := c.cfg.SDK.InitSDK(debug, int32(port))
	if err != nil {
		return fmt.Errorf("wcf: init sdk: %w", err)
	}
	if rc != 0 {
		return &InitError{Port: port, Code: rc}
	}
	c.cmdPort = port
	return nil
}

// Uninit tears down in order: command socket, listener, native SDK. It is a
// no-op when not initialized and never fails; problems along the way are
// logged.
func (c *Client) Uninit() {
	ctx := background()

	c.portMu.Lock()
	if c.cmdPort == 0 {
		c.portMu.Unlock()
		return
	}

	c.Disconnect()

	// The command socket is already gone, so a running listener cannot be
	// switched off remotely. Clearing msgPort still stops our goroutine.
	if _, err := c.DisableListen(); err != nil {
		c.log.Warn(ctx, "disable listen during uninit", "error", err)
	}
	c.msgMu.Lock()
	c.msgPort = 0
	c.msgMu.Unlock()

	rc, err := c.cfg.SDK.DestroySDK()
	switch {
	case err != nil:
		c.log.Warn(ctx, "destroy sdk failed", "error", err)
	case rc != 0:
		c.log.Warn(ctx, "destroy sdk returned non-zero", "result", rc)
	}
	port := c.cmdPort
	c.cmdPort = 0
	c.portMu.Unlock()

	c.log.Info(ctx, "sdk destroyed", "port", port)
	c.emit(SDKDestroyed{})
}
