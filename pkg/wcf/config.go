package wcf

import (
	"time"

	"github.com/hsiuhsiu/wcferry-go/internal/sdk"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/logging"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/transport"
)

const (
	// DefaultHost is where the SDK serves its sockets.
	DefaultHost = "127.0.0.1"

	// DefaultTimeout bounds every send and receive on both channels.
	DefaultTimeout = 5 * time.Second
)

// NativeSDK is the native library surface. The default binds to sdk.dll and
// is shared by the whole process; tests inject fakes.
type NativeSDK interface {
	// Load loads the library once and reports whether this call did it.
	Load() (bool, error)
	InitSDK(debug bool, port int32) (int32, error)
	DestroySDK() (int32, error)
}

// Config wires a Client. The zero value talks to the real SDK over TCP.
type Config struct {
	SDK    NativeSDK
	Dialer transport.Dialer
	Logger logging.Logger

	// Host overrides DefaultHost.
	Host string

	SendTimeout time.Duration
	RecvTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.SDK == nil {
		c.SDK = sdk.Default()
	}
	if c.Dialer == nil {
		c.Dialer = transport.NNG{}
	}
	if c.Logger == nil {
		c.Logger = logging.New(nil)
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = DefaultTimeout
	}
	if c.RecvTimeout <= 0 {
		c.RecvTimeout = DefaultTimeout
	}
	return c
}

func (c Config) dialOptions() transport.DialOptions {
	return transport.DialOptions{SendTimeout: c.SendTimeout, RecvTimeout: c.RecvTimeout}
}
