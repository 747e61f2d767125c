package wcf

import (
	"context"
	"sync"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/logging"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/transport"
)

// Client is the process-side state of one SDK session. Each piece of shared
// state has its own lock; no lock spans two of them except where noted.
//
// Lock order when nested: portMu, then msgMu, then sockMu.
type Client struct {
	cfg Config
	log logging.Logger
	bus eventBus

	// portMu guards cmdPort. Uninit holds it for the whole teardown.
	portMu  sync.Mutex
	cmdPort uint16

	// sockMu guards cmdSock and is held for the full length of an exchange.
	sockMu  sync.Mutex
	cmdSock transport.Socket

	// msgMu guards msgPort. The listener polls it on receive timeouts.
	msgMu   sync.Mutex
	msgPort uint16

	// receiving is held by the active listener goroutine for its lifetime.
	receiving sync.Mutex

	// listenerMu guards listeners, the number of listener goroutines not yet
	// returned. listenersIdle is signalled when it drops to zero.
	listenerMu    sync.Mutex
	listeners     int
	listenersIdle *sync.Cond
}

// NewClient returns a Client in the uninitialized state.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	c := &Client{cfg: cfg, log: cfg.Logger}
	c.listenersIdle = sync.NewCond(&c.listenerMu)
	return c
}

// CommandPort returns the port passed to Init, or 0 before Init and after
// Uninit.
func (c *Client) CommandPort() uint16 {
	c.portMu.Lock()
	defer c.portMu.Unlock()
	return c.cmdPort
}

// MessagePort returns the listener port, or 0 when listening is off.
func (c *Client) MessagePort() uint16 {
	c.msgMu.Lock()
	defer c.msgMu.Unlock()
	return c.msgPort
}

// Connected reports whether a command socket is held.
func (c *Client) Connected() bool {
	c.sockMu.Lock()
	defer c.sockMu.Unlock()
	return c.cmdSock != nil
}

func (c *Client) emit(ev Event) { c.bus.emit(ev) }

func (c *Client) dial(port uint16) (transport.Socket, error) {
	return c.cfg.Dialer.Dial(c.cfg.Host, port, c.cfg.dialOptions())
}

// background is the context attached to log records. Nothing in the client is
// cancellable; shutdown is timeout driven.
func background() context.Context { return context.Background() }
