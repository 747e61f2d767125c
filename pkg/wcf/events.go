package wcf

import (
	"sync"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"
)

// Event is everything a Client reports through its handler. The set is
// closed; switch on the concrete types below.
type Event interface {
	isEvent()
}

type (
	// SDKLoaded is emitted the first time the native library is loaded in
	// this process.
	SDKLoaded struct{}

	// SDKInitialized is emitted after a successful Init.
	SDKInitialized struct {
		Port  uint16
		Debug bool
	}

	// SDKDestroyed is emitted once per Uninit that actually tore down.
	SDKDestroyed struct{}

	CommandConnected    struct{}
	CommandDisconnected struct{}

	MessageSocketConnected    struct{}
	MessageSocketDisconnected struct{}

	// MessageReceived carries one inbound chat message. It is emitted on the
	// listener goroutine.
	MessageReceived struct {
		Msg *wcfpb.WxMsg
	}
)

func (SDKLoaded) isEvent()                 {}
func (SDKInitialized) isEvent()            {}
func (SDKDestroyed) isEvent()              {}
func (CommandConnected) isEvent()          {}
func (CommandDisconnected) isEvent()       {}
func (MessageSocketConnected) isEvent()    {}
func (MessageSocketDisconnected) isEvent() {}
func (MessageReceived) isEvent()           {}

// EventHandler receives events synchronously on the emitting goroutine.
// CommandConnected and CommandDisconnected are delivered while the command
// socket is locked; a handler must not call Connect, Disconnect or any RPC
// method for those two events.
type EventHandler func(Event)

// eventBus is the single replaceable handler slot. Replacing it never waits
// for a running invocation of the old handler.
type eventBus struct {
	mu      sync.RWMutex
	handler EventHandler
}

func (b *eventBus) set(h EventHandler) {
	b.mu.Lock()
	b.handler = h
	b.mu.Unlock()
}

func (b *eventBus) emit(ev Event) {
	b.mu.RLock()
	h := b.handler
	b.mu.RUnlock()
	if h != nil {
		h(ev)
	}
}

// RegisterEventHandler installs h, replacing any earlier handler.
func (c *Client) RegisterEventHandler(h EventHandler) { c.bus.set(h) }

// UnregisterEventHandler removes the handler.
func (c *Client) UnregisterEventHandler() { c.bus.set(nil) }
