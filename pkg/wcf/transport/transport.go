// Package transport defines the message-socket contract used by the wcf
// client and provides the production nng implementation.
//
// Both WeChatFerry channels are nng PAIR1 sockets: one message in, one
// message out, no framing beyond what nng provides. The client only ever
// dials; the SDK side listens.
package transport

import (
	"errors"
	"time"
)

var (
	// ErrTimeout is reported (wrapped) when a send or receive exceeds its
	// deadline. The listener relies on it to poll for shutdown.
	ErrTimeout = errors.New("transport: timed out")

	// ErrClosed is reported (wrapped) for operations on a closed socket.
	ErrClosed = errors.New("transport: socket closed")
)

// Socket is one connected message socket.
//
// Concurrency: implementations must tolerate Close racing with a blocked
// Recv; the Recv returns an error wrapping ErrClosed. Callers serialize their
// own Send/Recv pairs.
type Socket interface {
	Send(msg []byte) error
	Recv() ([]byte, error)
	Close() error
}

// DialOptions carries the fixed per-socket deadlines.
type DialOptions struct {
	SendTimeout time.Duration
	RecvTimeout time.Duration
}

// Dialer opens sockets to host:port.
type Dialer interface {
	Dial(host string, port uint16, opts DialOptions) (Socket, error)
}
