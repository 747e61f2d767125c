package wcf

import (
	"fmt"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/transport"
)

// Connect dials the command socket on the Init port.
func (c *Client) Connect() error {
	port := c.CommandPort()
	if port == 0 {
		return ErrNotInitialized
	}

	c.sockMu.Lock()
	if c.cmdSock != nil {
		c.sockMu.Unlock()
		return ErrAlreadyConnected
	}
	sock, err := c.dial(port)
	if err != nil {
		c.sockMu.Unlock()
		return fmt.Errorf("wcf: connect command socket on port %d: %w", port, err)
	}
	c.cmdSock = sock
	c.emit(CommandConnected{})
	c.sockMu.Unlock()

	c.log.Info(background(), "command socket connected", "port", port)
	return nil
}

// Disconnect closes the command socket if one is held. It waits for an
// in-flight exchange to finish first.
func (c *Client) Disconnect() {
	c.sockMu.Lock()
	sock := c.cmdSock
	if sock == nil {
		c.sockMu.Unlock()
		return
	}
	closeErr := c.dropSocketLocked(sock)
	c.sockMu.Unlock()

	if closeErr != nil {
		c.log.Warn(background(), "close command socket", "error", closeErr)
	}
}

// dropSocketLocked closes sock and reports the disconnect. Callers hold
// sockMu, so the event is ordered with every other connect and disconnect.
func (c *Client) dropSocketLocked(sock transport.Socket) error {
	c.cmdSock = nil
	err := sock.Close()
	c.emit(CommandDisconnected{})
	return err
}

// exchange performs one send+receive while holding the socket lock, so
// request/response pairs never interleave. A transport failure drops the
// socket; the caller has to Connect again.
func (c *Client) exchange(req []byte) ([]byte, error) {
	c.sockMu.Lock()
	sock := c.cmdSock
	if sock == nil {
		c.sockMu.Unlock()
		return nil, ErrDisconnected
	}

	resp, err := roundTrip(sock, req)
	if err == nil {
		c.sockMu.Unlock()
		return resp, nil
	}

	closeErr := c.dropSocketLocked(sock)
	c.sockMu.Unlock()

	c.log.Error(background(), "command exchange failed, disconnected", "error", err)
	if closeErr != nil {
		c.log.Warn(background(), "close command socket", "error", closeErr)
	}
	return nil, fmt.Errorf("wcf: command exchange: %w", err)
}

func roundTrip(sock transport.Socket, req []byte) ([]byte, error) {
	if err := sock.Send(req); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}
	resp, err := sock.Recv()
	if err != nil {
		return nil, fmt.Errorf("recv: %w", err)
	}
	return resp, nil
}
