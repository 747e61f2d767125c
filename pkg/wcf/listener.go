package wcf

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/logging"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/transport"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"
)

// EnableListen asks the SDK to push messages (once) and starts a listener
// goroutine on the message port. Calling it again while listening starts
// another goroutine, which finds the receiving guard taken and returns
// without touching the network; that is how a listener that died on a
// transport error is restarted.
func (c *Client) EnableListen() error {
	cmdPort := c.CommandPort()

	c.msgMu.Lock()
	if c.msgPort == 0 {
		if cmdPort == 0 {
			c.msgMu.Unlock()
			return ErrNotInitialized
		}
		resp, err := c.Call(wcfpb.FuncEnableRecvTxt, wcfpb.Flag(true))
		if err != nil {
			c.msgMu.Unlock()
			return fmt.Errorf("wcf: enable listen: %w", err)
		}
		if !resp.HasPayload() {
			c.msgMu.Unlock()
			return fmt.Errorf("wcf: enable listen: %w", ErrRemoteNoData)
		}
		c.msgPort = cmdPort + 1
	}
	port := c.msgPort
	c.msgMu.Unlock()

	c.listenerMu.Lock()
	c.listeners++
	c.listenerMu.Unlock()
	go c.listen(port)
	return nil
}

// DisableListen asks the SDK to stop pushing messages and clears the message
// port so the listener exits at its next receive timeout. It reports false
// when listening was already off. If the SDK answers without a payload the
// port is kept and the listener keeps running.
func (c *Client) DisableListen() (bool, error) {
	c.msgMu.Lock()
	defer c.msgMu.Unlock()

	if c.msgPort == 0 {
		return false, nil
	}
	resp, err := c.Call(wcfpb.FuncDisableRecvTxt, nil)
	if err != nil {
		return false, fmt.Errorf("wcf: disable listen: %w", err)
	}
	if !resp.HasPayload() {
		return false, fmt.Errorf("wcf: disable listen: %w", ErrRemoteNoData)
	}
	c.msgPort = 0
	return true, nil
}

// Listening reports whether message delivery is switched on.
func (c *Client) Listening() bool { return c.MessagePort() != 0 }

// WaitListener blocks until no listener goroutine is running. It may be
// called while another goroutine calls EnableListen; a listener started
// meanwhile extends the wait.
func (c *Client) WaitListener() {
	c.listenerMu.Lock()
	for c.listeners > 0 {
		c.listenersIdle.Wait()
	}
	c.listenerMu.Unlock()
}

func (c *Client) listenerDone() {
	c.listenerMu.Lock()
	c.listeners--
	if c.listeners == 0 {
		c.listenersIdle.Broadcast()
	}
	c.listenerMu.Unlock()
}

func (c *Client) listen(port uint16) {
	defer c.listenerDone()

	if !c.receiving.TryLock() {
		return
	}
	defer c.receiving.Unlock()

	ctx := background()
	log := c.log.With("session", uuid.NewString(), "port", port)

	sock, err := c.dial(port)
	if err != nil {
		log.Error(ctx, "cannot connect message socket", "error", err)
		return
	}
	log.Info(ctx, "message socket connected")
	c.emit(MessageSocketConnected{})

	defer func() {
		if err := sock.Close(); err != nil {
			log.Warn(ctx, "close message socket", "error", err)
		}
		log.Info(ctx, "message socket disconnected")
		c.emit(MessageSocketDisconnected{})
	}()

	for {
		raw, err := sock.Recv()
		if err == nil {
			c.dispatch(log, raw)
			continue
		}
		if errors.Is(err, transport.ErrTimeout) {
			if c.MessagePort() == 0 {
				log.Debug(ctx, "listening disabled, closing")
				return
			}
			continue
		}
		log.Error(ctx, "message socket receive failed, closing", "error", err)
		return
	}
}

func (c *Client) dispatch(log logging.Logger, raw []byte) {
	ctx := background()

	resp, err := wcfpb.UnmarshalResponse(raw)
	if err != nil {
		log.Error(ctx, "dropping invalid message", "error", err, "bytes", len(raw))
		return
	}
	msg := resp.WxMsg()
	if msg == nil {
		log.Debug(ctx, "ignoring unsupported message", "func", resp.Func, "payload", fmt.Sprintf("%T", resp.Msg))
		return
	}
	log.Debug(ctx, "message received", "id", msg.ID, "type", msg.Type, logging.Redacted("content"))
	c.emit(MessageReceived{Msg: msg})
}
