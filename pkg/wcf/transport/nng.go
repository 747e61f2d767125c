package transport

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pair1"

	// Register the transports the dialer can speak.
	_ "go.nanomsg.org/mangos/v3/transport/inproc"
	_ "go.nanomsg.org/mangos/v3/transport/tcp"
)

// NNG dials PAIR1 sockets with mangos. The zero value dials over TCP.
type NNG struct {
	// Scheme overrides the URL scheme. Tests use "inproc".
	Scheme string
}

// URL returns the address the dialer connects to.
func (d NNG) URL(host string, port uint16) string {
	scheme := d.Scheme
	if scheme == "" {
		scheme = "tcp"
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// Dial connects synchronously; an unreachable peer is an error rather than a
// background reconnect.
func (d NNG) Dial(host string, port uint16, opts DialOptions) (Socket, error) {
	url := d.URL(host, port)

	sock, err := pair1.NewSocket()
	if err != nil {
		return nil, fmt.Errorf("transport: new pair1 socket: %w", err)
	}
	if opts.RecvTimeout > 0 {
		if err := sock.SetOption(mangos.OptionRecvDeadline, opts.RecvTimeout); err != nil {
			_ = sock.Close()
			return nil, fmt.Errorf("transport: set recv deadline: %w", err)
		}
	}
	if opts.SendTimeout > 0 {
		if err := sock.SetOption(mangos.OptionSendDeadline, opts.SendTimeout); err != nil {
			_ = sock.Close()
			return nil, fmt.Errorf("transport: set send deadline: %w", err)
		}
	}
	if err := sock.Dial(url); err != nil {
		_ = sock.Close()
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}
	return &nngSocket{sock: sock, url: url}, nil
}

type nngSocket struct {
	sock mangos.Socket
	url  string
}

func (s *nngSocket) Send(msg []byte) error {
	if err := s.sock.Send(msg); err != nil {
		return mapError("send", s.url, err)
	}
	return nil
}

func (s *nngSocket) Recv() ([]byte, error) {
	msg, err := s.sock.Recv()
	if err != nil {
		return nil, mapError("recv", s.url, err)
	}
	return msg, nil
}

func (s *nngSocket) Close() error {
	if err := s.sock.Close(); err != nil && !errors.Is(err, mangos.ErrClosed) {
		return fmt.Errorf("transport: close %s: %w", s.url, err)
	}
	return nil
}

func mapError(op, url string, err error) error {
	switch {
	case errors.Is(err, mangos.ErrRecvTimeout), errors.Is(err, mangos.ErrSendTimeout):
		return fmt.Errorf("%w: %s %s: %v", ErrTimeout, op, url, err)
	case errors.Is(err, mangos.ErrClosed):
		return fmt.Errorf("%w: %s %s", ErrClosed, op, url)
	default:
		return fmt.Errorf("transport: %s %s: %w", op, url, err)
	}
}

var _ Dialer = NNG{}
