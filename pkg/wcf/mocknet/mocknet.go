package mocknet

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/transport"
)

// ErrRefused is returned when dialing a port that has no Peer.
var ErrRefused = errors.New("mocknet: connection refused")

// Handler answers one request. Returning an error makes the client's pending
// Recv fail with it.
type Handler func(req []byte) ([]byte, error)

// Net is an in-memory network of peers keyed by port.
type Net struct {
	mu    sync.Mutex
	peers map[uint16]*Peer
}

func New() *Net { return &Net{peers: make(map[uint16]*Peer)} }

// Peer returns the peer listening on port, creating it on first use.
func (n *Net) Peer(port uint16) *Peer {
	n.mu.Lock()
	defer n.mu.Unlock()
	p := n.peers[port]
	if p == nil {
		p = newPeer(port)
		n.peers[port] = p
	}
	return p
}

func (n *Net) lookup(port uint16) *Peer {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.peers[port]
}

// Dial implements transport.Dialer.
func (n *Net) Dial(host string, port uint16, opts transport.DialOptions) (transport.Socket, error) {
	p := n.lookup(port)
	if p == nil {
		return nil, fmt.Errorf("%w: %s:%d", ErrRefused, host, port)
	}
	if err := p.dialErr(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.dials++
	p.mu.Unlock()
	return &socket{peer: p, opts: opts, done: make(chan struct{})}, nil
}

// inbound is one message or failure queued for the client.
type inbound struct {
	msg []byte
	err error
}

// Peer is the remote end of every socket dialed to its port.
type Peer struct {
	port uint16

	toClient chan inbound
	received chan []byte

	mu        sync.Mutex
	handler   Handler
	refuse    error
	dials     int
	sends     int
	sendDelay time.Duration
}

func newPeer(port uint16) *Peer {
	return &Peer{
		port:     port,
		toClient: make(chan inbound, 64),
		received: make(chan []byte, 64),
	}
}

// Port returns the port the peer listens on.
func (p *Peer) Port() uint16 { return p.port }

// Handle installs h to answer each request synchronously. Without a handler,
// requests are queued on Received.
func (p *Peer) Handle(h Handler) {
	p.mu.Lock()
	p.handler = h
	p.mu.Unlock()
}

// Push queues an unsolicited message for the client.
func (p *Peer) Push(msg []byte) {
	p.toClient <- inbound{msg: append([]byte(nil), msg...)}
}

// Fail queues a receive failure; the next client Recv returns err.
func (p *Peer) Fail(err error) {
	p.toClient <- inbound{err: err}
}

// Refuse makes later dials fail with err. A nil err accepts dials again.
func (p *Peer) Refuse(err error) {
	p.mu.Lock()
	p.refuse = err
	p.mu.Unlock()
}

// SetSendDelay delays every client Send by d, widening race windows in
// concurrency tests.
func (p *Peer) SetSendDelay(d time.Duration) {
	p.mu.Lock()
	p.sendDelay = d
	p.mu.Unlock()
}

// Received exposes requests sent while no handler is installed.
func (p *Peer) Received() <-chan []byte { return p.received }

// Dials reports how many sockets were dialed to this peer.
func (p *Peer) Dials() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dials
}

// Sends reports how many messages clients sent to this peer.
func (p *Peer) Sends() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sends
}

func (p *Peer) dialErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refuse
}

func (p *Peer) deliver(msg []byte) {
	p.mu.Lock()
	h := p.handler
	p.sends++
	delay := p.sendDelay
	p.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if h == nil {
		p.received <- msg
		return
	}
	reply, err := h(msg)
	if err != nil {
		p.toClient <- inbound{err: err}
		return
	}
	if reply != nil {
		p.toClient <- inbound{msg: reply}
	}
}

type socket struct {
	peer *Peer
	opts transport.DialOptions

	closeOnce sync.Once
	done      chan struct{}
}

func (s *socket) Send(msg []byte) error {
	select {
	case <-s.done:
		return fmt.Errorf("%w: send to port %d", transport.ErrClosed, s.peer.port)
	default:
	}
	s.peer.deliver(append([]byte(nil), msg...))
	return nil
}

func (s *socket) Recv() ([]byte, error) {
	var timeout <-chan time.Time
	if s.opts.RecvTimeout > 0 {
		timer := time.NewTimer(s.opts.RecvTimeout)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case in := <-s.peer.toClient:
		if in.err != nil {
			return nil, in.err
		}
		return in.msg, nil
	case <-timeout:
		return nil, fmt.Errorf("%w: recv from port %d", transport.ErrTimeout, s.peer.port)
	case <-s.done:
		return nil, fmt.Errorf("%w: recv from port %d", transport.ErrClosed, s.peer.port)
	}
}

func (s *socket) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

var _ transport.Dialer = (*Net)(nil)
