// Package mocknet provides an in-memory transport.Dialer for tests and
// examples.
//
// A Net holds one Peer per port. A Peer stands in for the SDK side of a
// socket: it can answer requests through a Handler, push unsolicited
// messages, and inject transport failures. Sockets honor the dial options'
// deadlines and report transport.ErrTimeout exactly like the nng sockets do,
// so timeout-driven code paths run unchanged.
//
// # Usage
//
//	net := mocknet.New()
//	net.Peer(10086).Handle(func(req []byte) ([]byte, error) {
//	    return reply, nil
//	})
//	msgs := net.Peer(10087)
//	msgs.Push(frame)
//
//	client := wcf.NewClient(wcf.Config{Dialer: net, SDK: fake})
//
// # Limitations
//
// Mocknet is for testing only:
//   - One message queue per direction per port, shared by every socket dialed
//     to that port
//   - No reconnect semantics; a dial to a port with no Peer is refused
package mocknet
