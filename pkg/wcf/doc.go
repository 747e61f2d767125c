// Package wcf drives the WeChatFerry automation SDK.
//
// The SDK is a native library (sdk.dll) that injects into the WeChat client
// and serves two nng PAIR1 sockets on localhost: a command socket on the port
// passed to Init and a message socket on the next port. A Client owns the
// whole process-side state of that arrangement:
//
//   - the native handle (loaded once per process, see Init and Uninit),
//   - the command channel (Connect, Disconnect, Call),
//   - the message listener (EnableListen, DisableListen),
//   - one replaceable event handler (RegisterEventHandler).
//
// # Usage
//
//	client := wcf.NewClient(wcf.Config{})
//	client.RegisterEventHandler(func(ev wcf.Event) {
//	    if m, ok := ev.(wcf.MessageReceived); ok {
//	        notify <- m.Msg
//	    }
//	})
//	cleanup, err := client.Init(10086, false, true)
//	if err != nil {
//	    return err
//	}
//	defer cleanup.Close()
//
//	if err := client.Connect(); err != nil {
//	    return err
//	}
//	ok, err := client.IsLogin()
//
// # Failure Model
//
// The command channel fails fast. Any transport error, including a timeout,
// closes the socket and emits CommandDisconnected; later calls return
// ErrDisconnected until Connect is called again. Nothing is retried.
//
// The listener stops cooperatively. DisableListen clears the message port and
// the listener goroutine notices at its next receive timeout, so shutdown
// takes up to Config.RecvTimeout.
//
// # Event Handlers
//
// Handlers run synchronously on whichever goroutine emitted the event: the
// caller's for lifecycle and command events, the listener's for message
// events. They must return quickly and must not call back into the Client;
// hand work to another goroutine instead.
package wcf
