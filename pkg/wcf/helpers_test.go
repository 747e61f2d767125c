package wcf

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/logging"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/mocknet"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"
)

const (
	testPort    uint16 = 10086
	testMsgPort uint16 = 10087

	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

// fakeSDK records native calls in order.
type fakeSDK struct {
	mu        sync.Mutex
	loaded    bool
	loadErr   error
	initRC    int32
	destroyRC int32
	calls     []string

	// onDestroy runs before the destroy call is recorded.
	onDestroy func()
}

func (f *fakeSDK) Load() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return false, f.loadErr
	}
	if f.loaded {
		return false, nil
	}
	f.loaded = true
	f.calls = append(f.calls, "load")
	return true, nil
}

func (f *fakeSDK) InitSDK(bool, int32) (int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "init")
	return f.initRC, nil
}

func (f *fakeSDK) DestroySDK() (int32, error) {
	if f.onDestroy != nil {
		f.onDestroy()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "destroy")
	return f.destroyRC, nil
}

func (f *fakeSDK) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

// recorder collects events from any goroutine.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func countOf[T Event](r *recorder) int {
	n := 0
	for _, ev := range r.snapshot() {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func indexOf[T Event](r *recorder) int {
	for i, ev := range r.snapshot() {
		if _, ok := ev.(T); ok {
			return i
		}
	}
	return -1
}

type harness struct {
	client *Client
	sdk    *fakeSDK
	net    *mocknet.Net
	cmd    *mocknet.Peer
	msg    *mocknet.Peer
	events *recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{sdk: &fakeSDK{}, net: mocknet.New(), events: &recorder{}}
	h.cmd = h.net.Peer(testPort)
	h.msg = h.net.Peer(testMsgPort)
	h.client = NewClient(Config{
		SDK:         h.sdk,
		Dialer:      h.net,
		Logger:      logging.Discard(),
		SendTimeout: 50 * time.Millisecond,
		RecvTimeout: 50 * time.Millisecond,
	})
	h.client.RegisterEventHandler(h.events.handle)
	t.Cleanup(func() {
		h.client.Uninit()
		h.client.WaitListener()
	})
	return h
}

// start runs Init and Connect on the test port.
func (h *harness) start(t *testing.T) {
	t.Helper()
	_, err := h.client.Init(testPort, false, false)
	require.NoError(t, err)
	require.NoError(t, h.client.Connect())
}

// hookLogger discards records but runs onError for every Error call.
type hookLogger struct {
	logging.Logger
	onError func()
}

func (l *hookLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.onError != nil {
		l.onError()
	}
	l.Logger.Error(ctx, msg, args...)
}

// lastCommandEvent returns the most recent CommandConnected or
// CommandDisconnected, or nil.
func lastCommandEvent(r *recorder) Event {
	var last Event
	for _, ev := range r.snapshot() {
		switch ev.(type) {
		case CommandConnected, CommandDisconnected:
			last = ev
		}
	}
	return last
}

// sdkReplies answers command requests from a table. Functions without an
// entry get a response with no payload.
type sdkReplies struct {
	mu      sync.Mutex
	replies map[wcfpb.Function]wcfpb.ResponsePayload
	seen    []*wcfpb.Request
}

func newReplies(replies map[wcfpb.Function]wcfpb.ResponsePayload) *sdkReplies {
	if replies == nil {
		replies = map[wcfpb.Function]wcfpb.ResponsePayload{}
	}
	return &sdkReplies{replies: replies}
}

func (s *sdkReplies) set(fn wcfpb.Function, payload wcfpb.ResponsePayload) {
	s.mu.Lock()
	s.replies[fn] = payload
	s.mu.Unlock()
}

func (s *sdkReplies) handler(req []byte) ([]byte, error) {
	r, err := wcfpb.UnmarshalRequest(req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.seen = append(s.seen, r)
	payload := s.replies[r.Func]
	s.mu.Unlock()
	resp := &wcfpb.Response{Func: r.Func, Msg: payload}
	return resp.Marshal()
}

func (s *sdkReplies) requests(fn wcfpb.Function) []*wcfpb.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*wcfpb.Request
	for _, r := range s.seen {
		if r.Func == fn {
			out = append(out, r)
		}
	}
	return out
}

func (s *sdkReplies) last(t *testing.T) *wcfpb.Request {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.seen)
	return s.seen[len(s.seen)-1]
}

func mustMarshal(t *testing.T, resp *wcfpb.Response) []byte {
	t.Helper()
	b, err := resp.Marshal()
	require.NoError(t, err)
	return b
}

// waitDone fails the test if fn does not return within d.
func waitDone(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not finish within %s", d)
	}
}
