package transport

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pair1"
)

var inprocSeq atomic.Uint32

// listenInproc starts the SDK side of a pair on a unique inproc address and
// returns the host/port the dialer should use to reach it.
func listenInproc(t *testing.T) (mangos.Socket, string, uint16) {
	t.Helper()
	host := "wcf-test"
	port := uint16(20000 + inprocSeq.Add(1))

	server, err := pair1.NewSocket()
	require.NoError(t, err)
	require.NoError(t, server.SetOption(mangos.OptionRecvDeadline, time.Second))
	require.NoError(t, server.Listen(NNG{Scheme: "inproc"}.URL(host, port)))
	t.Cleanup(func() { _ = server.Close() })
	return server, host, port
}

func TestNNGURL(t *testing.T) {
	assert.Equal(t, "tcp://127.0.0.1:10086", NNG{}.URL("127.0.0.1", 10086))
	assert.Equal(t, "inproc://x:1", NNG{Scheme: "inproc"}.URL("x", 1))
}

func TestNNGExchange(t *testing.T) {
	server, host, port := listenInproc(t)

	sock, err := NNG{Scheme: "inproc"}.Dial(host, port, DialOptions{
		SendTimeout: time.Second,
		RecvTimeout: time.Second,
	})
	require.NoError(t, err)
	defer sock.Close()

	require.NoError(t, sock.Send([]byte("ping")))
	got, err := server.Recv()
	require.NoError(t, err)
	assert.Equal(t, []byte("ping"), got)

	require.NoError(t, server.Send([]byte("pong")))
	got, err = sock.Recv()
	require.NoError(t, err)
	assert.Equal(t, []byte("pong"), got)
}

func TestNNGRecvTimeout(t *testing.T) {
	_, host, port := listenInproc(t)

	sock, err := NNG{Scheme: "inproc"}.Dial(host, port, DialOptions{
		SendTimeout: time.Second,
		RecvTimeout: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	defer sock.Close()

	_, err = sock.Recv()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)
}

func TestNNGRecvAfterClose(t *testing.T) {
	_, host, port := listenInproc(t)

	sock, err := NNG{Scheme: "inproc"}.Dial(host, port, DialOptions{RecvTimeout: time.Second})
	require.NoError(t, err)
	require.NoError(t, sock.Close())

	_, err = sock.Recv()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNNGDialWithoutListener(t *testing.T) {
	_, err := NNG{Scheme: "inproc"}.Dial("nobody-home", 1, DialOptions{})
	assert.Error(t, err)
}
