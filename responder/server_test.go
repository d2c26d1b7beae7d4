// SPDX-License-Identifier: MIT

package responder_test

import (
	"bufio"
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/katalvlaran/lvmul/metrics"
	"github.com/katalvlaran/lvmul/responder"
	"github.com/stretchr/testify/require"
)

// start runs a server on a loopback port and returns it with its stop func.
func start(t *testing.T, s *responder.Server) (net.Addr, func() error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeListener(ctx, ln) }()

	wait, cancelWait := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelWait()
	addr, err := s.ListenAddr(wait)
	require.NoError(t, err)

	return addr, func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
			return nil
		}
	}
}

// TestRoundTrip sends chunks and expects one reply each.
func TestRoundTrip(t *testing.T) {
	store := metrics.NewLockMap()
	addr, stop := start(t, &responder.Server{Counters: store})

	conn, err := net.Dial("tcp", addr.String())
	require.NoError(t, err)
	r := bufio.NewReader(conn)

	for _, msg := range []string{"PING\r\n", "SET k v\r\n"} {
		_, err = conn.Write([]byte(msg))
		require.NoError(t, err)
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		require.Equal(t, string(responder.Reply), line)
	}
	require.NoError(t, conn.Close())
	require.NoError(t, stop())

	snap, err := store.Snapshot()
	require.NoError(t, err)
	require.Equal(t, int64(2), snap[responder.CounterChunks])
	require.Equal(t, int64(0), snap[responder.CounterConns])
}

// TestStopClosesOpenConnections cancels while a client is idle.
func TestStopClosesOpenConnections(t *testing.T) {
	addr, stop := start(t, &responder.Server{ReadBuffer: 8})

	conn, err := net.Dial("tcp", addr.String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("hello"))
	require.NoError(t, err)
	buf := make([]byte, len(responder.Reply))
	_, err = io.ReadFull(conn, buf)
	require.NoError(t, err)

	require.NoError(t, stop())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, err = conn.Read(buf)
	require.Error(t, err) // server side closed
}

// TestServeBadAddr surfaces listen errors.
func TestServeBadAddr(t *testing.T) {
	s := &responder.Server{Addr: "256.0.0.1:bogus"}
	require.Error(t, s.Serve(context.Background()))
}

// TestServeTwiceIsRejected hands a second listener to a server that already
// served; it must be refused and closed rather than served.
func TestServeTwiceIsRejected(t *testing.T) {
	s := &responder.Server{}
	_, stop := start(t, s)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.ErrorIs(t, s.ServeListener(context.Background(), ln), responder.ErrAlreadyServing)
	_, err = ln.Accept()
	require.ErrorIs(t, err, net.ErrClosed)

	require.NoError(t, stop())

	ln, err = net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.ErrorIs(t, s.ServeListener(context.Background(), ln), responder.ErrAlreadyServing)
}
