// SPDX-License-Identifier: MIT

// Package responder is a toy line responder: every chunk a client sends is
// logged and answered with the RESP simple string "+OK\r\n". It is the
// network-facing sibling of the compute engine and shares its counters.
package responder

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Reply is written once per chunk read.
var Reply = []byte("+OK\r\n")

// ErrAlreadyServing is returned when a Server is asked to serve a second time.
var ErrAlreadyServing = errors.New("responder: already serving")

// DefaultReadBuffer is the largest chunk read at once.
const DefaultReadBuffer = 4096

// Counter keys maintained when a counter is configured.
const (
	CounterConns  = "responder.conns"
	CounterChunks = "responder.chunks"
)

// Counter is the slice of a counter store the server needs.
type Counter interface {
	Inc(key string) error
	Dec(key string) error
}

// Server answers every chunk on every accepted connection. A Server serves
// once; build a new one to listen again.
type Server struct {
	Addr       string       // listen address for Serve
	ReadBuffer int          // <= 0 means DefaultReadBuffer
	Logger     *slog.Logger // nil discards
	Counters   Counter      // optional; CounterConns tracks open connections

	mu      sync.Mutex
	serving bool
	conns   map[net.Conn]struct{}
	addr    net.Addr
	ready   chan struct{}
	once    sync.Once
}

// Serve listens on s.Addr and serves until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.Addr)
	if err != nil {
		return errors.Wrapf(err, "responder: listen %s", s.Addr)
	}

	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then closes ln and every
// open connection and waits for the handlers. It takes ownership of ln, and
// closes it with ErrAlreadyServing if s has served before.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.init()
	s.mu.Lock()
	if s.serving {
		s.mu.Unlock()
		_ = ln.Close()

		return ErrAlreadyServing
	}
	s.serving = true
	s.addr = ln.Addr()
	s.mu.Unlock()
	close(s.ready)

	log := s.logger()
	log.Info("responder listening", slog.String("addr", ln.Addr().String()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		_ = ln.Close()
		s.closeAll()

		return nil
	})
	g.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return errors.Wrap(err, "responder: accept")
			}
			if !s.track(conn) {
				_ = conn.Close()
				return nil
			}
			g.Go(func() error {
				s.handle(conn)
				return nil
			})
		}
	})

	return g.Wait()
}

// ListenAddr blocks until the server is listening and returns its address.
func (s *Server) ListenAddr(ctx context.Context) (net.Addr, error) {
	s.init()
	select {
	case <-s.ready:
		s.mu.Lock()
		defer s.mu.Unlock()

		return s.addr, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// handle reads chunks until EOF or error and answers each with Reply.
func (s *Server) handle(conn net.Conn) {
	defer s.untrack(conn)
	log := s.logger().With(slog.String("remote", conn.RemoteAddr().String()))
	log.Info("accepted connection")
	s.count(CounterConns, 1)
	defer s.count(CounterConns, -1)

	size := s.ReadBuffer
	if size <= 0 {
		size = DefaultReadBuffer
	}
	buf := make([]byte, size)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			log.Info("read chunk", slog.Int("bytes", n), slog.String("line", string(buf[:n])))
			s.count(CounterChunks, 1)
			if _, werr := conn.Write(Reply); werr != nil {
				log.Warn("write failed", slog.Any("error", werr))
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.Warn("read failed", slog.Any("error", err))
			}
			log.Warn("connection closed")

			return
		}
	}
}

func (s *Server) init() {
	s.once.Do(func() {
		s.conns = make(map[net.Conn]struct{})
		s.ready = make(chan struct{})
	})
}

// track registers conn; false once shutdown has begun.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conns == nil {
		return false
	}
	s.conns[conn] = struct{}{}

	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	if s.conns != nil {
		delete(s.conns, conn)
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// closeAll closes every open connection and refuses new ones.
func (s *Server) closeAll() {
	s.mu.Lock()
	conns := s.conns
	s.conns = nil
	s.mu.Unlock()
	for c := range conns {
		_ = c.Close()
	}
}

func (s *Server) count(key string, d int) {
	if s.Counters == nil {
		return
	}
	var err error
	if d > 0 {
		err = s.Counters.Inc(key)
	} else {
		err = s.Counters.Dec(key)
	}
	if err != nil {
		s.logger().Debug("responder counter", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
