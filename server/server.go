// Package server accepts TCP connections and hands each one to a session
// for the lifetime of the connection, sharing a single keyspace across all
// of them.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/emberdb/emberdb/keyspace"
	"github.com/emberdb/emberdb/session"
)

// DefaultAddr is used when no listen address is configured.
const DefaultAddr = "127.0.0.1:3599"

// SweepInterval controls how often expired keys are swept in the
// background, independent of lazy expiry on read.
const SweepInterval = time.Second

// Server listens for connections and serves the key/value protocol over
// each one.
type Server struct {
	addr string
	ks   *keyspace.Keyspace
}

// New returns a Server that will listen on addr (DefaultAddr if empty) and
// dispatch commands against a freshly created keyspace.
func New(addr string) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{addr: addr, ks: keyspace.New()}
}

// ListenAndServe listens on the configured address and serves connections
// until ctx is canceled. It blocks until the listener is closed.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go s.ks.RunSweep(SweepInterval, stopped)

	go func() {
		<-ctx.Done()
		_ = lis.Close()
	}()

	log.Printf("emberdb listening on %s", s.addr)
	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go session.New(conn, s.ks).Serve()
	}
}
