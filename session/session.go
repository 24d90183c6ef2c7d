// Package session drives the per-connection request/response loop: read one
// ClientCommand, dispatch it against the shared keyspace, write one
// ServerResponse, repeat.
package session

import (
	"errors"
	"io"
	"log"
	"net"
	"strings"

	"github.com/google/uuid"

	"github.com/emberdb/emberdb/keyspace"
	"github.com/emberdb/emberdb/wire"
)

// Session owns one accepted connection for its lifetime.
type Session struct {
	id   string
	conn net.Conn
	ks   *keyspace.Keyspace
	r    *wire.Reader
	w    *wire.Writer
}

// New wraps conn for request/response handling against ks. id is a
// human-readable correlation id used in log lines for this connection.
func New(conn net.Conn, ks *keyspace.Keyspace) *Session {
	return &Session{
		id:   uuid.New().String(),
		conn: conn,
		ks:   ks,
		r:    wire.NewReader(conn),
		w:    wire.NewWriter(conn),
	}
}

// Serve runs Reading -> Executing -> Writing -> Reading until the
// connection closes, decoding fails, or a write fails. It never returns an
// error for a clean close; callers just log and move on.
func (s *Session) Serve() {
	defer s.conn.Close()

	for {
		cmd, err := s.r.ReadClientCommand()
		if err != nil {
			if isClosedErr(err) {
				return
			}
			log.Printf("session %s: read: %v", s.id, err)
			return
		}

		resp, err := keyspace.Execute(s.ks, cmd)
		if err != nil {
			resp = wire.ErrorResponse(err.Error())
		}

		if err := s.w.WriteServerResponse(resp); err != nil {
			if !isClosedErr(err) {
				log.Printf("session %s: write: %v", s.id, err)
			}
			return
		}
	}
}

// isClosedErr reports whether err represents an ordinary connection
// teardown rather than a real transport failure.
func isClosedErr(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return strings.Contains(netErr.Err.Error(), "closed")
	}
	return strings.Contains(err.Error(), "closed")
}
